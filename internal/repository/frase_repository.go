package repository

import (
	"context"

	"gorm.io/gorm"

	"frases/internal/model"
)

// FraseRepository defines quote persistence operations.
type FraseRepository interface {
	Create(ctx context.Context, frase *model.Frase) error
	FindByID(ctx context.Context, id uint) (*model.Frase, error)
	ListByAprobada(ctx context.Context, aprobada bool) ([]model.Frase, error)
	ListAll(ctx context.Context) ([]model.Frase, error)
	Update(ctx context.Context, frase *model.Frase) error
	Delete(ctx context.Context, id uint) error
}

type fraseRepository struct {
	db *gorm.DB
}

// NewFraseRepository builds a GORM-backed repository.
func NewFraseRepository(db *gorm.DB) FraseRepository {
	return &fraseRepository{db: db}
}

func (r *fraseRepository) Create(ctx context.Context, frase *model.Frase) error {
	return r.db.WithContext(ctx).Create(frase).Error
}

func (r *fraseRepository) FindByID(ctx context.Context, id uint) (*model.Frase, error) {
	var frase model.Frase
	if err := r.db.WithContext(ctx).First(&frase, id).Error; err != nil {
		return nil, err
	}
	return &frase, nil
}

func (r *fraseRepository) ListByAprobada(ctx context.Context, aprobada bool) ([]model.Frase, error) {
	var frases []model.Frase
	if err := r.db.WithContext(ctx).
		Where("aprobada = ?", aprobada).
		Order("id DESC").
		Find(&frases).Error; err != nil {
		return nil, err
	}
	return frases, nil
}

func (r *fraseRepository) ListAll(ctx context.Context) ([]model.Frase, error) {
	var frases []model.Frase
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&frases).Error; err != nil {
		return nil, err
	}
	return frases, nil
}

func (r *fraseRepository) Update(ctx context.Context, frase *model.Frase) error {
	return r.db.WithContext(ctx).Save(frase).Error
}

func (r *fraseRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Frase{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
