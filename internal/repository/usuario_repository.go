package repository

import (
	"context"

	"gorm.io/gorm"

	"frases/internal/model"
)

// UsuarioRepository defines administrator persistence operations.
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *model.Usuario) error
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	Update(ctx context.Context, usuario *model.Usuario) error
}

type usuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository builds a GORM-backed repository.
func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

func (r *usuarioRepository) Create(ctx context.Context, usuario *model.Usuario) error {
	return r.db.WithContext(ctx).Create(usuario).Error
}

func (r *usuarioRepository) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var usuario model.Usuario
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&usuario).Error; err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) Update(ctx context.Context, usuario *model.Usuario) error {
	return r.db.WithContext(ctx).Save(usuario).Error
}
