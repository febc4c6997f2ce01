package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"frases/internal/cache"
	apperrors "frases/internal/errors"
	"frases/internal/model"
	"frases/internal/notify"
	"frases/internal/repository"
)

const (
	aprobadasCacheKey = "frases:aprobadas"
	aprobadasCacheTTL = 30 * time.Second
)

// Broadcaster pushes change notifications to connected realtime clients.
type Broadcaster interface {
	Broadcast(notify.Event)
}

// FraseService exposes quote submission and moderation operations.
type FraseService interface {
	Create(ctx context.Context, texto string, autor *string) (*model.Frase, error)
	ListPending(ctx context.Context) ([]model.Frase, error)
	ListApproved(ctx context.Context) ([]model.Frase, error)
	ListAll(ctx context.Context) ([]model.Frase, error)
	Approve(ctx context.Context, id uint) (*model.Frase, error)
	SetPinned(ctx context.Context, id uint, fijada bool) (*model.Frase, error)
	Delete(ctx context.Context, id uint) error
}

type fraseService struct {
	repo  repository.FraseRepository
	cache *cache.Client
	hub   Broadcaster
}

// NewFraseService builds a FraseService with repository, cache and broadcaster.
func NewFraseService(repo repository.FraseRepository, cache *cache.Client, hub Broadcaster) FraseService {
	return &fraseService{repo: repo, cache: cache, hub: hub}
}

// Create inserts a new unapproved, unpinned quote and notifies clients.
func (s *fraseService) Create(ctx context.Context, texto string, autor *string) (*model.Frase, error) {
	if strings.TrimSpace(texto) == "" {
		return nil, apperrors.ErrEmptyTexto
	}

	frase := &model.Frase{
		Texto: texto,
		Autor: autor,
	}
	if err := s.repo.Create(ctx, frase); err != nil {
		return nil, err
	}

	s.notifyChanged(ctx)
	return frase, nil
}

func (s *fraseService) ListPending(ctx context.Context) ([]model.Frase, error) {
	return s.repo.ListByAprobada(ctx, false)
}

// ListApproved returns approved quotes newest-first, cache-aside in redis.
func (s *fraseService) ListApproved(ctx context.Context) ([]model.Frase, error) {
	if data, _ := s.cache.Get(ctx, aprobadasCacheKey); data != nil {
		var cached []model.Frase
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	frases, err := s.repo.ListByAprobada(ctx, true)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(frases); err == nil {
		_ = s.cache.Set(ctx, aprobadasCacheKey, payload, aprobadasCacheTTL)
	}
	return frases, nil
}

func (s *fraseService) ListAll(ctx context.Context) ([]model.Frase, error) {
	return s.repo.ListAll(ctx)
}

// Approve marks a quote as approved. Approving an already-approved quote is
// a no-op in effect; there is no way back to unapproved through this service.
func (s *fraseService) Approve(ctx context.Context, id uint) (*model.Frase, error) {
	frase, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFraseNotFound
		}
		return nil, err
	}

	frase.Aprobada = true
	if err := s.repo.Update(ctx, frase); err != nil {
		return nil, err
	}

	s.notifyChanged(ctx)
	return frase, nil
}

// SetPinned sets the pinned flag to the supplied value, either direction.
func (s *fraseService) SetPinned(ctx context.Context, id uint, fijada bool) (*model.Frase, error) {
	frase, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFraseNotFound
		}
		return nil, err
	}

	frase.Fijada = fijada
	if err := s.repo.Update(ctx, frase); err != nil {
		return nil, err
	}

	s.notifyChanged(ctx)
	return frase, nil
}

// Delete permanently removes a quote.
func (s *fraseService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrFraseNotFound
		}
		return err
	}

	s.notifyChanged(ctx)
	return nil
}

// notifyChanged broadcasts the change signal and drops the approved-list
// cache. Both are fire-and-forget and never fail the triggering request.
func (s *fraseService) notifyChanged(ctx context.Context) {
	_ = s.cache.Delete(ctx, aprobadasCacheKey)
	if s.hub != nil {
		s.hub.Broadcast(notify.EventQuoteUpdated)
	}
}
