package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"frases/internal/model"
	"frases/internal/repository"
)

const bcryptCost = 10

// ErrMissingCredentials is returned when email or password is not supplied.
var ErrMissingCredentials = errors.New("admin email and password are required")

// AdminService provisions administrator accounts. It backs the offline
// createadmin utility and is never reachable from the HTTP surface.
type AdminService interface {
	ProvisionAdmin(ctx context.Context, email, password string) (created bool, err error)
}

type adminService struct {
	usuarioRepo repository.UsuarioRepository
}

// NewAdminService creates a new admin provisioning service.
func NewAdminService(usuarioRepo repository.UsuarioRepository) AdminService {
	return &adminService{usuarioRepo: usuarioRepo}
}

// ProvisionAdmin upserts the administrator record keyed by email: it creates
// the row when absent, deriving the display name from the email local-part,
// and rewrites only the password hash when present. Returns whether a new
// row was created.
func (s *adminService) ProvisionAdmin(ctx context.Context, email, password string) (bool, error) {
	if email == "" || password == "" {
		return false, ErrMissingCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	existing, err := s.usuarioRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("lookup admin: %w", err)
	}

	if existing != nil {
		existing.Password = string(hash)
		if err := s.usuarioRepo.Update(ctx, existing); err != nil {
			return false, fmt.Errorf("update admin: %w", err)
		}
		return false, nil
	}

	usuario := &model.Usuario{
		Nombre:   strings.SplitN(email, "@", 2)[0],
		Email:    email,
		Password: string(hash),
	}
	if err := s.usuarioRepo.Create(ctx, usuario); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}
