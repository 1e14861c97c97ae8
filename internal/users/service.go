package users

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MilenaSucharski/projeto-faculdade-SB/internal/common"
	"github.com/MilenaSucharski/projeto-faculdade-SB/internal/cryptox"
)

// Service implements registration and authentication on top of a Repository.
type Service struct {
	repo Repository
}

// NewService returns a Service bound to the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new account. It generates a fresh random salt, derives
// the password digest, and persists the row. A duplicate id fails with
// common.ErrorDuplicateID and leaves the existing account untouched.
//
// Password confirmation (typing it twice) is a caller concern; the service
// only requires a non-empty password.
func (s *Service) Register(ctx context.Context, id int64, name string, password []byte) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be a positive number", common.ErrorValidation)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name must not be empty", common.ErrorValidation)
	}
	if len(password) == 0 {
		return fmt.Errorf("%w: password must not be empty", common.ErrorValidation)
	}

	salt := cryptox.NewSalt()
	user := &User{
		ID:        id,
		Name:      name,
		Digest:    cryptox.DeriveDigest(password, salt),
		Salt:      salt,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Create(ctx, user)
}

// Authenticate verifies the password for the given id. An unknown id fails
// with common.ErrorNotFound; a digest mismatch with common.ErrorWrongPassword.
// On success the stored user is returned.
func (s *Service) Authenticate(ctx context.Context, id int64, password []byte) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !cryptox.VerifyDigest(password, user.Salt, user.Digest) {
		return nil, common.ErrorWrongPassword
	}
	return user, nil
}
