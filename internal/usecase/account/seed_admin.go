package account

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barbearia-api/internal/auth"
	"github.com/BruksfildServices01/barbearia-api/internal/domain"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/account"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/authz"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type SeedAdmin struct {
	users account.Repository
}

func NewSeedAdmin(users account.Repository) *SeedAdmin {
	return &SeedAdmin{users: users}
}

// Execute makes sure a confirmed admin with the given e-mail exists. An
// existing user keeps its password and is promoted.
func (uc *SeedAdmin) Execute(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	email = account.NormalizeEmail(email)

	existing, err := uc.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role == authz.RoleAdmin && existing.EmailConfirmed {
			return nil
		}
		existing.Role = authz.RoleAdmin
		existing.EmailConfirmed = true
		log.WithField("email", email).Info("promoting seed user to admin")
		return uc.users.Update(ctx, existing)

	case !errors.Is(err, domain.ErrNotFound):
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:           "Administrador",
		Email:          email,
		PasswordHash:   hash,
		Role:           authz.RoleAdmin,
		EmailConfirmed: true,
	}
	if err := uc.users.Create(ctx, admin); err != nil {
		return err
	}

	log.WithField("email", email).Info("seed admin created")
	return nil
}
