package account

import (
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barbearia-api/internal/auth"
	"github.com/BruksfildServices01/barbearia-api/internal/domain"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/account"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/authz"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/notify"
	"github.com/BruksfildServices01/barbearia-api/internal/validators"
)

const minPasswordLen = 6

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type Register struct {
	users    account.Repository
	tokens   *auth.TokenService
	notifier *notify.Notifier
	baseURL  string

	// DomainCheck, when set, must accept the e-mail's domain.
	DomainCheck func(ctx context.Context, email string) bool
}

func NewRegister(
	users account.Repository,
	tokens *auth.TokenService,
	notifier *notify.Notifier,
	baseURL string,
) *Register {
	return &Register{
		users:    users,
		tokens:   tokens,
		notifier: notifier,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

// WithDomainCheck enables the MX/A lookup of the e-mail domain.
func (uc *Register) WithDomainCheck() *Register {
	uc.DomainCheck = validators.IsEmailDomainValid
	return uc
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*Session, error) {
	if len(in.Password) < minPasswordLen {
		return nil, httperr.ErrValidation(
			"validation_error", "Dados inválidos.",
			"senha deve ter no mínimo 6 caracteres",
		)
	}

	email := account.NormalizeEmail(in.Email)

	if uc.DomainCheck != nil && !uc.DomainCheck(ctx, email) {
		return nil, httperr.ErrValidation(
			"invalid_email_domain",
			"O domínio do e-mail informado não parece ser válido.",
		)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: hash,
		Role:         authz.RoleCustomer,
	}

	if err := validators.Struct(user); err != nil {
		return nil, err
	}

	if err := uc.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, errEmailTaken
		}
		return nil, err
	}

	// --------------------------------------------------
	// Confirmação de e-mail (falha só é registrada)
	// --------------------------------------------------
	if token, err := uc.tokens.IssueEmailConfirmation(user.ID); err != nil {
		log.WithError(err).WithField("user_id", user.ID).Warn("confirmation token not issued")
	} else {
		uc.notifier.Notify(notify.EmailConfirmation(user, uc.confirmationLink(token)))
	}

	return newSession(uc.tokens, user)
}

func (uc *Register) confirmationLink(token string) string {
	return uc.baseURL + "/api/auth/confirmar-email/" + token
}
