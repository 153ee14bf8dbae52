// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "authsvc/internal/delivery/context"
	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/repository"
	"authsvc/internal/domain/service"
	"authsvc/internal/errors"
	"authsvc/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// bcrypt rejects inputs longer than 72 bytes; multi-byte passwords can pass
// the character limit and still exceed it.
const maxPasswordBytes = 72

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	validator    service.InputValidator
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Validator    service.InputValidator
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		validator:    params.Validator,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new account and returns its public projection.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError("request body is required")
	}

	normalized := *input
	normalized.Name = strings.TrimSpace(normalized.Name)
	normalized.Identifier = entity.NormalizeIdentifier(normalized.Identifier)

	if err := srv.validateSignup(&normalized); err != nil {
		return nil, err
	}

	role, err := entity.ParseRole(normalized.Role)
	if err != nil {
		return nil, domainerrors.NewValidationError("role must be one of: User, Admin")
	}

	srv.log(ctx).Info("Starting signup", slog.String("identifier", normalized.Identifier), slog.String("role", role.String()))

	var created *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, err := accountRepo.FindByIdentifier(ctx, normalized.Identifier)
		if err == nil {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("identifier already registered")
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to look up identifier")
		}

		hash, err := srv.hasher.Hash(normalized.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}

		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate account id")
		}

		account := &entity.Account{
			ID:           id,
			Name:         normalized.Name,
			Identifier:   normalized.Identifier,
			PasswordHash: hash,
			Role:         role,
		}
		// The unique index decides concurrent signups; Create maps its
		// violation to ErrAccountAlreadyExists.
		if err := accountRepo.Create(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create account")
		}

		created = account

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAccountAlreadyExists) {
			srv.log(ctx).Info("Signup rejected, identifier taken", slog.String("identifier", normalized.Identifier))

			return nil, err
		}

		srv.log(ctx).Error("Failed to execute signup transaction", slog.String("identifier", normalized.Identifier), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("accountID", created.ID))

	return &usecase.SignupOutput{Account: created.Public()}, nil
}

// Login verifies credentials and issues a token for the account.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError("request body is required")
	}

	normalized := *input
	normalized.Identifier = entity.NormalizeIdentifier(normalized.Identifier)

	if err := srv.validator.Validate(&normalized); err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindByIdentifier(ctx, normalized.Identifier)
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Info("Login failed", slog.String("identifier", normalized.Identifier))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}

	if !srv.hasher.Check(normalized.Password, account.PasswordHash) {
		srv.log(ctx).Info("Login failed", slog.String("identifier", normalized.Identifier))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, claims, err := srv.tokenService.Issue(service.IdentityClaims{
		AccountID: account.ID,
		Name:      account.Name,
		Role:      account.Role,
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to issue token: "+err.Error())
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresAt: claims.ExpiresAt,
		Account:   account.Public(),
	}, nil
}

// Authenticate resolves a bearer token to the account's current projection.
// The account is re-read so a deleted account stops authenticating at once.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.PublicAccount, error) {
	claims, err := srv.tokenService.Verify(token)
	if err != nil {
		srv.log(ctx).Debug("Token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.AccountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Info("Token names a missing account", slog.Any("accountID", claims.AccountID))

		return nil, domainerrors.ErrUnauthorized
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account")
	}

	return account.Public(), nil
}

// validateSignup runs struct validation and then the byte-length check the
// hasher depends on.
func (srv *authService) validateSignup(input *usecase.SignupInput) error {
	if err := srv.validator.Validate(input); err != nil {
		return err
	}
	if len(input.Password) > maxPasswordBytes {
		return domainerrors.NewValidationError("password must be at most 72 bytes")
	}

	return nil
}
