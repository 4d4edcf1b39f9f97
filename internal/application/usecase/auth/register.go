package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hrahman/profilio/internal/domain/user"
	"github.com/hrahman/profilio/pkg/apperror"
	"github.com/hrahman/profilio/pkg/auth"
	"github.com/hrahman/profilio/pkg/logger"
)

type RegisterUseCase struct {
	userRepo user.Repository
	logger   logger.Logger
}

func NewRegisterUseCase(repo user.Repository, log logger.Logger) *RegisterUseCase {
	return &RegisterUseCase{userRepo: repo, logger: log}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterOutput struct {
	UserID uuid.UUID
}

func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	now := time.Now().UTC()
	newUser := &user.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         user.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := newUser.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("user validation failed", err)
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return nil, apperror.NewConflict("user", "email", input.Email)
		}
		return nil, err
	}

	return &RegisterOutput{UserID: newUser.ID}, nil
}
