package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/hrahman/profilio/internal/domain/user"
)

type GetAccountUseCase struct {
	userRepo user.Repository
}

func NewGetAccountUseCase(repo user.Repository) *GetAccountUseCase {
	return &GetAccountUseCase{userRepo: repo}
}

func (uc *GetAccountUseCase) Execute(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	return uc.userRepo.FindByID(ctx, userID)
}
