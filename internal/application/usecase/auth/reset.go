package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hrahman/profilio/internal/domain/user"
	"github.com/hrahman/profilio/internal/reminder"
	"github.com/hrahman/profilio/pkg/apperror"
	"github.com/hrahman/profilio/pkg/auth"
	"github.com/hrahman/profilio/pkg/logger"
)

type RequestPasswordResetUseCase struct {
	userRepo   user.Repository
	tokenStore user.ResetTokenStore
	mailer     reminder.MailSender
	tokenTTL   time.Duration
	linkBase   string
	logger     logger.Logger
}

func NewRequestPasswordResetUseCase(
	repo user.Repository,
	tokens user.ResetTokenStore,
	mailer reminder.MailSender,
	tokenTTL time.Duration,
	linkBase string,
	log logger.Logger,
) *RequestPasswordResetUseCase {
	return &RequestPasswordResetUseCase{
		userRepo:   repo,
		tokenStore: tokens,
		mailer:     mailer,
		tokenTTL:   tokenTTL,
		linkBase:   linkBase,
		logger:     log,
	}
}

// Execute issues a reset token and mails the reset link. An unknown email
// is not an error: the endpoint must not leak which accounts exist.
func (uc *RequestPasswordResetUseCase) Execute(ctx context.Context, email string) error {
	u, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			uc.logger.Debug("password reset requested for unknown email", zap.String("email", email))
			return nil
		}
		return err
	}

	token, err := auth.NewResetToken()
	if err != nil {
		return apperror.NewInternal("failed to generate reset token", err)
	}

	if err := uc.tokenStore.Put(ctx, token, u.ID, uc.tokenTTL); err != nil {
		return apperror.NewInternal("failed to store reset token", err)
	}

	body := fmt.Sprintf(`To reset your password, visit the following link:
%s/%s

If you did not make this request then simply ignore this email and no changes will be made.
`, uc.linkBase, token)

	if err := uc.mailer.Send(u.Email, "Password Reset Request", body); err != nil {
		uc.logger.Error("failed to send reset email", err, zap.String("user_id", u.ID.String()))
		return apperror.NewDependencyFailure("mail sender", err)
	}

	return nil
}

type ResetPasswordUseCase struct {
	userRepo   user.Repository
	tokenStore user.ResetTokenStore
	logger     logger.Logger
}

func NewResetPasswordUseCase(repo user.Repository, tokens user.ResetTokenStore, log logger.Logger) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{userRepo: repo, tokenStore: tokens, logger: log}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, token, newPassword string) error {
	userID, err := uc.tokenStore.Redeem(ctx, token)
	if err != nil {
		if errors.Is(err, user.ErrResetTokenNotFound) {
			return apperror.NewUnauthorized("invalid or expired reset token", err)
		}
		return err
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperror.NewInternal("failed to hash password", err)
	}

	if err := uc.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	uc.logger.Info("password reset completed", zap.String("user_id", userID.String()))
	return nil
}
