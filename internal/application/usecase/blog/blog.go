package blog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hrahman/profilio/internal/domain/blog"
	"github.com/hrahman/profilio/pkg/apperror"
	"github.com/hrahman/profilio/pkg/logger"
)

type BlogUseCase struct {
	repo   blog.Repository
	logger logger.Logger
}

func NewBlogUseCase(r blog.Repository, log logger.Logger) *BlogUseCase {
	return &BlogUseCase{repo: r, logger: log}
}

type PostInput struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Title   string
	Content string
}

func (uc *BlogUseCase) CreatePost(ctx context.Context, in PostInput) (*blog.Post, error) {
	now := time.Now().UTC()
	p := &blog.Post{
		ID:         uuid.New(),
		OwnerID:    in.OwnerID,
		Title:      in.Title,
		Content:    in.Content,
		DatePosted: now,
		UpdatedAt:  now,
	}
	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("blog post validation failed", err)
	}
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *BlogUseCase) UpdatePost(ctx context.Context, in PostInput) (*blog.Post, error) {
	p, err := uc.repo.FindByID(ctx, in.ID, in.OwnerID)
	if err != nil {
		return nil, err
	}

	p.Title = in.Title
	p.Content = in.Content
	p.UpdatedAt = time.Now().UTC()

	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("blog post validation failed", err)
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *BlogUseCase) GetPost(ctx context.Context, id, ownerID uuid.UUID) (*blog.Post, error) {
	return uc.repo.FindByID(ctx, id, ownerID)
}

func (uc *BlogUseCase) ListPosts(ctx context.Context, ownerID uuid.UUID) ([]*blog.Post, error) {
	return uc.repo.ListByOwner(ctx, ownerID)
}

func (uc *BlogUseCase) DeletePost(ctx context.Context, id, ownerID uuid.UUID) error {
	return uc.repo.Delete(ctx, id, ownerID)
}
