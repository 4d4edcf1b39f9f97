package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hrahman/profilio/internal/domain/blog"
)

type postgresBlogRepo struct {
	db *pgxpool.Pool
}

func NewPostgresBlogRepo(db *pgxpool.Pool) blog.Repository {
	return &postgresBlogRepo{db: db}
}

func (r *postgresBlogRepo) Save(ctx context.Context, p *blog.Post) error {
	query := `
		INSERT INTO blog_posts (id, owner_id, title, content, date_posted, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, p.ID, p.OwnerID, p.Title, p.Content, p.DatePosted, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert blog post: %w", err)
	}
	return nil
}

func (r *postgresBlogRepo) Update(ctx context.Context, p *blog.Post) error {
	query := `
		UPDATE blog_posts
		SET title = $3, content = $4, updated_at = $5
		WHERE id = $1 AND owner_id = $2
	`
	tag, err := r.db.Exec(ctx, query, p.ID, p.OwnerID, p.Title, p.Content, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update blog post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return blog.ErrPostNotFound
	}
	return nil
}

func (r *postgresBlogRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return blog.ErrPostNotFound
	}
	return nil
}

func (r *postgresBlogRepo) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*blog.Post, error) {
	query := `
		SELECT id, owner_id, title, content, date_posted, updated_at
		FROM blog_posts
		WHERE id = $1 AND owner_id = $2
	`
	p := &blog.Post{}
	err := r.db.QueryRow(ctx, query, id, ownerID).Scan(
		&p.ID, &p.OwnerID, &p.Title, &p.Content, &p.DatePosted, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to query blog post: %w", err)
	}
	return p, nil
}

func (r *postgresBlogRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*blog.Post, error) {
	query := `
		SELECT id, owner_id, title, content, date_posted, updated_at
		FROM blog_posts
		WHERE owner_id = $1
		ORDER BY date_posted DESC
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*blog.Post, 0)
	for rows.Next() {
		p := &blog.Post{}
		err := rows.Scan(&p.ID, &p.OwnerID, &p.Title, &p.Content, &p.DatePosted, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog post row: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
