package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hrahman/profilio/internal/domain/calendar"
)

type postgresEventRepo struct {
	db *pgxpool.Pool
}

func NewPostgresEventRepo(db *pgxpool.Pool) calendar.Repository {
	return &postgresEventRepo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *postgresEventRepo) Save(ctx context.Context, e *calendar.Event) error {
	query := `
		INSERT INTO events (id, owner_id, title, description, start_time, end_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.OwnerID, e.Title, e.Description, e.StartTime, e.EndTime, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

func (r *postgresEventRepo) Update(ctx context.Context, e *calendar.Event) error {
	query := `
		UPDATE events
		SET title = $3, description = $4, start_time = $5, end_time = $6, updated_at = $7
		WHERE id = $1 AND owner_id = $2
	`
	tag, err := r.db.Exec(ctx, query,
		e.ID, e.OwnerID, e.Title, e.Description, e.StartTime, e.EndTime, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return calendar.ErrEventNotFound
	}
	return nil
}

func (r *postgresEventRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return calendar.ErrEventNotFound
	}
	return nil
}

func (r *postgresEventRepo) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*calendar.Event, error) {
	query := `
		SELECT id, owner_id, title, description, start_time, end_time, created_at, updated_at
		FROM events
		WHERE id = $1 AND owner_id = $2
	`
	return scanEvent(r.db.QueryRow(ctx, query, id, ownerID))
}

func (r *postgresEventRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, day time.Time) ([]*calendar.Event, error) {
	builder := psql.
		Select("id", "owner_id", "title", "description", "start_time", "end_time", "created_at", "updated_at").
		From("events").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("start_time ASC")

	if !day.IsZero() {
		startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		endOfDay := startOfDay.Add(24 * time.Hour)
		builder = builder.
			Where(sq.GtOrEq{"start_time": startOfDay}).
			Where(sq.Lt{"start_time": endOfDay})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build event list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := make([]*calendar.Event, 0)
	for rows.Next() {
		e := &calendar.Event{}
		err := rows.Scan(
			&e.ID, &e.OwnerID, &e.Title, &e.Description,
			&e.StartTime, &e.EndTime, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row during iteration: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}
	return events, nil
}

func scanEvent(row pgx.Row) (*calendar.Event, error) {
	e := &calendar.Event{}
	err := row.Scan(
		&e.ID, &e.OwnerID, &e.Title, &e.Description,
		&e.StartTime, &e.EndTime, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, calendar.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to scan event row: %w", err)
	}
	return e, nil
}
