package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hrahman/profilio/internal/reminder"
)

// DeliveryLogRepository persists reminder dispatch outcomes consumed from
// the audit topic, giving operators a durable record of what fired.
type DeliveryLogRepository interface {
	Insert(ctx context.Context, d reminder.Delivery) error
}

type postgresDeliveryLogRepo struct {
	db *pgxpool.Pool
}

func NewPostgresDeliveryLogRepo(db *pgxpool.Pool) DeliveryLogRepository {
	return &postgresDeliveryLogRepo{db: db}
}

func (r *postgresDeliveryLogRepo) Insert(ctx context.Context, d reminder.Delivery) error {
	query := `
		INSERT INTO reminder_deliveries (event_id, recipient, status, error, fired_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, d.EventID, d.Recipient, d.Status, d.Error, d.FiredAt)
	if err != nil {
		return fmt.Errorf("failed to insert reminder delivery: %w", err)
	}
	return nil
}
