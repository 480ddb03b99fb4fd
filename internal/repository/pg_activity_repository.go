package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taskboard/panel/internal/model"
)

type pgActivityRepository struct {
	pool *pgxpool.Pool
}

// NewPgActivityRepository returns a PostgreSQL-backed ActivityRepository.
func NewPgActivityRepository(pool *pgxpool.Pool) ActivityRepository {
	return &pgActivityRepository{pool: pool}
}

func (r *pgActivityRepository) Insert(ctx context.Context, a *model.Activity) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO activities (id, type, actor_id, actor_name, target, success, message, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)`,
		a.ID, a.Type, a.ActorID, a.ActorName, a.Target, a.Success, a.Message, a.CreatedAt,
	)
	return err
}

const activitySelectQuery = `
	SELECT id, type, actor_id, actor_name, target, success, COALESCE(message, ''), created_at
	FROM activities`

func (r *pgActivityRepository) ListRecent(ctx context.Context, limit int) ([]*model.Activity, error) {
	rows, err := r.pool.Query(ctx,
		activitySelectQuery+` ORDER BY created_at DESC LIMIT $1`, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanActivities(rows)
}

func (r *pgActivityRepository) ListByActor(ctx context.Context, actorID, limit int) ([]*model.Activity, error) {
	rows, err := r.pool.Query(ctx,
		activitySelectQuery+` WHERE actor_id = $1 ORDER BY created_at DESC LIMIT $2`,
		actorID, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanActivities(rows)
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 200 {
		return 50
	}
	return limit
}

type scannable interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanActivities(rows scannable) ([]*model.Activity, error) {
	var items []*model.Activity
	for rows.Next() {
		a := &model.Activity{}
		if err := rows.Scan(
			&a.ID, &a.Type, &a.ActorID, &a.ActorName,
			&a.Target, &a.Success, &a.Message, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
