package repository

import (
	"context"
	"errors"
	"time"

	"taskboard/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrTaskNotFound covers both "no such task" and "task owned by someone
// else"; callers cannot tell the two apart.
var ErrTaskNotFound = errors.New("task not found")

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `id, user_id, title, description, completed, created_at, updated_at`

// List returns the caller's tasks in insertion order, optionally narrowed
// by completion state.
func (r *TaskRepository) List(ctx context.Context, userID string, filter domain.TaskFilter) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM task WHERE user_id = $1`
	switch filter {
	case domain.FilterPending:
		query += ` AND completed = FALSE`
	case domain.FilterCompleted:
		query += ` AND completed = TRUE`
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []*domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO task (user_id, title, description, completed, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		t.UserID, t.Title, t.Description, t.Completed, t.CreatedAt, t.UpdatedAt,
	).Scan(&t.ID)
}

// GetByOwner fetches a task by id scoped to its owner.
func (r *TaskRepository) GetByOwner(ctx context.Context, id int64, userID string) (*domain.Task, error) {
	var t domain.Task
	err := r.db.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM task WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE task SET title = $1, description = $2, completed = $3, updated_at = $4
		 WHERE id = $5 AND user_id = $6`,
		t.Title, t.Description, t.Completed, t.UpdatedAt, t.ID, t.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64, userID string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM task WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// ToggleCompleted flips the completion flag in a single statement and
// returns the updated row.
func (r *TaskRepository) ToggleCompleted(ctx context.Context, id int64, userID string, now time.Time) (*domain.Task, error) {
	var t domain.Task
	err := r.db.QueryRow(ctx,
		`UPDATE task SET completed = NOT completed, updated_at = $1
		 WHERE id = $2 AND user_id = $3
		 RETURNING `+taskColumns,
		now, id, userID,
	).Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}
