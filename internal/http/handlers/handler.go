package handlers

import (
	"context"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TaskStore is what the task handlers need from persistence. Every
// operation is scoped by owner; "not yours" and "does not exist" are the
// same ErrTaskNotFound.
type TaskStore interface {
	List(ctx context.Context, userID string, filter domain.TaskFilter) ([]*domain.Task, error)
	Create(ctx context.Context, t *domain.Task) error
	GetByOwner(ctx context.Context, id int64, userID string) (*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id int64, userID string) error
	ToggleCompleted(ctx context.Context, id int64, userID string, now time.Time) (*domain.Task, error)
}

type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type Handler struct {
	Tasks TaskStore
	Users UserStore
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{
		Tasks: repository.NewTaskRepository(db),
		Users: repository.NewUserRepository(db),
	}
}

// getUserID reads the user id the JWT middleware stored in the context.
func getUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
