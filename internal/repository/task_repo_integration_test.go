package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"taskboard/internal/db"
	"taskboard/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := db.InitSchema(context.Background(), pool); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return pool
}

func TestTaskRepository_CRUD(t *testing.T) {
	pool := testPool(t)
	repo := NewTaskRepository(pool)
	ctx := context.Background()

	owner := "it-owner-" + time.Now().Format("150405.000000")
	now := time.Now().UTC()

	task := &domain.Task{
		UserID:      owner,
		Title:       "integration task",
		Description: "from the repository test",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.ID == 0 {
		t.Fatal("id not assigned")
	}

	got, err := repo.GetByOwner(ctx, task.ID, owner)
	if err != nil {
		t.Fatalf("get by owner: %v", err)
	}
	if got.Title != task.Title || got.Completed {
		t.Fatalf("unexpected row: %+v", got)
	}

	// scoped fetch with the wrong owner behaves like a missing row
	if _, err := repo.GetByOwner(ctx, task.ID, "someone-else"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound for foreign owner, got %v", err)
	}

	toggled, err := repo.ToggleCompleted(ctx, task.ID, owner, time.Now().UTC())
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !toggled.Completed {
		t.Fatal("toggle did not flip completed")
	}

	list, err := repo.List(ctx, owner, domain.FilterCompleted)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != task.ID {
		t.Fatalf("unexpected listing: %+v", list)
	}

	if err := repo.Delete(ctx, task.ID, owner); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, task.ID, owner); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound on second delete, got %v", err)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	pool := testPool(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	email := "dup-" + time.Now().Format("150405.000000") + "@example.com"
	u := &domain.User{ID: "it-" + email, Email: email, Name: "It"}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	dup := &domain.User{ID: u.ID + "-2", Email: email}
	if err := repo.Create(ctx, dup); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}
