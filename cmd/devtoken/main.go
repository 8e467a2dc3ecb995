// devtoken ensures a user row exists and prints a signed bearer token for
// it. Development helper; the API itself never issues tokens.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"taskboard/internal/config"
	"taskboard/internal/db"
	"taskboard/internal/domain"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	email := flag.String("email", "test@example.com", "user email")
	name := flag.String("name", "Test User", "user name")
	password := flag.String("password", "password123", "user password")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg := config.Load()
	service.InitJWT(cfg.JWTSecret)

	pool := db.Connect(cfg.DatabaseURL)
	defer pool.Close()

	ctx := context.Background()
	if err := db.InitSchema(ctx, pool); err != nil {
		log.Fatalf("init schema: %v", err)
	}

	repo := repository.NewUserRepository(pool)

	u, err := repo.GetByEmail(ctx, *email)
	if err != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		u = &domain.User{
			ID:           uuid.NewString(),
			Email:        *email,
			Name:         *name,
			PasswordHash: string(hash),
		}
		if err := repo.Create(ctx, u); err != nil {
			log.Fatalf("create user: %v", err)
		}
		log.Printf("user created id=%s", u.ID)
	} else {
		log.Printf("user already exists id=%s", u.ID)
	}

	token, err := service.GenerateToken(u.ID, *ttl)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}
	fmt.Println(token)
}
