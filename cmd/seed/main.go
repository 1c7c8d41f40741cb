package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/cnic-auth/backend/config"
	"github.com/cnic-auth/backend/pkg/helpers"
)

// Seeds a superuser account (active, staff, superuser). Idempotent: an
// existing email just gets its name refreshed, never a new password.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	email := envOr("SUPERUSER_EMAIL", "admin@example.com")
	cnic := envOr("SUPERUSER_CNIC", "0000000000000")
	fullName := envOr("SUPERUSER_NAME", "Site Admin")
	password := envOr("SUPERUSER_PASSWORD", "changeme123")

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (full_name, email, cnic, gender, dob, password_hash, is_active, is_staff, is_superuser)
		VALUES ($1, $2, $3, 'other', '1970-01-01', $4, TRUE, TRUE, TRUE)
		ON CONFLICT (email) DO UPDATE SET full_name = EXCLUDED.full_name
		RETURNING user_id
	`, fullName, email, cnic, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed superuser: %v", err)
	}
	fmt.Printf("superuser ready: user_id=%s email=%s cnic=%s\n", userID, email, cnic)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
