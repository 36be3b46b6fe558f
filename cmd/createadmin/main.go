package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/racedaybr/pitvote/internal/domain/admin"
	"github.com/racedaybr/pitvote/internal/infrastructure/repository/postgres"
	"github.com/racedaybr/pitvote/internal/platform/password"
)

// createadmin seeds or rotates an admin credential. The API has no signup
// surface, so this is the only way accounts come to exist.
func main() {
	_ = godotenv.Load()

	username := flag.String("username", "", "admin username")
	plaintext := flag.String("password", "", "admin password (falls back to ADMIN_PASSWORD)")
	flag.Parse()

	name := strings.TrimSpace(*username)
	if name == "" {
		log.Fatal("-username is required")
	}

	secret := *plaintext
	if secret == "" {
		secret = os.Getenv("ADMIN_PASSWORD")
	}
	if len(secret) < 8 {
		log.Fatal("password must be at least 8 characters (use -password or ADMIN_PASSWORD)")
	}

	dbURL := strings.TrimSpace(os.Getenv("DB_URL"))
	if dbURL == "" {
		log.Fatal("DB_URL is required")
	}

	cost := 0
	if raw := strings.TrimSpace(os.Getenv("AUTH_BCRYPT_COST")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("parse AUTH_BCRYPT_COST: %v", err)
		}
		cost = parsed
	}

	hash, err := password.NewHasher(cost).Hash(secret)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := postgres.NewAdminRepository(db).Upsert(ctx, admin.Credential{
		Username:     name,
		PasswordHash: hash,
	}); err != nil {
		log.Fatalf("upsert admin: %v", err)
	}

	log.Printf("admin %q ready", name)
}
