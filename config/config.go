package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// DuplicatePolicy controls what register does when the phone already exists.
type DuplicatePolicy string

const (
	// DuplicateIdempotent answers with the normal success message and writes nothing.
	DuplicateIdempotent DuplicatePolicy = "idempotent"
	// DuplicateConflict answers 409.
	DuplicateConflict DuplicatePolicy = "conflict"
)

// Load reads .env once at startup. Missing file is fine, plain env vars win anyway.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func RedisAddr() string {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	return addr
}

// JWTSecret returns the signing secret. Empty means the deployment is
// misconfigured; callers must refuse to issue tokens.
func JWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	return port
}

// RegisterDuplicatePolicy picks the duplicate-phone behavior for register.
func RegisterDuplicatePolicy() DuplicatePolicy {
	if os.Getenv("REGISTER_DUPLICATE_POLICY") == string(DuplicateConflict) {
		return DuplicateConflict
	}
	return DuplicateIdempotent
}
