//go:build e2e

package dbtest

import (
	"context"
	"fmt"
	"time"

	"rentacar-api/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TestPassword is the plaintext password every seeded user shares.
const TestPassword = "password123"

var seededHash string

func hashedTestPassword() (string, error) {
	if seededHash != "" {
		return seededHash, nil
	}
	h, err := password.HashPassword(TestPassword)
	if err != nil {
		return "", err
	}
	seededHash = h
	return h, nil
}

// CreateUser inserts a user and returns its id.
func CreateUser(ctx context.Context, pool *pgxpool.Pool, email, role string) (uuid.UUID, error) {
	hash, err := hashedTestPassword()
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, first_name, last_name, is_active)
		VALUES ($1, $2, $3, $4, 'Test', 'User', true)`,
		id, email, hash, role)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to seed user %s: %w", email, err)
	}
	return id, nil
}

func DeactivateUser(ctx context.Context, pool *pgxpool.Pool, email string) error {
	_, err := pool.Exec(ctx, `UPDATE users SET is_active = false WHERE email = $1`, email)
	return err
}

// CreateCar inserts a car owned by the given actor and returns its id.
func CreateCar(ctx context.Context, pool *pgxpool.Pool, plate string, actorID uuid.UUID) (uuid.UUID, error) {
	id := uuid.New()
	_, err := pool.Exec(ctx, `
		INSERT INTO cars (id, plate_number, brand, model, year, color, price_per_day_cents, is_available, created_by, updated_by)
		VALUES ($1, $2, 'Toyota', 'Corolla', 2022, 'white', 850000, true, $3, $3)`,
		id, plate, actorID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to seed car %s: %w", plate, err)
	}
	return id, nil
}

// CreateUnavailableCar inserts a car that is withdrawn from the rental fleet.
func CreateUnavailableCar(ctx context.Context, pool *pgxpool.Pool, plate string, actorID uuid.UUID) (uuid.UUID, error) {
	id := uuid.New()
	_, err := pool.Exec(ctx, `
		INSERT INTO cars (id, plate_number, brand, model, year, color, price_per_day_cents, is_available, created_by, updated_by)
		VALUES ($1, $2, 'Toyota', 'Corolla', 2022, 'white', 850000, false, $3, $3)`,
		id, plate, actorID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to seed car %s: %w", plate, err)
	}
	return id, nil
}

// CreateReservation inserts a reservation directly, bypassing the API.
func CreateReservation(ctx context.Context, pool *pgxpool.Pool, userID, carID uuid.UUID, start, end time.Time, actorID uuid.UUID) (uuid.UUID, error) {
	id := uuid.New()
	_, err := pool.Exec(ctx, `
		INSERT INTO reservations (id, user_id, car_id, start_date, end_date, amount_cents, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, 5950000, $6, $6)`,
		id, userID, carID, start, end, actorID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to seed reservation: %w", err)
	}
	return id, nil
}

// ResetDB truncates all mutable tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `TRUNCATE reservations, cars, users CASCADE`)
	if err != nil {
		return fmt.Errorf("failed to reset database: %w", err)
	}
	return nil
}
