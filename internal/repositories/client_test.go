package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-fund-subscriptions/internal/logger"
	"github.com/sbilibin2017/gw-fund-subscriptions/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, err := container.Host(ctx)
	assert.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	assert.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	assert.NoError(t, err)

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	migrations := []string{
		`CREATE TABLE IF NOT EXISTS clients (
			user_id VARCHAR(100) PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(100) NOT NULL,
			phone VARCHAR(20),
			balance NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS funds (
			id_fund VARCHAR(100) PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			minimum_amount NUMERIC(20,2) NOT NULL,
			category VARCHAR(50) NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS transactions (
			transaction_id VARCHAR(100) PRIMARY KEY,
			user_id VARCHAR(100) NOT NULL,
			id_fund VARCHAR(100) NOT NULL,
			transaction_type VARCHAR(20) NOT NULL,
			amount NUMERIC(20,2) NOT NULL,
			timestamp TIMESTAMP NOT NULL,
			notification BOOLEAN NOT NULL DEFAULT FALSE
		);`,
	}

	for _, m := range migrations {
		_, err = db.Exec(m)
		assert.NoError(t, err)
	}

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

// --- Helper ---
func getClientBalance(t *testing.T, db *sqlx.DB, userID string) float64 {
	var balance float64
	err := db.Get(&balance, `SELECT balance FROM clients WHERE user_id=$1`, userID)
	assert.NoError(t, err)
	return balance
}

// --- ClientWriteRepository Tests ---
func TestClientWriteRepository_Save(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewClientWriteRepository(db)

	phone := "+573001234567"
	err := writer.Save(ctx, models.ClientDB{
		UserID:  "user1",
		Name:    "Alice",
		Email:   "alice@example.com",
		Phone:   &phone,
		Balance: 500000,
	})
	assert.NoError(t, err)
	assert.Equal(t, 500000.0, getClientBalance(t, db, "user1"))

	// Duplicate key
	err = writer.Save(ctx, models.ClientDB{
		UserID:  "user1",
		Name:    "Alice",
		Email:   "alice@example.com",
		Balance: 0,
	})
	assert.Error(t, err)
}

func TestClientWriteRepository_UpdateBalance(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewClientWriteRepository(db)

	err := writer.Save(ctx, models.ClientDB{
		UserID:  "user1",
		Name:    "Alice",
		Email:   "alice@example.com",
		Balance: 500000,
	})
	assert.NoError(t, err)

	err = writer.UpdateBalance(ctx, "user1", 425000)
	assert.NoError(t, err)
	assert.Equal(t, 425000.0, getClientBalance(t, db, "user1"))

	err = writer.UpdateBalance(ctx, "missing", 100)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

// --- ClientReadRepository Tests ---
func TestClientReadRepository_GetByUserID(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	phone := "+573001234567"
	_, err := db.Exec(`INSERT INTO clients (user_id, name, email, phone, balance) VALUES ($1, $2, $3, $4, $5)`,
		"user1", "Alice", "alice@example.com", phone, 500000.0)
	assert.NoError(t, err)

	reader := NewClientReadRepository(db)

	t.Run("existing client", func(t *testing.T) {
		client, err := reader.GetByUserID(ctx, "user1")
		assert.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "user1", client.UserID)
		assert.Equal(t, "Alice", client.Name)
		assert.Equal(t, "alice@example.com", client.Email)
		assert.NotNil(t, client.Phone)
		assert.Equal(t, phone, *client.Phone)
		assert.Equal(t, 500000.0, client.Balance)
	})

	t.Run("unknown client returns nil without error", func(t *testing.T) {
		client, err := reader.GetByUserID(ctx, "missing")
		assert.NoError(t, err)
		assert.Nil(t, client)
	})
}
