package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-fund-subscriptions/internal/logger"
	"github.com/sbilibin2017/gw-fund-subscriptions/internal/models"
)

var (
	// ErrClientAlreadyExists is returned when registering a client whose user_id is taken.
	ErrClientAlreadyExists = errors.New("client already exists")
	// ErrNegativeBalance is returned when registering a client with a negative opening balance.
	ErrNegativeBalance = errors.New("balance must not be negative")
)

// ClientWriter defines write operations for clients.
type ClientWriter interface {
	Save(ctx context.Context, client models.ClientDB) error
}

// ClientService handles client registration.
type ClientService struct {
	reader ClientReader
	writer ClientWriter
}

// NewClientService creates a new ClientService instance.
func NewClientService(reader ClientReader, writer ClientWriter) *ClientService {
	return &ClientService{reader: reader, writer: writer}
}

// Register creates a new client with its opening balance.
// Clients must exist before any fund transaction references them.
func (svc *ClientService) Register(ctx context.Context, client models.ClientDB) error {
	if client.Balance < 0 {
		logger.Log.Warnw("negative opening balance", "user_id", client.UserID, "balance", client.Balance)
		return ErrNegativeBalance
	}

	existing, err := svc.reader.GetByUserID(ctx, client.UserID)
	if err != nil {
		logger.Log.Errorw("failed to check client exists", "user_id", client.UserID, "error", err)
		return err
	}
	if existing != nil {
		logger.Log.Warnw("client already exists", "user_id", client.UserID)
		return ErrClientAlreadyExists
	}

	if err := svc.writer.Save(ctx, client); err != nil {
		logger.Log.Errorw("failed to save client", "user_id", client.UserID, "error", err)
		return err
	}

	return nil
}
