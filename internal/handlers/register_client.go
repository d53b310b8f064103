package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-fund-subscriptions/internal/logger"
	"github.com/sbilibin2017/gw-fund-subscriptions/internal/models"
	"github.com/sbilibin2017/gw-fund-subscriptions/internal/services"
)

// ClientRegisterer defines the interface that the service must implement.
type ClientRegisterer interface {
	Register(ctx context.Context, client models.ClientDB) error
}

// RegisterClientRequest represents the JSON body for client registration
// swagger:model RegisterClientRequest
type RegisterClientRequest struct {
	// Client identifier
	// required: true
	// default: user123
	UserID string `json:"user_id"`

	// Client full name
	// required: true
	// default: John Doe
	Name string `json:"name"`

	// Client email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Optional phone number
	// default: +573001234567
	Phone *string `json:"phone,omitempty"`

	// Opening balance
	// required: true
	// default: 500000.0
	Balance float64 `json:"balance"`
}

// RegisterClientResponse represents a successful registration response
// swagger:model RegisterClientResponse
type RegisterClientResponse struct {
	// Success message
	// default: Client registered successfully
	Message string `json:"message"`
}

// RegisterClientErrorResponse represents an error response for client registration
// swagger:model RegisterClientErrorResponse
type RegisterClientErrorResponse struct {
	// Error message
	// default: client already exists
	Error string `json:"error"`
}

// NewRegisterClientHandler returns an HTTP handler for registering a client.
// @Summary Register a new client
// @Description Creates a client record with its opening balance. Clients must exist before any fund transaction references them.
// @Tags clients
// @Accept json
// @Produce json
// @Param request body handlers.RegisterClientRequest true "Client registration request"
// @Success 201 {object} handlers.RegisterClientResponse "Client successfully registered"
// @Failure 400 {object} handlers.RegisterClientErrorResponse "Client already exists / invalid request"
// @Failure 500 {object} handlers.RegisterClientErrorResponse "Dependency failure"
// @Router /clients [post]
func NewRegisterClientHandler(svc ClientRegisterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req RegisterClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode register client request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterClientErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.UserID == "" || req.Name == "" || req.Email == "" {
			logger.Log.Warnw("missing required client fields", "user_id", req.UserID)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterClientErrorResponse{Error: "user_id, name and email are required"})
			return
		}

		err := svc.Register(r.Context(), models.ClientDB{
			UserID:  req.UserID,
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Balance: req.Balance,
		})
		if err != nil {
			switch err {
			case services.ErrClientAlreadyExists, services.ErrNegativeBalance:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterClientErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterClientErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterClientResponse{Message: "Client registered successfully"})
	}
}
