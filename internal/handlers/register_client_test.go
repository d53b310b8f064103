package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-fund-subscriptions/internal/models"
	"github.com/sbilibin2017/gw-fund-subscriptions/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterClientHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockClientRegisterer)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name: "successful registration",
			requestBody: RegisterClientRequest{
				UserID:  "u1",
				Name:    "Jane Doe",
				Email:   "jane@example.com",
				Balance: 500000,
			},
			setupMocks: func(mockSvc *MockClientRegisterer) {
				mockSvc.EXPECT().Register(gomock.Any(), models.ClientDB{
					UserID:  "u1",
					Name:    "Jane Doe",
					Email:   "jane@example.com",
					Balance: 500000,
				}).Return(nil)
			},
			expectedStatusCode: http.StatusCreated,
			expectedKey:        "message",
		},
		{
			name:               "invalid request body",
			requestBody:        "invalid-json",
			setupMocks:         func(mockSvc *MockClientRegisterer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name: "missing required fields",
			requestBody: RegisterClientRequest{
				UserID: "u1",
			},
			setupMocks:         func(mockSvc *MockClientRegisterer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name: "client already exists",
			requestBody: RegisterClientRequest{
				UserID:  "u1",
				Name:    "Jane Doe",
				Email:   "jane@example.com",
				Balance: 100,
			},
			setupMocks: func(mockSvc *MockClientRegisterer) {
				mockSvc.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(services.ErrClientAlreadyExists)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name: "negative opening balance",
			requestBody: RegisterClientRequest{
				UserID:  "u1",
				Name:    "Jane Doe",
				Email:   "jane@example.com",
				Balance: -100,
			},
			setupMocks: func(mockSvc *MockClientRegisterer) {
				mockSvc.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(services.ErrNegativeBalance)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name: "dependency failure",
			requestBody: RegisterClientRequest{
				UserID:  "u1",
				Name:    "Jane Doe",
				Email:   "jane@example.com",
				Balance: 100,
			},
			setupMocks: func(mockSvc *MockClientRegisterer) {
				mockSvc.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(errors.New("insert failed"))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockClientRegisterer(ctrl)
			tt.setupMocks(mockSvc)

			handler := NewRegisterClientHandler(mockSvc)

			var body bytes.Buffer
			switch v := tt.requestBody.(type) {
			case string:
				body.WriteString(v)
			default:
				assert.NoError(t, json.NewEncoder(&body).Encode(v))
			}

			req := httptest.NewRequest(http.MethodPost, "/clients", &body)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]any
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Contains(t, resp, tt.expectedKey)
		})
	}
}
