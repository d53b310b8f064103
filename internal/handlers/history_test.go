package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-fund-subscriptions/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	later := time.Date(2025, 3, 1, 12, 5, 0, 0, time.UTC)
	earlier := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mockReader := NewMockTransactionLister(ctrl)
	mockReader.EXPECT().ListAll(gomock.Any()).Return([]models.TransactionDB{
		{
			TransactionID:   "22222222-2222-2222-2222-222222222222",
			UserID:          "u1",
			IDFund:          "F1",
			TransactionType: "cancel",
			Amount:          500,
			Timestamp:       later,
			Notification:    false,
		},
		{
			TransactionID:   "11111111-1111-1111-1111-111111111111",
			UserID:          "u1",
			IDFund:          "F1",
			TransactionType: "subscribe",
			Amount:          500,
			Timestamp:       earlier,
			Notification:    true,
		},
	}, nil)

	handler := NewHistoryHandler(mockReader)

	req := httptest.NewRequest(http.MethodGet, "/funds/history", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []models.TransactionDB
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 2)
	// Newest first
	assert.Equal(t, "cancel", resp[0].TransactionType)
	assert.Equal(t, "subscribe", resp[1].TransactionType)
	assert.True(t, resp[0].Timestamp.After(resp[1].Timestamp))
}

func TestHistoryHandler_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockTransactionLister(ctrl)
	mockReader.EXPECT().ListAll(gomock.Any()).Return([]models.TransactionDB{}, nil)

	handler := NewHistoryHandler(mockReader)

	req := httptest.NewRequest(http.MethodGet, "/funds/history", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestHistoryHandler_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockTransactionLister(ctrl)
	mockReader.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("scan failed"))

	handler := NewHistoryHandler(mockReader)

	req := httptest.NewRequest(http.MethodGet, "/funds/history", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp map[string]any
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Contains(t, resp, "error")
}

func TestHealthHandler(t *testing.T) {
	handler := NewHealthHandler()

	req := httptest.NewRequest(http.MethodGet, "/funds/health", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","service":"funds-api"}`, rr.Body.String())
}
