package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ykarpenko/ledger-sync/internal/services"
)

func TestDeleteTransactionHandler(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name               string
		targetID           string
		setupMocks         func(mockDeleter *MockTransactionDeleter)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:     "successful delete",
			targetID: id.String(),
			setupMocks: func(mockDeleter *MockTransactionDeleter) {
				mockDeleter.EXPECT().Delete(gomock.Any(), id).Return(nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "message",
		},
		{
			name:               "malformed identifier",
			targetID:           "not-a-uuid",
			setupMocks:         func(mockDeleter *MockTransactionDeleter) {},
			expectedStatusCode: http.StatusNotFound,
			expectedKey:        "error",
		},
		{
			name:     "transaction not found",
			targetID: id.String(),
			setupMocks: func(mockDeleter *MockTransactionDeleter) {
				mockDeleter.EXPECT().Delete(gomock.Any(), id).Return(services.ErrTransactionNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedKey:        "error",
		},
		{
			name:     "store failure",
			targetID: id.String(),
			setupMocks: func(mockDeleter *MockTransactionDeleter) {
				mockDeleter.EXPECT().Delete(gomock.Any(), id).Return(errors.New("store unavailable"))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDeleter := NewMockTransactionDeleter(ctrl)
			tt.setupMocks(mockDeleter)

			r := chi.NewRouter()
			r.Delete("/api/transactions/{id}", NewDeleteTransactionHandler(mockDeleter))

			req := httptest.NewRequest(http.MethodDelete, "/api/transactions/"+tt.targetID, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var body map[string]any
			err := json.NewDecoder(rr.Body).Decode(&body)
			assert.NoError(t, err)
			assert.Contains(t, body, tt.expectedKey)
		})
	}
}
