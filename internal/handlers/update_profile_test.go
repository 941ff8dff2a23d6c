package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/secondchance-backend/internal/middlewares"
	"github.com/sbilibin2017/secondchance-backend/internal/services"
)

func TestUpdateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileUpdater(ctrl)

	// The handler runs behind the email header middleware in production;
	// mirror that chain here.
	handler := middlewares.EmailHeaderMiddleware()(NewUpdateProfileHandler(mockSvc))

	tests := []struct {
		name         string
		emailHeader  string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name:        "success",
			emailHeader: "a@x.com",
			inputBody:   UpdateProfileRequest{Name: "Ann"},
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdateProfile(gomock.Any(), "a@x.com", "Ann").
					Return("FRESH_TOKEN", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:        "blank name",
			emailHeader: "a@x.com",
			inputBody:   UpdateProfileRequest{Name: "  "},
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdateProfile(gomock.Any(), "a@x.com", "  ").
					Return("", services.ErrInvalidName)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:        "missing email header",
			emailHeader: "",
			inputBody:   UpdateProfileRequest{Name: "Ann"},
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdateProfile(gomock.Any(), "", "Ann").
					Return("", services.ErrMissingEmail)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:        "user not found",
			emailHeader: "ghost@x.com",
			inputBody:   UpdateProfileRequest{Name: "Ann"},
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdateProfile(gomock.Any(), "ghost@x.com", "Ann").
					Return("", services.ErrUserDoesNotExist)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid JSON",
			emailHeader:  "a@x.com",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var body bytes.Buffer
			switch v := tt.inputBody.(type) {
			case string:
				body.WriteString(v)
			default:
				assert.NoError(t, json.NewEncoder(&body).Encode(v))
			}

			req := httptest.NewRequest(http.MethodPut, "/api/auth/update", &body)
			if tt.emailHeader != "" {
				req.Header.Set("email", tt.emailHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedCode == http.StatusOK {
				var got UpdateProfileResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, "FRESH_TOKEN", got.AuthToken)
			}
		})
	}
}
