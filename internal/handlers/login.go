package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/secondchance-backend/internal/logger"
	"github.com/sbilibin2017/secondchance-backend/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token
	// example: JWT_TOKEN
	AuthToken string `json:"authtoken"`

	// Stored first name
	// example: John
	FirstName string `json:"firstName"`

	// Email
	// example: john@example.com
	Email string `json:"email"`
}

// WrongPasswordResponse represents the credential-mismatch response
// swagger:model WrongPasswordResponse
type WrongPasswordResponse struct {
	// Error message
	// example: Wrong pasword
	Error string `json:"error"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates an account and returns a token together with the stored first name.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Token, first name and email returned"
// @Failure 400 {object} handlers.AuthErrorResponse "Missing fields / user does not exist"
// @Failure 404 {object} handlers.WrongPasswordResponse "Credential mismatch"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AuthErrorResponse{
				Message: "invalid request body",
			})
			return
		}

		token, firstName, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingCredentials):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AuthErrorResponse{
					Message: "Username and password are required",
				})
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AuthErrorResponse{
					Message: "User does not exist",
				})
			case errors.Is(err, services.ErrWrongPassword):
				// 404 with the original's body, typo and all. Whether this
				// should be a 401 is an open product decision.
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(WrongPasswordResponse{
					Error: "Wrong pasword",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AuthErrorResponse{
					Message: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			AuthToken: token,
			FirstName: firstName,
			Email:     req.Email,
		})
	}
}
