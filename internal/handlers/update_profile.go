package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/secondchance-backend/internal/logger"
	"github.com/sbilibin2017/secondchance-backend/internal/middlewares"
	"github.com/sbilibin2017/secondchance-backend/internal/services"
)

// ProfileUpdater defines the interface that the profile update service must implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, email, name string) (string, error)
}

// UpdateProfileRequest represents the JSON body for a profile update
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// New first name
	// required: true
	// example: John
	Name string `json:"name"`
}

// UpdateProfileResponse represents a successful profile update response
// swagger:model UpdateProfileResponse
type UpdateProfileResponse struct {
	// Freshly issued JWT token
	// example: JWT_TOKEN
	AuthToken string `json:"authtoken"`
}

// FieldError describes a single failed field validation
// swagger:model FieldError
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse carries field-level validation errors
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// NewUpdateProfileHandler returns an HTTP handler for profile updates.
// The account is identified by the email request header; the surrounding
// system is responsible for making sure that header is trustworthy.
// @Summary Update user profile
// @Description Sets the first name of the account identified by the email header and issues a fresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Param email header string true "Account email"
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile update request"
// @Success 200 {object} handlers.UpdateProfileResponse "Fresh token returned"
// @Failure 400 {object} handlers.ValidationErrorResponse "Validation failure / missing email"
// @Failure 404 {object} handlers.AuthErrorResponse "User not found"
// @Failure 500 {object} handlers.AuthErrorResponse "Internal server error"
// @Router /auth/update [put]
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateProfileRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ValidationErrorResponse{
				Errors: []FieldError{{Field: "name", Message: "invalid request body"}},
			})
			return
		}

		email := middlewares.GetEmailFromContext(r.Context())

		token, err := svc.UpdateProfile(r.Context(), email, req.Name)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidName):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ValidationErrorResponse{
					Errors: []FieldError{{Field: "name", Message: "name must be a non-empty string"}},
				})
			case errors.Is(err, services.ErrMissingEmail):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AuthErrorResponse{
					Message: "Email not found in the request headers",
				})
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AuthErrorResponse{
					Message: "User not found",
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
		json.NewEncoder(w).Encode(UpdateProfileResponse{
			AuthToken: token,
		})
	}
}
