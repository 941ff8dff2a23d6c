package middlewares

import (
	"context"
	"net/http"
)

// contextKey is an unexported type for keys in context
type contextKey struct{}

var emailKey = contextKey{}

// EmailHeaderMiddleware copies the email request header into the request
// context. The header is the identity source for profile updates; trusting it
// is a boundary concern of the surrounding system.
func EmailHeaderMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := setEmailToContext(r.Context(), r.Header.Get("email"))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// setEmailToContext stores the identifying email in the context
func setEmailToContext(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

// GetEmailFromContext retrieves the identifying email from the context.
// Returns "" if not present.
func GetEmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(emailKey).(string)
	return email
}
