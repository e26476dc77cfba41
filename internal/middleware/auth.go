package middleware

import (
	"context"
	"log"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gofiber/fiber/v3"
)

// AuthMiddleware verifies bearer tokens on the run API. The service is
// machine-to-machine, so callers present OIDC-issued JWTs rather than
// browser sessions.
type AuthMiddleware struct {
	verifier *oidc.IDTokenVerifier
}

// NewAuthMiddleware creates an auth middleware backed by the configured OIDC
// issuer. With no issuer configured, verification is disabled and all
// requests pass; that is only acceptable in development.
func NewAuthMiddleware(ctx context.Context, issuer, clientID string) (*AuthMiddleware, error) {
	if issuer == "" {
		log.Println("OIDC_ISSUER not set: run API authentication is DISABLED")
		return &AuthMiddleware{}, nil
	}

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, err
	}

	oidcCfg := &oidc.Config{ClientID: clientID}
	if clientID == "" {
		// Tokens from any audience at this issuer are accepted.
		oidcCfg.SkipClientIDCheck = true
	}

	return &AuthMiddleware{
		verifier: provider.Verifier(oidcCfg),
	}, nil
}

// RequireAuth rejects requests without a valid bearer token.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	if m.verifier == nil {
		return c.Next()
	}

	raw := bearerToken(c.Get("Authorization"))
	if raw == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error",
			"error":  "missing bearer token",
		})
	}

	token, err := m.verifier.Verify(c.Context(), raw)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error",
			"error":  "invalid bearer token",
		})
	}

	c.Locals("subject", token.Subject)
	return c.Next()
}

// bearerToken extracts the token from an Authorization header value.
func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
