package application

import (
	"context"
	"errors"
	"strings"

	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/auth/ports"
)

// User-facing failure strings for recognized provider errors.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgSignInFailed       = "Something went wrong."
)

// Service adapts login form submissions to the configured credential
// provider.
type Service struct {
	provider ports.CredentialProvider
}

// NewService wires the auth service with its provider.
func NewService(provider ports.CredentialProvider) *Service {
	return &Service{provider: provider}
}

// Authenticate signs the submitted credentials in under the credentials
// strategy. Recognized provider failures come back as a user-facing
// message with a nil error; anything unrecognized propagates so the caller
// can treat it as a fault rather than a login rejection. An empty message
// with a nil error means the sign-in succeeded.
func (s *Service) Authenticate(ctx context.Context, form map[string]string) (string, error) {
	if s == nil || s.provider == nil {
		return "", errors.New("auth provider not configured")
	}
	creds := ports.Credentials{
		Email:    strings.TrimSpace(form["email"]),
		Password: form["password"],
	}
	err := s.provider.SignIn(ctx, ports.StrategyCredentials, creds)
	if err == nil {
		return "", nil
	}
	var providerErr *ports.ProviderError
	if errors.As(err, &providerErr) {
		if providerErr.Code == ports.CodeCredentialsSignin {
			return MsgInvalidCredentials, nil
		}
		return MsgSignInFailed, nil
	}
	return "", err
}

// Logout tears down the session for the given email. Unknown emails are a
// no-op.
func (s *Service) Logout(ctx context.Context, email string) error {
	if s == nil || s.provider == nil {
		return errors.New("auth provider not configured")
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}
	return s.provider.SignOut(ctx, email)
}
