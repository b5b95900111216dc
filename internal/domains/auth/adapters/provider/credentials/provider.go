package credentials

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/auth/ports"
)

var _ ports.CredentialProvider = (*Provider)(nil)

// Provider validates credentials against the user repository and records a
// session on success.
type Provider struct {
	users    ports.UserRepository
	sessions ports.SessionStore
}

// New wires the provider with its collaborators.
func New(users ports.UserRepository, sessions ports.SessionStore) *Provider {
	if sessions == nil {
		sessions = ports.NoopSessionStore
	}
	return &Provider{users: users, sessions: sessions}
}

// SignIn authenticates the payload under the given strategy. A rejected
// email/password pair surfaces as ProviderError{CredentialsSignin}; a
// failing session write as ProviderError{SessionTokenError}. Repository
// infrastructure failures propagate untyped.
func (p *Provider) SignIn(ctx context.Context, strategy string, creds ports.Credentials) error {
	if strategy != ports.StrategyCredentials {
		return &ports.ProviderError{Code: ports.CodeUnknownAction, Err: fmt.Errorf("unsupported strategy %q", strategy)}
	}
	email := strings.TrimSpace(creds.Email)
	if email == "" || creds.Password == "" {
		return &ports.ProviderError{Code: ports.CodeCredentialsSignin}
	}
	user, err := p.users.GetByEmail(ctx, email)
	if errors.Is(err, ports.ErrNotFound) {
		return &ports.ProviderError{Code: ports.CodeCredentialsSignin}
	}
	if err != nil {
		return err
	}
	if !user.CheckPassword(creds.Password) {
		return &ports.ProviderError{Code: ports.CodeCredentialsSignin}
	}
	token := uuid.NewString()
	if err := p.sessions.Save(ctx, email, token); err != nil {
		return &ports.ProviderError{Code: ports.CodeSessionTokenError, Err: err}
	}
	return nil
}

// SignOut removes any session recorded for the email.
func (p *Provider) SignOut(ctx context.Context, email string) error {
	return p.sessions.Delete(ctx, strings.TrimSpace(email))
}
