package ports

import (
	"context"
	"fmt"
)

// StrategyCredentials is the provider strategy for email/password sign-in.
const StrategyCredentials = "credentials"

// Provider error codes the authenticator distinguishes. CodeCredentialsSignin
// marks a rejected email/password pair; every other code is a recognized but
// generic provider failure.
const (
	CodeCredentialsSignin = "CredentialsSignin"
	CodeSessionTokenError = "SessionTokenError"
	CodeUnknownAction     = "UnknownAction"
)

// Credentials is the payload consumed by a credential provider.
type Credentials struct {
	Email    string
	Password string
}

// ProviderError is a typed failure raised by a credential provider. Code
// discriminates the failure subtype.
type ProviderError struct {
	Code string
	Err  error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth provider: %s: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("auth provider: %s", e.Code)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// CredentialProvider authenticates a credentials payload under a named
// strategy. The session side effect on success lives entirely inside the
// provider; callers only observe errors.
type CredentialProvider interface {
	SignIn(ctx context.Context, strategy string, creds Credentials) error
	SignOut(ctx context.Context, email string) error
}
