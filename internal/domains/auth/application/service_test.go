package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/auth/ports"
)

type fakeProvider struct {
	signInErr  error
	signedOut  []string
	gotCreds   ports.Credentials
	gotStrat   string
	signOutErr error
}

func (f *fakeProvider) SignIn(_ context.Context, strategy string, creds ports.Credentials) error {
	f.gotStrat = strategy
	f.gotCreds = creds
	return f.signInErr
}

func (f *fakeProvider) SignOut(_ context.Context, email string) error {
	f.signedOut = append(f.signedOut, email)
	return f.signOutErr
}

func TestAuthenticate_Success(t *testing.T) {
	provider := &fakeProvider{}
	svc := NewService(provider)

	message, err := svc.Authenticate(context.Background(), map[string]string{
		"email":    " user@example.com ",
		"password": "123456",
	})
	require.NoError(t, err)
	require.Empty(t, message)
	require.Equal(t, ports.StrategyCredentials, provider.gotStrat)
	require.Equal(t, "user@example.com", provider.gotCreds.Email)
	require.Equal(t, "123456", provider.gotCreds.Password)
}

func TestAuthenticate_RejectedCredentials(t *testing.T) {
	provider := &fakeProvider{signInErr: &ports.ProviderError{Code: ports.CodeCredentialsSignin}}
	svc := NewService(provider)

	message, err := svc.Authenticate(context.Background(), map[string]string{
		"email":    "user@example.com",
		"password": "wrong",
	})
	require.NoError(t, err)
	require.Equal(t, MsgInvalidCredentials, message)
}

func TestAuthenticate_OtherProviderFailure(t *testing.T) {
	provider := &fakeProvider{signInErr: &ports.ProviderError{Code: ports.CodeSessionTokenError, Err: errors.New("store down")}}
	svc := NewService(provider)

	message, err := svc.Authenticate(context.Background(), map[string]string{
		"email":    "user@example.com",
		"password": "123456",
	})
	require.NoError(t, err)
	require.Equal(t, MsgSignInFailed, message)
}

func TestAuthenticate_UnrecognizedErrorPropagates(t *testing.T) {
	boom := errors.New("database unreachable")
	provider := &fakeProvider{signInErr: boom}
	svc := NewService(provider)

	message, err := svc.Authenticate(context.Background(), map[string]string{
		"email":    "user@example.com",
		"password": "123456",
	})
	require.ErrorIs(t, err, boom)
	require.Empty(t, message)
}

func TestLogout(t *testing.T) {
	provider := &fakeProvider{}
	svc := NewService(provider)

	require.NoError(t, svc.Logout(context.Background(), " user@example.com "))
	require.Equal(t, []string{"user@example.com"}, provider.signedOut)

	// Blank email is a no-op rather than a provider call.
	require.NoError(t, svc.Logout(context.Background(), "  "))
	require.Len(t, provider.signedOut, 1)
}
