package services

import (
	"context"
	"fmt"
	"strings"
)

// CredentialStore remembers a login between runs
type CredentialStore interface {
	Save(ctx context.Context, email, password string) error
	Load(ctx context.Context) (string, string, error)
	Clear(ctx context.Context) error
}

// SessionService handles registration and login
type SessionService struct {
	api   API
	creds CredentialStore
}

// NewSessionService creates a new session service. creds may be nil,
// in which case remembering is unavailable.
func NewSessionService(api API, creds CredentialStore) *SessionService {
	return &SessionService{
		api:   api,
		creds: creds,
	}
}

func validateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return fmt.Errorf("email and password: %w", ErrMissingField)
	}
	return nil
}

// Register creates an account and logs into it with the same credentials
func (s *SessionService) Register(ctx context.Context, email, password string, remember bool) (*Session, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, fail(MsgRegisterFailed, err)
	}

	if _, err := s.api.Register(ctx, email, password); err != nil {
		return nil, fail(MsgRegisterFailed, err)
	}

	loginUser, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, fail(MsgRegisterFailed, err)
	}

	session := &Session{Email: email, Token: loginUser.Token}
	if remember {
		if err := s.remember(ctx, email, password); err != nil {
			return nil, fail(MsgRegisterFailed, err)
		}
	}
	return session, nil
}

// Login opens a session. With remember set, the credentials are stored for Restore.
func (s *SessionService) Login(ctx context.Context, email, password string, remember bool) (*Session, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, fail(MsgLoginFailed, err)
	}

	loginUser, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, fail(MsgLoginFailed, err)
	}

	if remember {
		if err := s.remember(ctx, email, password); err != nil {
			return nil, fail(MsgLoginFailed, err)
		}
	}
	return &Session{Email: email, Token: loginUser.Token}, nil
}

// Restore logs in with remembered credentials
func (s *SessionService) Restore(ctx context.Context) (*Session, error) {
	if s.creds == nil {
		return nil, fail(MsgLoginFailed, ErrNoCredentialStore)
	}

	email, password, err := s.creds.Load(ctx)
	if err != nil {
		return nil, fail(MsgLoginFailed, err)
	}
	return s.Login(ctx, email, password, false)
}

// Logout forgets remembered credentials
func (s *SessionService) Logout(ctx context.Context) error {
	if s.creds == nil {
		return nil
	}
	return s.creds.Clear(ctx)
}

func (s *SessionService) remember(ctx context.Context, email, password string) error {
	if s.creds == nil {
		return nil
	}
	if err := s.creds.Save(ctx, email, password); err != nil {
		return fmt.Errorf("failed to remember credentials: %w", err)
	}
	return nil
}
