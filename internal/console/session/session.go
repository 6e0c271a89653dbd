// Package session owns the console's authenticated session: the bearer
// token plus the admin identity it belongs to. The pair lives in memory and
// in the durable credential store, always both present or both absent.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/roadfleet/roadfleet/internal/common"
	"github.com/roadfleet/roadfleet/internal/console/api"
	"github.com/roadfleet/roadfleet/internal/console/credstore"
	"github.com/roadfleet/roadfleet/internal/logging"
)

// Store holds the current credential. It is injected into the HTTP client
// adapter (token source, unauthorized hook) and the authorization guard
// rather than reached for as a global.
type Store struct {
	mu       sync.Mutex
	client   api.Client
	creds    credstore.Repository
	logger   logging.Logger
	token    string
	identity api.Identity
}

func NewStore(client api.Client, creds credstore.Repository, logger logging.Logger) *Store {
	return &Store{
		client: client,
		creds:  creds,
		logger: logger.With("component", "session"),
	}
}

// Rehydrate restores the session from durable storage. A session is
// restored only when both slots are present and the identity parses and
// carries its required fields; any partial or malformed state is wiped and
// treated as logged out.
func (s *Store) Rehydrate(ctx context.Context) error {
	token, err := s.creds.Get(ctx, credstore.SlotToken)
	if err != nil {
		return err
	}
	rawIdentity, err := s.creds.Get(ctx, credstore.SlotIdentity)
	if err != nil {
		return err
	}

	if len(token) == 0 || len(rawIdentity) == 0 {
		if len(token) != 0 || len(rawIdentity) != 0 {
			s.logger.Warn(ctx, "partial credential found, clearing")
			return s.creds.Clear(ctx)
		}
		return nil
	}

	var identity api.Identity
	if err := json.Unmarshal(rawIdentity, &identity); err != nil || !identity.Valid() {
		s.logger.Warn(ctx, "malformed identity found, clearing")
		return s.creds.Clear(ctx)
	}

	s.mu.Lock()
	s.token = string(token)
	s.identity = identity
	s.mu.Unlock()

	s.logger.Info(ctx, "session restored", "admin", identity.Email)
	return nil
}

// Login authenticates against the API. On success the credential is
// persisted (both slots in one transaction) and then set in memory. On any
// failure the previous credential, if one exists, is left untouched.
func (s *Store) Login(ctx context.Context, email string, password []byte) error {
	token, identity, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if !identity.Valid() {
		return fmt.Errorf("%w: incomplete identity in login response", common.ErrorInternal)
	}

	rawIdentity, err := json.Marshal(identity)
	if err != nil {
		return err
	}

	err = s.creds.SetAll(ctx, map[string][]byte{
		credstore.SlotToken:    []byte(token),
		credstore.SlotIdentity: rawIdentity,
	})
	if err != nil {
		return fmt.Errorf("persisting credential: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.identity = identity
	s.mu.Unlock()

	s.logger.Info(ctx, "logged in", "admin", identity.Email)
	return nil
}

// Logout clears the credential from memory and durable storage. Idempotent.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.identity = api.Identity{}
	s.mu.Unlock()

	return s.creds.Clear(ctx)
}

// HandleUnauthorized is the forced-logout path wired into the HTTP client
// adapter. It only touches local state, never the API, so a 401 during the
// wipe cannot retrigger it.
func (s *Store) HandleUnauthorized(ctx context.Context) {
	s.mu.Lock()
	wasAuthenticated := s.token != ""
	s.token = ""
	s.identity = api.Identity{}
	s.mu.Unlock()

	if err := s.creds.Clear(ctx); err != nil {
		s.logger.Error(ctx, "clearing credential after 401", "error", err)
	}
	if wasAuthenticated {
		s.logger.Warn(ctx, "session rejected by server, logged out")
	}
}

// IsAuthenticated is derived, never stored: true iff both the token and the
// identity are present.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.identity.Valid()
}

// Token returns the current bearer token, or "" when logged out. Suitable
// as an api.TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Identity returns the authenticated admin, if any.
func (s *Store) Identity() (api.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity, s.token != "" && s.identity.Valid()
}
