package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tool2u/rental-platform/internal/core/domain"
	"github.com/tool2u/rental-platform/internal/core/ports"
	"github.com/tool2u/rental-platform/pkg/ids"
)

// Storage keys in the durable KV store.
const (
	sessionKey = "user"
	rosterKey  = "registeredUsers"
)

// Placeholder contact details attached to every registration event.
const (
	registrationLocation = "Thailand"
	registrationPhone    = "+66123456789"
)

// SessionStore owns the current authenticated identity, its persistence, and
// the signup side effects. It is the only writer of the session and roster
// keys.
//
// Mutating operations (Login, Signup, Logout) are serialised by an internal
// mutex so at most one session-mutating operation is in flight at a time,
// regardless of caller discipline.
type SessionStore struct {
	kv       ports.KVStore
	notifier ports.RegistrationNotifier
	logger   zerolog.Logger

	now   func() time.Time
	newID func() string

	initOnce sync.Once
	initErr  error

	mu sync.Mutex // serialises mutating operations

	stateMu sync.RWMutex // guards current and loading
	current *domain.Identity
	loading bool
}

// NewSessionStore builds a SessionStore over the given durable store and
// registration notifier. The store starts in the loading state until
// Initialize completes.
func NewSessionStore(kv ports.KVStore, notifier ports.RegistrationNotifier, logger zerolog.Logger) *SessionStore {
	return &SessionStore{
		kv:       kv,
		notifier: notifier,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    ids.New,
		loading:  true,
	}
}

// Initialize loads the persisted session record, adopting it as the current
// identity when present. The work runs exactly once per process lifetime;
// subsequent calls return the first outcome. The loading flag clears even
// when the read fails, leaving the store in the Anonymous state.
func (s *SessionStore) Initialize(ctx context.Context) error {
	s.initOnce.Do(func() {
		defer s.setLoading(false)

		raw, ok, err := s.kv.Get(ctx, sessionKey)
		if err != nil {
			s.initErr = fmt.Errorf("read session record: %w", err)
			s.logger.Error().Err(err).Msg("session restore failed")
			return
		}
		if !ok {
			return
		}

		var identity domain.Identity
		if err := json.Unmarshal(raw, &identity); err != nil {
			s.initErr = fmt.Errorf("decode session record: %w", err)
			s.logger.Error().Err(err).Msg("persisted session is corrupt, starting anonymous")
			return
		}

		s.setCurrent(&identity)
		s.logger.Info().Str("username", identity.Username).Str("role", string(identity.Role)).Msg("session restored")
	})
	return s.initErr
}

// Login resolves the credentials and, on a match, establishes and persists the
// session. A login while already authenticated overwrites the current
// identity; no prior logout is required.
//
// Returns domain.ErrInvalidCredentials when nothing matches. Any other error
// is an infrastructure fault and leaves the current identity unchanged.
func (s *SessionStore) Login(ctx context.Context, username, password string) (domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	roster, err := s.loadRoster(ctx)
	if err != nil {
		return domain.Identity{}, err
	}

	identity, ok := ResolveCredentials(username, password, roster, s.now())
	if !ok {
		s.logger.Debug().Str("username", username).Msg("login rejected")
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	if err := s.persistSession(ctx, identity); err != nil {
		return domain.Identity{}, err
	}

	s.setCurrent(&identity)
	s.logger.Info().Str("username", identity.Username).Str("role", string(identity.Role)).Msg("login succeeded")
	return identity, nil
}

// Signup registers a new customer account, establishes the session, and fires
// the registration notification. The notification sits outside the
// transactional boundary: its failure is logged and swallowed, and never
// rolls back the signup.
func (s *SessionStore) Signup(ctx context.Context, in ports.SignupInput) (domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if domain.UsernameReserved(in.Username) {
		return domain.Identity{}, domain.ErrUsernameReserved
	}

	roster, err := s.loadRoster(ctx)
	if err != nil {
		return domain.Identity{}, err
	}
	for _, u := range roster {
		if u.Username == in.Username {
			return domain.Identity{}, domain.ErrUserExists
		}
	}

	record := domain.RegisteredUser{
		ID:       s.newID(),
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
		Name:     in.Name,
		Role:     domain.RoleCustomer,
	}

	roster = append(roster, record)
	raw, err := json.Marshal(roster)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("encode roster: %w", err)
	}
	if err := s.kv.Set(ctx, rosterKey, raw); err != nil {
		return domain.Identity{}, fmt.Errorf("persist roster: %w", err)
	}

	identity := record.Identity()
	if err := s.persistSession(ctx, identity); err != nil {
		return domain.Identity{}, err
	}
	s.setCurrent(&identity)

	s.notifyRegistration(ctx, identity)

	s.logger.Info().Str("username", identity.Username).Str("customer_id", identity.ID).Msg("customer registered")
	return identity, nil
}

// Logout clears the current identity and its persisted copy. Safe to call
// repeatedly; a storage fault on deletion is logged but the in-memory session
// is cleared regardless.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setCurrent(nil)
	if err := s.kv.Delete(ctx, sessionKey); err != nil {
		s.logger.Error().Err(err).Msg("failed to delete persisted session")
	}
}

// Current returns the current identity, if any.
func (s *SessionStore) Current() (domain.Identity, bool) {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	if s.current == nil {
		return domain.Identity{}, false
	}
	return *s.current, true
}

// IsAuthenticated reports whether an identity is present.
func (s *SessionStore) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

// IsLoading reports whether Initialize has not yet completed.
func (s *SessionStore) IsLoading() bool {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.loading
}

func (s *SessionStore) loadRoster(ctx context.Context) ([]domain.RegisteredUser, error) {
	raw, ok, err := s.kv.Get(ctx, rosterKey)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var roster []domain.RegisteredUser
	if err := json.Unmarshal(raw, &roster); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	return roster, nil
}

func (s *SessionStore) persistSession(ctx context.Context, identity domain.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	if err := s.kv.Set(ctx, sessionKey, raw); err != nil {
		return fmt.Errorf("persist session record: %w", err)
	}
	return nil
}

func (s *SessionStore) notifyRegistration(ctx context.Context, identity domain.Identity) {
	event := domain.RegistrationEvent{
		Event:            domain.EventNewCustomerSignup,
		CustomerID:       identity.ID,
		Name:             identity.Name,
		Email:            identity.Email,
		Username:         identity.Username,
		RegistrationDate: s.now().Format(time.RFC3339),
		Location:         registrationLocation,
		Phone:            registrationPhone,
	}

	// The dispatch must complete even if the caller has gone away; the
	// notifier's own timeout bounds it.
	ctx = context.WithoutCancel(ctx)
	if err := s.notifier.NotifyRegistration(ctx, event); err != nil {
		s.logger.Warn().Err(err).Str("customer_id", identity.ID).Msg("registration notification failed")
	}
}

func (s *SessionStore) setCurrent(identity *domain.Identity) {
	s.stateMu.Lock()
	s.current = identity
	s.stateMu.Unlock()
}

func (s *SessionStore) setLoading(v bool) {
	s.stateMu.Lock()
	s.loading = v
	s.stateMu.Unlock()
}
