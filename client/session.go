package client

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload issued by the login endpoint. The client
// decodes it without verifying the signature; the server re-validates
// every request, so the decode here only drives what the UI shows.
type Claims struct {
	UserID     uint64 `json:"id"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Department string `json:"department"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// CredentialStore persists the bearer token between sessions.
type CredentialStore interface {
	Load() (token string, ok bool)
	Save(token string) error
	Clear()
}

// MemoryStore keeps the token in process memory only.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.set
}

func (s *MemoryStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = true
	return nil
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
}

// Session resolves the stored credential into an identity. A token that
// fails to decode or has expired leaves the session unauthenticated; it
// never surfaces as an error, the user simply has to log in again.
type Session struct {
	mu     sync.Mutex
	store  CredentialStore
	token  string
	claims *Claims
	now    func() time.Time
}

func NewSession(store CredentialStore) *Session {
	return &Session{store: store, now: time.Now}
}

// Init loads the persisted token and decodes its claims.
func (s *Session) Init() {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.store.Load()
	if !ok {
		s.reset()
		return
	}
	s.adopt(token)
}

// SetToken replaces the current credential, persisting it to the store.
func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(token); err != nil {
		return err
	}
	s.adopt(token)
	return nil
}

// Logout clears the credential from both the session and the store.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Clear()
	s.reset()
}

func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.claims != nil
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.claims == nil {
		return ""
	}
	return s.token
}

// Claims returns a copy of the decoded identity, or nil when
// unauthenticated.
func (s *Session) Claims() *Claims {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.claims == nil {
		return nil
	}
	c := *s.claims
	return &c
}

func (s *Session) Role() string {
	if c := s.Claims(); c != nil {
		return c.Role
	}
	return ""
}

// FullName is the display name, also used as the default borrower name.
func (s *Session) FullName() string {
	if c := s.Claims(); c != nil {
		return c.FirstName + " " + c.LastName
	}
	return ""
}

// adopt decodes the token and keeps the claims only when they are still
// usable. Caller holds the lock.
func (s *Session) adopt(token string) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		s.reset()
		return
	}
	if claims.ExpiresAt != nil && !claims.ExpiresAt.After(s.now()) {
		s.reset()
		return
	}
	s.token = token
	s.claims = claims
}

func (s *Session) reset() {
	s.token = ""
	s.claims = nil
}
