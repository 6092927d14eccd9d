// Package localauth is the identity service: account records, the session
// pointer, and the visit analytics side channels, all persisted through the
// injected Store. Expected failures (duplicate email, bad credentials,
// unknown id) come back as sentinel errors, never panics.
package localauth

import (
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rewear-app/rewear-api/models"
	"github.com/rewear-app/rewear-api/storage"
)

const (
	usersKey       = "rewear_users"
	currentUserKey = "rewear_current_user"
	userVisitsKey  = "rewear_user_visits"
	allEmailsKey   = "rewear_all_emails"

	// WelcomeBonus is the points balance granted on registration.
	WelcomeBonus = 100
)

var (
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// Service owns the account table and the session pointer. Construct one per
// process with New; it loads its state from the Store and mirrors every
// mutation back immediately. One instance is shared by all handler
// goroutines, so the in-memory tables are guarded.
type Service struct {
	store storage.Store

	mu     sync.RWMutex
	users  []models.User
	visits []models.Visit
	emails []string
}

func New(store storage.Store) *Service {
	s := &Service{store: store}
	s.users = loadSlice[models.User](store, usersKey, "users")
	s.visits = loadSlice[models.Visit](store, userVisitsKey, "user visits")
	s.emails = loadSlice[string](store, allEmailsKey, "all emails")
	return s
}

// loadSlice decodes a persisted JSON array. Malformed content degrades to
// an empty collection with a logged warning; it must never reach the caller
// as a fault.
func loadSlice[T any](store storage.Store, key, what string) []T {
	raw, ok := store.Get(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Printf("localauth: corrupt %s, starting empty: %v", what, err)
		return nil
	}
	return out
}

// Register creates an account with the welcome bonus and records the first
// visit. The email is stored lower-cased; uniqueness is case-insensitive.
// Registration does not set the session pointer — login does.
func (s *Service) Register(email, password, name string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lower := strings.ToLower(email)
	for _, u := range s.users {
		if strings.ToLower(u.Email) == lower {
			return nil, ErrDuplicateEmail
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           "user_" + uuid.NewString(),
		Email:        lower,
		Name:         name,
		PasswordHash: string(hash),
		Points:       WelcomeBonus,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users = append(s.users, user)
	s.saveUsers()
	s.trackVisit(user.ID)

	return s.userByID(user.ID), nil
}

// Login matches the lower-cased email and credential, records the visit,
// and sets the session pointer to the refreshed account.
func (s *Service) Login(email, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lower := strings.ToLower(email)
	for _, u := range s.users {
		if strings.ToLower(u.Email) != lower {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
		s.trackVisit(u.ID)
		user := s.userByID(u.ID)
		s.setSession(*user)
		return user, nil
	}
	return nil, ErrInvalidCredentials
}

// Logout clears the session pointer. The account record is untouched.
func (s *Service) Logout() {
	s.store.Remove(currentUserKey)
}

// CurrentUser reads the session pointer. Absent or corrupt content yields
// nil.
func (s *Service) CurrentUser() *models.User {
	raw, ok := s.store.Get(currentUserKey)
	if !ok {
		return nil
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil
	}
	return &u
}

// UserByID returns a copy of the account, or ErrUserNotFound.
func (s *Service) UserByID(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u := s.userByID(id); u != nil {
		return u, nil
	}
	return nil, ErrUserNotFound
}

// UpdateUser merges the patch into the account by its JSON field names and
// stamps updated_at. A resulting negative points balance is clamped to zero
// with a logged warning. If the session pointer refers to this account, the
// session copy is refreshed so a points edit is immediately visible there.
func (s *Service) UpdateUser(id string, patch map[string]any) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.users {
		if s.users[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrUserNotFound
	}

	base, err := toMap(s.users[idx])
	if err != nil {
		return nil, err
	}
	for k, v := range patch {
		base[k] = v
	}

	var merged models.User
	if err := fromMap(base, &merged); err != nil {
		return nil, err
	}
	merged.UpdatedAt = time.Now().UTC()
	if merged.Points < 0 {
		log.Printf("localauth: clamping negative points balance for %s (%d -> 0)", id, merged.Points)
		merged.Points = 0
	}

	s.users[idx] = merged
	s.saveUsers()

	if current := s.CurrentUser(); current != nil && current.ID == id {
		s.setSession(merged)
	}

	out := merged
	return &out, nil
}

// AllUsers returns a copy of the account table.
func (s *Service) AllUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// AllVisits returns a copy of the visit log.
func (s *Service) AllVisits() []models.Visit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Visit, len(s.visits))
	copy(out, s.visits)
	return out
}

// AllEmails returns a copy of the deduplicated set of emails ever seen.
func (s *Service) AllEmails() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.emails))
	copy(out, s.emails)
	return out
}

// SeedDemoUser creates the demo account when the table is empty, so a fresh
// install has something to log in with (demo@rewear.com / demo123).
func (s *Service) SeedDemoUser() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.users) > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		return
	}
	now := time.Now().UTC()
	demo := models.User{
		ID:           "demo-user",
		Email:        "demo@rewear.com",
		Name:         "Demo User",
		PasswordHash: string(hash),
		Points:       250,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users = append(s.users, demo)
	s.saveUsers()
	s.trackVisit(demo.ID)
}

// trackVisit is the side effect of every successful register/login: it
// appends to the visit log, adds the email to the all-seen set, and bumps
// the account's last_visit and visit_count. The log and the email set are
// analytics side channels, persisted independently of the account table.
// Callers must hold mu.
func (s *Service) trackVisit(userID string) {
	idx := -1
	for i := range s.users {
		if s.users[i].ID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}
	u := s.users[idx]

	seen := false
	for _, e := range s.emails {
		if e == u.Email {
			seen = true
			break
		}
	}
	if !seen {
		s.emails = append(s.emails, u.Email)
		s.saveJSON(allEmailsKey, s.emails, "all emails")
	}

	now := time.Now().UTC()
	s.visits = append(s.visits, models.Visit{
		Email:     u.Email,
		Name:      u.Name,
		VisitTime: now,
		UserID:    u.ID,
	})
	s.saveJSON(userVisitsKey, s.visits, "user visits")

	visitTime := now
	s.users[idx].LastVisit = &visitTime
	s.users[idx].VisitCount++
	s.users[idx].UpdatedAt = now
	s.saveUsers()
}

// userByID returns a copy of the account. Callers must hold mu.
func (s *Service) userByID(id string) *models.User {
	for _, u := range s.users {
		if u.ID == id {
			out := u
			return &out
		}
	}
	return nil
}

func (s *Service) setSession(u models.User) {
	b, err := json.Marshal(u)
	if err != nil {
		log.Printf("localauth: failed to encode session: %v", err)
		return
	}
	s.store.Set(currentUserKey, string(b))
}

func (s *Service) saveUsers() {
	s.saveJSON(usersKey, s.users, "users")
}

func (s *Service) saveJSON(key string, v any, what string) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("localauth: failed to encode %s: %v", what, err)
		return
	}
	s.store.Set(key, string(b))
}

func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	err = json.Unmarshal(b, &m)
	return m, err
}

func fromMap(m map[string]any, out any) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
