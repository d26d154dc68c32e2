package store

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"belshop/domain"
)

// ProfileStore owns the single local user record. It is independent of the
// catalog; the only coupling is ResetAccount, which also resets the catalog.
// Mutations on an absent user are silent no-ops.
type ProfileStore struct {
	mu   sync.RWMutex
	kv   KV
	log  *slog.Logger
	user *domain.User
}

// NewProfileStore loads the persisted user record, if any.
func NewProfileStore(kv KV, log *slog.Logger) *ProfileStore {
	if log == nil {
		log = slog.Default()
	}
	s := &ProfileStore{kv: kv, log: log}
	if b, err := kv.Get(KeyUser); err != nil {
		log.Warn("loading user failed", "error", err)
	} else if len(b) > 0 {
		var u domain.User
		if err := json.Unmarshal(b, &u); err != nil {
			log.Warn("decoding user failed", "error", err)
		} else {
			s.user = &u
		}
	}
	return s
}

// persist writes the current user snapshot. Callers hold the lock.
func (s *ProfileStore) persist(op string) error {
	if s.user == nil {
		if err := s.kv.Delete(KeyUser); err != nil {
			s.log.Warn("user snapshot not removed", "op", op, "error", err)
			return domain.NewPersistenceError(op, err)
		}
		return nil
	}
	b, err := json.Marshal(s.user)
	if err != nil {
		return domain.NewPersistenceError(op, err)
	}
	if err := s.kv.Put(map[string][]byte{KeyUser: b}); err != nil {
		s.log.Warn("user snapshot not persisted", "op", op, "error", err)
		return domain.NewPersistenceError(op, err)
	}
	return nil
}

// CurrentUser returns the current user record, if one exists.
func (s *ProfileStore) CurrentUser() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether a user record exists.
func (s *ProfileStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// CreateUser creates the profile record with default preferences and
// notification settings.
func (s *ProfileStore) CreateUser(username, email string, favorites []domain.Category) (domain.User, error) {
	u := domain.User{
		ID:                   uuid.NewString(),
		Username:             username,
		Email:                email,
		Preferences:          domain.DefaultPreferences(),
		FavoriteCategories:   append([]domain.Category{}, favorites...),
		NotificationSettings: domain.DefaultNotificationSettings(),
		CreatedDate:          time.Now(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
	return u, s.persist("create user")
}

// UpdateUser replaces the whole record.
func (s *ProfileStore) UpdateUser(u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	s.user = &u
	return s.persist("update user")
}

// UpdatePreferences replaces the preference block.
func (s *ProfileStore) UpdatePreferences(p domain.UserPreferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	s.user.Preferences = p
	return s.persist("update preferences")
}

// UpdateNotificationSettings replaces the notification toggles.
func (s *ProfileStore) UpdateNotificationSettings(n domain.NotificationSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	s.user.NotificationSettings = n
	return s.persist("update notifications")
}

// AddFavoriteCategory adds a category with set semantics; duplicates do not
// accumulate.
func (s *ProfileStore) AddFavoriteCategory(c domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	for _, have := range s.user.FavoriteCategories {
		if have == c {
			return nil
		}
	}
	s.user.FavoriteCategories = append(s.user.FavoriteCategories, c)
	return s.persist("add favorite")
}

// RemoveFavoriteCategory removes a category; absent categories are a no-op.
func (s *ProfileStore) RemoveFavoriteCategory(c domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	kept := s.user.FavoriteCategories[:0]
	removed := false
	for _, have := range s.user.FavoriteCategories {
		if have == c {
			removed = true
			continue
		}
		kept = append(kept, have)
	}
	if !removed {
		return nil
	}
	s.user.FavoriteCategories = kept
	return s.persist("remove favorite")
}

// Logout clears the current user and removes the persisted record.
func (s *ProfileStore) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return s.persist("logout")
}

// ResetAccount logs out and restores the catalog to its seeded baseline.
func (s *ProfileStore) ResetAccount(catalog *CatalogStore) error {
	if err := s.Logout(); err != nil {
		return err
	}
	return catalog.ResetAll()
}
