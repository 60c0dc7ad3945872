package store

import "go.uber.org/zap"

// Credentials is the username/password pair checked by Login.
type Credentials struct {
	Username string
	Password string
}

// The admin credential literal. This is a demonstration stub carried over
// from the original site, not a security boundary: there is no hashing, no
// rate limiting, and no session expiry.
const (
	adminUsername = "admin"
	adminPassword = "admin123"
)

// Login compares credentials against the fixed literal pair. On a match the
// session becomes Admin and the flag is persisted so it survives a restart.
// On a mismatch nothing changes and Login returns false.
func (s *Store) Login(credentials Credentials) (ok bool) {
	if credentials.Username != adminUsername || credentials.Password != adminPassword {
		return false
	}

	s.mu.Lock()
	s.isAdmin = true
	s.mu.Unlock()

	err := s.adapter.SaveAdminFlag(true)
	if err != nil {
		// The in-memory session stays active; only persistence failed.
		s.logger.Warn("failed to persist admin flag, session will not survive a restart", zap.Error(err))
	}

	return true
}

// Logout ends the admin session and clears the persisted flag. Logging out
// of an anonymous session is harmless.
func (s *Store) Logout() {
	s.mu.Lock()
	s.isAdmin = false
	s.mu.Unlock()

	err := s.adapter.ClearAdminFlag()
	if err != nil {
		s.logger.Warn("failed to clear persisted admin flag", zap.Error(err))
	}
}
