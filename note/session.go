package note

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const sessionFile = "session.json"

// Session records which notes were open when the app last exited.
type Session struct {
	Open   []string
	Active string
}

// envelope is the v1 wire format for a persisted session.
type envelope struct {
	Version int      `json:"version"`
	Open    []string `json:"open"`
	Active  string   `json:"active,omitempty"`
}

// SaveSession writes the session atomically into the data directory.
func (s *Store) SaveSession(sess Session) error {
	data, err := json.MarshalIndent(envelope{
		Version: 1,
		Open:    sess.Open,
		Active:  sess.Active,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return atomicWrite(filepath.Join(s.dir, sessionFile), data)
}

// LoadSession restores the previous session. A missing, corrupt, or
// unrecognized session file yields an empty session; startup never
// fails because of it.
func (s *Store) LoadSession() Session {
	data, err := os.ReadFile(filepath.Join(s.dir, sessionFile))
	if err != nil {
		return Session{}
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil || env.Version != 1 {
		return Session{}
	}
	return Session{Open: env.Open, Active: env.Active}
}
