// Package store holds the volatile advisory session state shared between
// the service layer and the session repositories.
package store

import "time"

// Turn roles recorded in the session history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one utterance in an advisory exchange.
type Turn struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// AdvisorySession is the per-user consultation buffer. ProductFacts is the
// snapshot rendered when the session starts; later catalog edits do not
// leak into an ongoing consultation.
type AdvisorySession struct {
	ChatID       int64     `json:"chat_id"`
	ProductID    uint      `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductFacts string    `json:"product_facts"`
	History      []Turn    `json:"history"`
	StartedAt    time.Time `json:"started_at"`
}

// Append adds a turn and trims the history to limit, dropping the oldest
// turns first.
func (s *AdvisorySession) Append(role, content string, limit int) {
	s.History = append(s.History, Turn{Role: role, Content: content, At: time.Now()})
	if limit > 0 && len(s.History) > limit {
		s.History = s.History[len(s.History)-limit:]
	}
}

// Clone returns an independent copy. Mutating the clone's history never
// touches the original, so stores can hand out sessions without aliasing
// their internals.
func (s *AdvisorySession) Clone() *AdvisorySession {
	copied := *s
	copied.History = append([]Turn(nil), s.History...)
	return &copied
}

// Recent returns up to n of the most recent turns in chronological order.
func (s *AdvisorySession) Recent(n int) []Turn {
	if n <= 0 || len(s.History) == 0 {
		return nil
	}
	if len(s.History) <= n {
		return s.History
	}
	return s.History[len(s.History)-n:]
}
