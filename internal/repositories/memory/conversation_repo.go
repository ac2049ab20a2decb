package memory

import (
	"context"
	"sync"
	"time"

	"github.com/yoockh/medassist/internal/models"
	"github.com/yoockh/medassist/internal/repositories"
)

type session struct {
	msgs    []models.Message
	expires time.Time
}

type conversationRepo struct {
	mu        sync.RWMutex
	sessions  map[string]*session
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewConversationRepo keeps every session in process memory. A positive ttl
// is refreshed on every append, like the Redis store; idle sessions are
// dropped once it passes. ttl <= 0 keeps sessions for the life of the process.
func NewConversationRepo(ttl time.Duration) repositories.ConversationRepository {
	return newConversationRepo(ttl, time.Now)
}

func newConversationRepo(ttl time.Duration, now func() time.Time) *conversationRepo {
	return &conversationRepo{
		sessions:  make(map[string]*session),
		ttl:       ttl,
		lastSweep: now(),
		now:       now,
	}
}

func (r *conversationRepo) Append(ctx context.Context, sessionID string, msgs ...models.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)

	s, ok := r.sessions[sessionID]
	if !ok || r.expired(s, now) {
		s = &session{}
		r.sessions[sessionID] = s
	}
	s.msgs = append(s.msgs, msgs...)
	if r.ttl > 0 {
		s.expires = now.Add(r.ttl)
	}
	return nil
}

func (r *conversationRepo) List(ctx context.Context, sessionID string) ([]models.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok || r.expired(s, r.now()) {
		return []models.Message{}, nil
	}
	out := make([]models.Message, len(s.msgs))
	copy(out, s.msgs)
	return out, nil
}

func (r *conversationRepo) expired(s *session, now time.Time) bool {
	return r.ttl > 0 && !now.Before(s.expires)
}

// sweep drops expired sessions at most once per ttl. Caller holds mu.
func (r *conversationRepo) sweep(now time.Time) {
	if r.ttl <= 0 || now.Sub(r.lastSweep) < r.ttl {
		return
	}
	for id, s := range r.sessions {
		if r.expired(s, now) {
			delete(r.sessions, id)
		}
	}
	r.lastSweep = now
}

// size reports how many sessions are held, expired or not.
func (r *conversationRepo) size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
