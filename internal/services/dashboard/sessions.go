package dashboard

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/pkg/logger"
)

// Session is one browser's dashboard plus its historical panel.
type Session struct {
	ID         string
	CreatedAt  time.Time
	Dashboard  *Dashboard
	Historical *HistoricalPanel

	lastSeen time.Time
}

// Sessions keeps sessions in memory only; they are gone after a restart.
type Sessions struct {
	repo repositories.WeatherRepository
	l    *logger.Logger
	opts []Option
	now  func() time.Time

	maxSessions int
	idleTTL     time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessions(repo repositories.WeatherRepository, l *logger.Logger, opts ...Option) *Sessions {
	return &Sessions{
		repo:     repo,
		l:        l,
		opts:     opts,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// WithLimits bounds the store. Sessions unused for longer than idleTTL are
// dropped, and once maxSessions are live the least recently used one makes
// room for a new one. Zero disables either bound.
func (s *Sessions) WithLimits(maxSessions int, idleTTL time.Duration) *Sessions {
	s.maxSessions = maxSessions
	s.idleTTL = idleTTL
	return s
}

func (s *Sessions) Create() *Session {
	now := s.now()
	sess := &Session{
		ID:         uuid.NewString(),
		CreatedAt:  now.UTC(),
		Dashboard:  New(s.repo, s.l, s.opts...),
		Historical: NewHistoricalPanel(s.repo, s.l),
		lastSeen:   now,
	}

	s.mu.Lock()
	expired := s.sweepLocked(now)
	evicted := ""
	if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		evicted = s.evictLocked()
	}
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	if expired > 0 {
		s.l.Debug("idle sessions expired", map[string]any{"count": expired})
	}
	if evicted != "" {
		s.l.Warning("session limit reached, evicted least recently used", map[string]any{
			"session_id": evicted,
			"limit":      s.maxSessions,
		})
	}
	s.l.Info("session created", map[string]any{"session_id": sess.ID})
	return sess
}

// Get returns a live session and marks it as used.
func (s *Sessions) Get(id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, models.ErrSessionNotFound
	}

	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	if s.idleLocked(sess, now) {
		delete(s.sessions, id)
		return nil, models.ErrSessionNotFound
	}
	sess.lastSeen = now
	return sess, nil
}

func (s *Sessions) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Sessions) idleLocked(sess *Session, now time.Time) bool {
	return s.idleTTL > 0 && now.Sub(sess.lastSeen) > s.idleTTL
}

func (s *Sessions) sweepLocked(now time.Time) int {
	if s.idleTTL <= 0 {
		return 0
	}
	n := 0
	for id, sess := range s.sessions {
		if s.idleLocked(sess, now) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

func (s *Sessions) evictLocked() string {
	var oldest *Session
	for _, sess := range s.sessions {
		if oldest == nil || sess.lastSeen.Before(oldest.lastSeen) {
			oldest = sess
		}
	}
	if oldest == nil {
		return ""
	}
	delete(s.sessions, oldest.ID)
	return oldest.ID
}
