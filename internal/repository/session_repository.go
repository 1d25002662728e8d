package repository

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/textinspect/internal/service/page"
)

// SessionRepository keeps page controllers in memory. Idle sessions expire
// after the configured TTL; the least recently used one is evicted once the
// store is full.
type SessionRepository interface {
	Save(p *page.Page)
	Get(id string) (*page.Page, bool)
	Delete(id string) bool
	Count() int
}

type sessionRepository struct {
	cache  *expirable.LRU[string, *page.Page]
	logger zerolog.Logger
}

func NewSessionRepository(maxSessions int, ttl time.Duration, logger zerolog.Logger) SessionRepository {
	r := &sessionRepository{logger: logger}
	r.cache = expirable.NewLRU[string, *page.Page](maxSessions, r.onEvict, ttl)
	return r
}

func (r *sessionRepository) onEvict(id string, _ *page.Page) {
	r.logger.Debug().Str("session_id", id).Msg("Session evicted")
}

func (r *sessionRepository) Save(p *page.Page) {
	r.cache.Add(p.ID(), p)
}

// Get также продлевает жизнь сессии.
func (r *sessionRepository) Get(id string) (*page.Page, bool) {
	p, ok := r.cache.Get(id)
	if ok {
		r.cache.Add(id, p)
	}
	return p, ok
}

func (r *sessionRepository) Delete(id string) bool {
	return r.cache.Remove(id)
}

func (r *sessionRepository) Count() int {
	return r.cache.Len()
}
