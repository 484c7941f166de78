package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"stock-predictor/internal/entity"
	"stock-predictor/pkg/common"

	"github.com/patrickmn/go-cache"
)

// SessionRepository stores prediction form sessions in memory until they expire.
type SessionRepository interface {
	Get(ctx context.Context, id string) (*entity.PredictionSession, error)
	// Update loads (or creates) the session and applies fn under the session lock.
	// The session is stored only when fn returns nil.
	Update(ctx context.Context, id string, fn func(s *entity.PredictionSession) error) (*entity.PredictionSession, error)
}

type sessionRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
	ttl   time.Duration
	now   func() time.Time
}

// NewSessionRepository creates a session store whose entries expire ttl after their last update.
func NewSessionRepository(ttl, cleanupInterval time.Duration) SessionRepository {
	return &sessionRepository{
		cache: cache.New(ttl, cleanupInterval),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*entity.PredictionSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.load(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrSessionNotFound, id)
	}
	cp := *s
	return &cp, nil
}

func (r *sessionRepository) Update(ctx context.Context, id string, fn func(s *entity.PredictionSession) error) (*entity.PredictionSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var working entity.PredictionSession
	if s, ok := r.load(id); ok {
		working = *s
	} else {
		working = *entity.NewPredictionSession(id, r.now())
	}

	if err := fn(&working); err != nil {
		return nil, err
	}

	stored := working
	r.cache.Set(key(id), &stored, r.ttl)
	cp := working
	return &cp, nil
}

func (r *sessionRepository) load(id string) (*entity.PredictionSession, bool) {
	v, ok := r.cache.Get(key(id))
	if !ok {
		return nil, false
	}
	s, ok := v.(*entity.PredictionSession)
	return s, ok
}

func key(id string) string {
	return fmt.Sprintf(common.CacheKeySession, id)
}
