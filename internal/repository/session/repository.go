package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yakkt/campervan-configurator/internal/model"
)

// repository keeps sessions in process memory. Each session carries its own
// lock, so mutations on different sessions never contend while a single
// session's selection and price always change together.
type repository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*entry
}

type entry struct {
	mu      sync.Mutex
	session *model.Session
}

func NewSessionRepository() *repository {
	return &repository{sessions: make(map[uuid.UUID]*entry)}
}

func (r *repository) Create(_ context.Context, s *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[s.ID]; exists {
		return model.ErrValidation
	}
	r.sessions[s.ID] = &entry{session: clone(s)}

	return nil
}

func (r *repository) ByID(_ context.Context, id uuid.UUID) (*model.Session, error) {
	e, err := r.entryByID(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return clone(e.session), nil
}

// Update runs mutate under the session's lock and returns a copy of the
// result. The stored session is untouched when mutate fails.
func (r *repository) Update(_ context.Context, id uuid.UUID, mutate func(s *model.Session) error) (*model.Session, error) {
	e, err := r.entryByID(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	next := clone(e.session)
	if err := mutate(next); err != nil {
		return nil, err
	}
	next.UpdatedAt = time.Now().UTC()
	e.session = next

	return clone(next), nil
}

func (r *repository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; !exists {
		return model.ErrSessionNotFound
	}
	delete(r.sessions, id)

	return nil
}

func (r *repository) entryByID(id uuid.UUID) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return e, nil
}

func clone(s *model.Session) *model.Session {
	out := *s
	out.Selection = s.Selection.Clone()

	prices := make(map[string]float64, len(s.Price.AddOnPrices))
	for id, p := range s.Price.AddOnPrices {
		prices[id] = p
	}
	out.Price.AddOnPrices = prices

	return &out
}
