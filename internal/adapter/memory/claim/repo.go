// Package claim implements the claim repository in process memory.
// Stored records are never shared: every value going in or out is a deep copy.
package claim

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
)

// IDPrefix is prepended to the sequence number of every claim id.
const IDPrefix = "CLAIM-"

// Repo holds claims in insertion order behind a single RWMutex.
type Repo struct {
	mu      sync.RWMutex
	claims  map[string]*domain.Claim
	order   []string
	counter int
	now     func() time.Time
}

// New creates an empty repository. The first id issued is idStart+1.
// A nil clock means time.Now.
func New(idStart int, now func() time.Time) *Repo {
	if now == nil {
		now = time.Now
	}
	return &Repo{
		claims:  make(map[string]*domain.Claim),
		counter: idStart,
		now:     now,
	}
}

// Create stores c under the next sequential id and returns the stored copy.
// CreatedAt and UpdatedAt are stamped here.
func (r *Repo) Create(ctx context.Context, c *domain.Claim) (*domain.Claim, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.New("create claim: nil claim")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.counter++
	stored := c.Clone()
	stored.ID = IDPrefix + strconv.Itoa(r.counter)
	now := r.now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	stored.Version = 1

	r.claims[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return stored.Clone(), nil
}

// GetByID returns a copy of the claim or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Claim, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.claims[id]
	if !ok {
		return nil, fmt.Errorf("claim %s: %w", id, domain.ErrNotFound)
	}
	return c.Clone(), nil
}

// List returns copies of the claims matching pred in insertion order.
// pred sees a copy too. A nil predicate matches everything.
func (r *Repo) List(ctx context.Context, pred func(*domain.Claim) bool) ([]*domain.Claim, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Claim, 0, len(r.order))
	for _, id := range r.order {
		c := r.claims[id].Clone()
		if pred != nil && !pred(c) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// Update runs fn on a copy of the current record under the write lock and
// stores what it returns. If fn fails, the stored record is left as it was.
// The id and creation time cannot be changed; Version is incremented and
// UpdatedAt restamped.
func (r *Repo) Update(ctx context.Context, id string, fn func(*domain.Claim) (*domain.Claim, error)) (*domain.Claim, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.claims[id]
	if !ok {
		return nil, fmt.Errorf("claim %s: %w", id, domain.ErrNotFound)
	}

	next, err := fn(cur.Clone())
	if err != nil {
		return nil, err
	}
	if next == nil {
		return nil, fmt.Errorf("claim %s: update returned nil", id)
	}
	if next.Version != cur.Version {
		return nil, fmt.Errorf("claim %s: version %d, stored %d: %w", id, next.Version, cur.Version, domain.ErrConflict)
	}

	stored := next.Clone()
	stored.ID = cur.ID
	stored.CreatedAt = cur.CreatedAt
	stored.UpdatedAt = r.now()
	stored.Version = cur.Version + 1

	r.claims[id] = stored
	return stored.Clone(), nil
}

// Count returns the number of stored claims.
func (r *Repo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order), nil
}

// Ping reports whether the store can serve requests.
func (r *Repo) Ping(ctx context.Context) error {
	return ctx.Err()
}
