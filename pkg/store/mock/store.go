// The mock package defines an in-memory RankStore, safe for concurrent use.
package mock

import (
	"context"
	"maps"
	"slices"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/vertex-lab/linkrank/pkg/models"
)

// RankStore is the in-memory version of the RankStore interface.
type RankStore struct {
	// associates each key with the corrisponding distribution
	ranks *xsync.MapOf[string, models.Distribution]
}

// NewRankStore() returns an empty RankStore.
func NewRankStore() *RankStore {
	return &RankStore{
		ranks: xsync.NewMapOf[string, models.Distribution](),
	}
}

// Validate() returns an error if the RankStore is nil.
func (RS *RankStore) Validate() error {
	if RS == nil || RS.ranks == nil {
		return models.ErrNilStorePointer
	}
	return nil
}

// Save() stores a copy of dist under key.
func (RS *RankStore) Save(ctx context.Context, key string, dist models.Distribution) error {
	_ = ctx
	if err := RS.Validate(); err != nil {
		return err
	}

	if key == "" {
		return models.ErrEmptyKey
	}

	RS.ranks.Store(key, maps.Clone(dist))
	return nil
}

// Load() returns a copy of the distribution stored under key.
func (RS *RankStore) Load(ctx context.Context, key string) (models.Distribution, error) {
	_ = ctx
	if err := RS.Validate(); err != nil {
		return nil, err
	}

	dist, exists := RS.ranks.Load(key)
	if !exists {
		return nil, models.ErrKeyNotFound
	}

	return maps.Clone(dist), nil
}

// Keys() returns the sorted keys of the stored distributions.
func (RS *RankStore) Keys(ctx context.Context) ([]string, error) {
	_ = ctx
	if err := RS.Validate(); err != nil {
		return nil, err
	}

	keys := make([]string, 0, RS.ranks.Size())
	RS.ranks.Range(func(key string, _ models.Distribution) bool {
		keys = append(keys, key)
		return true
	})

	slices.Sort(keys)
	return keys, nil
}
