package models

import (
	"context"
	"errors"
)

// RankStore saves and loads final rank distributions under a key (e.g. the
// name of the estimator that produced them).
type RankStore interface {
	// Validate() returns the appropriate error if the store is nil or unusable.
	Validate() error

	// Save() stores dist under key, replacing any previous distribution.
	Save(ctx context.Context, key string, dist Distribution) error

	// Load() returns the distribution stored under key.
	Load(ctx context.Context, key string) (Distribution, error)

	// Keys() returns the keys of all the stored distributions, sorted.
	Keys(ctx context.Context) ([]string, error)
}

//--------------------------ERROR-CODES--------------------------

var ErrNilStorePointer = errors.New("rank store pointer is nil")
var ErrNilClientPointer = errors.New("nil client pointer")
var ErrKeyNotFound = errors.New("key not found in the rank store")
var ErrEmptyKey = errors.New("key is empty")
