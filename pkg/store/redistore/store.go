// The redistore package defines a Redis RankStore that fulfills the RankStore interface in models.
package redistore

import (
	"context"
	"slices"

	"github.com/redis/go-redis/v9"
	"github.com/vertex-lab/linkrank/pkg/models"
	"github.com/vertex-lab/linkrank/pkg/utils/redisutils"
)

const (
	KeyKeys           string = "pagerank:keys"
	KeyPagerankPrefix string = "pagerank:"
)

// RankStore fulfills the RankStore interface defined in models.
type RankStore struct {
	client *redis.Client
}

// NewRankStore() returns a RankStore using the provided Redis client.
func NewRankStore(cl *redis.Client) (*RankStore, error) {
	if cl == nil {
		return nil, models.ErrNilClientPointer
	}

	return &RankStore{client: cl}, nil
}

// Validate() check if the RankStore and client are nil and returns the appropriare error
func (RS *RankStore) Validate() error {
	if RS == nil {
		return models.ErrNilStorePointer
	}

	if RS.client == nil {
		return models.ErrNilClientPointer
	}

	return nil
}

// Save() replaces the hash of key with dist, in a single transaction.
func (RS *RankStore) Save(ctx context.Context, key string, dist models.Distribution) error {
	if err := RS.Validate(); err != nil {
		return err
	}

	if key == "" {
		return models.ErrEmptyKey
	}

	_, err := RS.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, KeyPagerank(key))
		if len(dist) > 0 {
			pipe.HSet(ctx, KeyPagerank(key), redisutils.FormatDistribution(dist))
		}
		pipe.SAdd(ctx, KeyKeys, key)
		return nil
	})

	return err
}

// Load() returns the distribution stored under key.
func (RS *RankStore) Load(ctx context.Context, key string) (models.Distribution, error) {
	if err := RS.Validate(); err != nil {
		return nil, err
	}

	exists, err := RS.client.SIsMember(ctx, KeyKeys, key).Result()
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, models.ErrKeyNotFound
	}

	fields, err := RS.client.HGetAll(ctx, KeyPagerank(key)).Result()
	if err != nil {
		return nil, err
	}

	return redisutils.ParseDistribution(fields)
}

// Keys() returns the sorted keys of the stored distributions.
func (RS *RankStore) Keys(ctx context.Context) ([]string, error) {
	if err := RS.Validate(); err != nil {
		return nil, err
	}

	keys, err := RS.client.SMembers(ctx, KeyKeys).Result()
	if err != nil {
		return nil, err
	}

	slices.Sort(keys)
	return keys, nil
}

// KeyPagerank() returns the Redis key of the hash that holds the distribution of key.
func KeyPagerank(key string) string {
	return KeyPagerankPrefix + key
}
