package tripstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/Rushabh16-9/travel-planner/internal/domain/trip"
)

// ValkeyStore caches itineraries in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a cache backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "trip"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) Get(ctx context.Context, key string) (trip.Itinerary, bool, error) {
	cmd := s.client.B().Get().Key(s.entryKey(key)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return trip.Itinerary{}, false, nil
		}
		return trip.Itinerary{}, false, err
	}
	var it trip.Itinerary
	if err := json.Unmarshal([]byte(payload), &it); err != nil {
		return trip.Itinerary{}, false, err
	}
	return it, true, nil
}

func (s *ValkeyStore) Save(ctx context.Context, key string, it trip.Itinerary, ttl time.Duration) error {
	payload, err := json.Marshal(it)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.entryKey(key)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) entryKey(key string) string {
	return s.prefix + ":itinerary:" + key
}

var _ trip.Store = (*ValkeyStore)(nil)
