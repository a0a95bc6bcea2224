package chat

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// RedisProvisioner keeps the channel registry in redis, keyed by the
// patient/provider pair. SET NX makes provisioning idempotent: the first
// caller mints the channel id, everyone else reads the existing one, so a
// retry or a later repair call is always safe.
type RedisProvisioner struct {
	rdb *redis.Client
}

func NewRedisProvisioner(rdb *redis.Client) *RedisProvisioner {
	return &RedisProvisioner{rdb: rdb}
}

func channelKey(patientID, providerID string) string {
	return fmt.Sprintf("chat:channel:%s:%s", patientID, providerID)
}

func (p *RedisProvisioner) EnsureChannel(ctx context.Context, patientID, providerID, appointmentID string) (string, error) {
	key := channelKey(patientID, providerID)
	candidate := uuid.NewString()

	created, err := p.rdb.SetNX(ctx, key, candidate, 0).Result()
	if err != nil {
		return "", err
	}
	if created {
		return candidate, nil
	}

	// lost the race or the channel predates this call
	return p.rdb.Get(ctx, key).Result()
}
