package snapshot

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/tavernkeep/dungeonmaster/internal/errors"
	"github.com/tavernkeep/dungeonmaster/internal/pkg/clock"
	redisclient "github.com/tavernkeep/dungeonmaster/internal/redis"
)

const saveKeyPrefix = "save:"

// RedisConfig holds the dependencies for the redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a redis-backed snapshot repository. The
// slot is a save-slot name, stored under "save:<slot>" as JSON with no
// expiry: campaign saves live until overwritten or deleted.
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Slot == "" {
		return nil, errors.InvalidArgument(errSlotEmpty)
	}
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument(errSnapshotNil)
	}

	doc := newSaveDocument(input.Snapshot, r.clock.Now().UTC().Format(time.RFC3339))
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal snapshot")
	}

	key := saveKeyPrefix + input.Slot
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeIO, "failed to write save slot %s", input.Slot)
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.Slot == "" {
		return nil, errors.InvalidArgument(errSlotEmpty)
	}

	key := saveKeyPrefix + input.Slot
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("save slot %s not found", input.Slot)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeIO, "failed to read save slot %s", input.Slot)
	}

	var doc saveDocument
	if err := json.Unmarshal([]byte(result), &doc); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeSnapshotFormat, "save slot %s does not parse", input.Slot)
	}

	snap, err := doc.toSnapshot()
	if err != nil {
		return nil, err
	}

	return &LoadOutput{Snapshot: snap}, nil
}
