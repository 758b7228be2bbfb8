package saves

import (
	"context"
	stderrors "errors"
	"slices"
	"strings"

	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-idle/internal/redis"
)

const saveKeyPrefix = "rpg-idle:save:"

type redisRepository struct {
	client redisclient.Client
	logger *zap.Logger
}

// RedisConfig contains configuration for the Redis save repository
type RedisConfig struct {
	Client redisclient.Client
	Logger *zap.Logger
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed save repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &redisRepository{
		client: cfg.Client,
		logger: logger,
	}, nil
}

func saveKey(slot string) string {
	return saveKeyPrefix + slot
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := checkSave(input); err != nil {
		return nil, err
	}

	data, err := Encode(input.Data)
	if err != nil {
		return nil, err
	}

	if err := r.client.Set(ctx, saveKey(input.Slot), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save slot %s", input.Slot)
	}

	r.logger.Debug("save written", zap.String("slot", input.Slot), zap.Int("bytes", len(data)))
	return &SaveOutput{Data: input.Data}, nil
}

func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := checkSlot(input.Slot); err != nil {
		return nil, err
	}

	result, err := r.client.Get(ctx, saveKey(input.Slot)).Bytes()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return nil, errors.NotFoundf("save slot %s not found", input.Slot)
		}
		return nil, errors.Wrapf(err, "failed to load slot %s", input.Slot)
	}

	d, err := Decode(result)
	if err != nil {
		return nil, err
	}
	return &LoadOutput{Data: d}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := checkSlot(input.Slot); err != nil {
		return nil, err
	}

	deleted, err := r.client.Del(ctx, saveKey(input.Slot)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete slot %s", input.Slot)
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("save slot %s not found", input.Slot)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) Exists(ctx context.Context, input ExistsInput) (*ExistsOutput, error) {
	if err := checkSlot(input.Slot); err != nil {
		return nil, err
	}

	n, err := r.client.Exists(ctx, saveKey(input.Slot)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check slot %s", input.Slot)
	}

	return &ExistsOutput{Exists: n > 0}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	var slots []string

	iter := r.client.Scan(ctx, 0, saveKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		slots = append(slots, strings.TrimPrefix(iter.Val(), saveKeyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan save slots")
	}

	slices.Sort(slots)
	return &ListOutput{Slots: slots}, nil
}
