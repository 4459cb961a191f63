package gamestate

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-dungeon/internal/redis"
)

const (
	// Key pattern: game_state:{id}
	stateKeyPrefix = "game_state:"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a repository storing each game as JSON
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := input.State.Validate(); err != nil {
		return nil, err
	}

	state := stamp(input.State, r.clock.Now())
	data, err := json.Marshal(state)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal game %s", state.ID)
	}

	if err := r.client.Set(ctx, stateKey(state.ID), data, 0).Err(); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to store game %s in Redis", state.ID)
	}

	return &SaveOutput{State: state}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := ValidateID(input.ID); err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, stateKey(input.ID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("game %s not found", input.ID)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get game %s from Redis", input.ID)
	}

	var state GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to unmarshal game %s", input.ID)
	}
	if err := state.checkVersion(); err != nil {
		return nil, err
	}

	return &GetOutput{State: &state}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := ValidateID(input.ID); err != nil {
		return nil, err
	}

	deleted, err := r.client.Del(ctx, stateKey(input.ID)).Result()
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to delete game %s from Redis", input.ID)
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("game %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func stateKey(id string) string {
	return stateKeyPrefix + id
}
