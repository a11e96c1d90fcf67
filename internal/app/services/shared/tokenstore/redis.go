package tokenstore

import (
	"context"
	"errors"
	"fmt"

	"agenda-care-service/internal/app/contracts"
	"agenda-care-service/internal/app/models"
	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) contracts.TokenStore {
	return &redisTokenStore{client: client}
}

func (s *redisTokenStore) Get(ctx context.Context, authContext string) (*models.TokenPair, error) {
	raw, err := s.client.Get(ctx, storageKey(authContext)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}

	var pair models.TokenPair
	if err := json.Unmarshal([]byte(raw), &pair); err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}
	return &pair, nil
}

func (s *redisTokenStore) Set(ctx context.Context, authContext string, pair *models.TokenPair) error {
	raw, err := json.Marshal(pair)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if err := s.client.Set(ctx, storageKey(authContext), raw, 0).Err(); err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (s *redisTokenStore) Delete(ctx context.Context, authContext string) error {
	if err := s.client.Del(ctx, storageKey(authContext)).Err(); err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

func storageKey(authContext string) string {
	return fmt.Sprintf(constvars.TokenStorageKeyFormat, authContext)
}
