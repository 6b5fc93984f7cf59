package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrNil é devolvido quando a chave não existe (sessão expirada/inexistente).
var ErrNil = redis.Nil

// Service guarda as sessões de admin que sustentam o cookie adminToken.
type Service interface {
	// CreateSession associa um token opaco ao id do admin com TTL.
	CreateSession(ctx context.Context, token, adminId string, ttl time.Duration) error
	// GetSession devolve o id do admin do token, ou ErrNil.
	GetSession(ctx context.Context, token string) (string, error)
	DeleteSession(ctx context.Context, token string) error
	Ping(ctx context.Context) error
	Close() error
}

type client struct {
	rdb    *redis.Client
	prefix string
}

func NewClient(addr, password string, db int, sessionPrefix string) (Service, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: 10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("conexão com o Redis falhou: %w", err)
	}

	return &client{rdb: rdb, prefix: sessionPrefix}, nil
}

func (c *client) key(token string) string {
	return c.prefix + token
}

func (c *client) CreateSession(ctx context.Context, token, adminId string, ttl time.Duration) error {
	if token == "" || adminId == "" {
		return errors.New("token e adminId são obrigatórios")
	}
	return c.rdb.Set(ctx, c.key(token), adminId, ttl).Err()
}

func (c *client) GetSession(ctx context.Context, token string) (string, error) {
	return c.rdb.Get(ctx, c.key(token)).Result()
}

func (c *client) DeleteSession(ctx context.Context, token string) error {
	return c.rdb.Del(ctx, c.key(token)).Err()
}

func (c *client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *client) Close() error {
	return c.rdb.Close()
}
