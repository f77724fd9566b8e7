package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const scanBatchSize = 500

// Store implementa cache.Store sobre Redis, compartilhando os resultados entre
// réplicas do serviço. A expiração é delegada ao TTL nativo das chaves.
type Store struct {
	client    redis.UniversalClient
	ttl       time.Duration
	namespace string
}

func New(client redis.UniversalClient, ttl time.Duration, namespace string) *Store {
	return &Store{
		client:    client,
		ttl:       ttl,
		namespace: namespace,
	}
}

// NewFromURL cria o cliente a partir de uma URL redis:// e valida a conexão.
func NewFromURL(ctx context.Context, redisURL string, ttl time.Duration, namespace string) (*Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("rediscache: url inválida: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("rediscache: erro ao conectar: %w", err)
	}

	return New(client, ttl, namespace), nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := s.client.Get(ctx, s.prefixed(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logrus.WithFields(logrus.Fields{
				"key":   key,
				"error": err.Error(),
			}).Warn("rediscache: erro ao ler chave, tratando como ausente")
		}
		return nil, false
	}

	return data, true
}

func (s *Store) Set(ctx context.Context, key string, data []byte) {
	if err := s.client.Set(ctx, s.prefixed(key), data, s.ttl).Err(); err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("rediscache: erro ao gravar chave")
	}
}

// Clear remove todas as chaves do namespace.
func (s *Store) Clear(ctx context.Context) {
	var cursor uint64
	removed := 0

	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.prefixed("*"), scanBatchSize).Result()
		if err != nil {
			logrus.WithError(err).Error("rediscache: erro ao varrer chaves para limpeza")
			return
		}

		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				logrus.WithError(err).Error("rediscache: erro ao remover chaves")
				return
			}
			removed += len(keys)
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	logrus.WithField("removed", removed).Debug("rediscache: cache limpo")
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) prefixed(key string) string {
	return s.namespace + ":" + key
}
