// Package cache guarda os resultados das consultas à plataforma de anúncios
// com expiração por TTL. A Store é construída explicitamente e injetada nos
// serviços, permitindo sessões e testes independentes.
package cache

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultTTL é a validade de uma entrada: 5 minutos.
const DefaultTTL = 5 * time.Minute

// Store é o contrato comum entre o cache em memória e o cache em Redis.
// Uma entrada expirada é tratada como ausente.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte)
	Clear(ctx context.Context)
}

// GetJSON lê e decodifica um valor. Entradas que não decodificam são tratadas como ausentes.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, bool) {
	var out T

	raw, ok := s.Get(ctx, key)
	if !ok {
		return out, false
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("cache: entrada corrompida, tratando como ausente")
		return out, false
	}

	return out, true
}

// SetJSON codifica e grava um valor, substituindo o anterior.
func SetJSON(ctx context.Context, s Store, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("cache: erro ao serializar valor")
		return
	}

	s.Set(ctx, key, raw)
}
