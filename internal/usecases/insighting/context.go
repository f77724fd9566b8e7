package insighting

import "context"

type bypassCacheKey struct{}

// WithBypassCache faz a próxima consulta ignorar o cache de resultados.
// O resultado obtido ainda é gravado no cache.
func WithBypassCache(ctx context.Context) context.Context {
	return context.WithValue(ctx, bypassCacheKey{}, true)
}

// IsBypassingCache indica se o contexto pede para ignorar o cache.
func IsBypassingCache(ctx context.Context) bool {
	bypass, _ := ctx.Value(bypassCacheKey{}).(bool)
	return bypass
}
