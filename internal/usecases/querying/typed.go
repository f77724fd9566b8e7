package querying

import (
	"context"
	"fmt"
)

// Get é a versão tipada de Query.
func Get[T any](ctx context.Context, m *Manager, key Key, opts Options, fetch func(context.Context) (T, error)) (T, State, error) {
	var zero T

	state, err := m.Query(ctx, key, opts, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, state, err
	}

	if state.Data == nil {
		return zero, state, nil
	}

	v, ok := state.Data.(T)
	if !ok {
		return zero, state, fmt.Errorf("querying: tipo inesperado %T para a chave %s", state.Data, key)
	}
	return v, state, nil
}
