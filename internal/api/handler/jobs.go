package handler

import (
	"context"
	"net/http"
)

// Prefetcher é o agendador de pré-carregamento do cache.
type Prefetcher interface {
	TriggerManualSync(ctx context.Context)
	GetStatus() map[string]any
}

func RunPrefetch(prefetcher Prefetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prefetcher.TriggerManualSync(r.Context())
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
	}
}

func PrefetchStatus(prefetcher Prefetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, prefetcher.GetStatus())
	}
}
