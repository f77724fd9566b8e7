package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger verifica uma dependência externa, como o banco.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		}

		code := http.StatusOK
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				logrus.WithError(err).Warn("error responding to healthcheck")
				status["database"] = "unavailable"
				code = http.StatusServiceUnavailable
			}
		}

		writeJSON(w, code, status)
	})
}
