package handler

import (
	"net/http"
	"time"

	"github.com/bsocial/adhub-api/internal/domain"
	"github.com/bsocial/adhub-api/internal/usecases/access"
	"github.com/bsocial/adhub-api/internal/usecases/auditing"
	"github.com/bsocial/adhub-api/pkg/apiErrors"
	"github.com/bsocial/adhub-api/pkg/middleware"
)

// Audit agrega os dados das contas pedidas e gera a auditoria com IA.
func Audit(service auditing.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, _ := middleware.UserFromContext(r.Context())
		if err := access.CheckFeature(user, domain.FeatureAILab); err != nil {
			handleError(w, err)
			return
		}

		req, _, err := parseInsightRequest(r, time.Now())
		if err != nil {
			handleError(w, err)
			return
		}

		scoped, err := access.Scope(user, req)
		if err != nil {
			handleError(w, err)
			return
		}
		if scoped.Token == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingMetaToken, "Header X-Meta-Token é obrigatório", nil)
			return
		}

		report, err := service.Audit(r.Context(), scoped, access.HidesSpend(user))
		if err != nil {
			handleError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

// AuditFromContext gera a auditoria a partir de métricas já agregadas pelo cliente.
func AuditFromContext(service auditing.Auditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, _ := middleware.UserFromContext(r.Context())
		if err := access.CheckFeature(user, domain.FeatureAILab); err != nil {
			handleError(w, err)
			return
		}

		var c domain.AuditContext
		if err := decodeBody(r, &c); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}
		c.HideSpend = access.HidesSpend(user)

		writeJSON(w, http.StatusOK, service.GenerateAudit(r.Context(), c))
	}
}
