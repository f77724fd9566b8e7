package domain

import "time"

// AuditContext reúne as métricas agregadas enviadas ao modelo.
type AuditContext struct {
	AccountNames []string        `json:"accountNames"`
	Since        string          `json:"since"`
	Until        string          `json:"until"`
	Objective    string          `json:"objective,omitempty"`
	Totals       Metrics         `json:"totals"`
	Campaigns    []Campaign      `json:"campaigns"`
	Creatives    []AdPerformance `json:"creatives"`
	HideSpend    bool            `json:"-"`
}

type AuditReport struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	Fallback    bool      `json:"fallback"`
	GeneratedAt time.Time `json:"generatedAt"`
}
