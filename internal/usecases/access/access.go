// Package access aplica a configuração de cada usuário às consultas:
// contas permitidas, período travado, multiplicador de investimento, filtro
// fixo de campanhas e funcionalidades liberadas. Administradores não são restringidos.
package access

import (
	"errors"

	"github.com/bsocial/adhub-api/infrastructure/integrator/meta"
	"github.com/bsocial/adhub-api/internal/domain"
	"github.com/bsocial/adhub-api/pkg/daterange"
)

var (
	ErrNoUser            = errors.New("usuário não autenticado")
	ErrNoAllowedAccounts = errors.New("nenhuma das contas solicitadas está liberada para o usuário")
	ErrFeatureNotAllowed = errors.New("funcionalidade não liberada para o usuário")
	ErrInactiveUser      = errors.New("usuário desativado")
)

// Scope restringe a requisição ao que o usuário pode ver.
func Scope(user *domain.User, req domain.InsightRequest) (domain.InsightRequest, error) {
	if user == nil {
		return req, ErrNoUser
	}
	if user.IsAdmin() {
		return req, nil
	}
	if !user.Active {
		return req, ErrInactiveUser
	}

	cfg := user.Config

	accounts := Intersect(req.AccountIDs, cfg.AdAccountIDs)
	if len(accounts) == 0 {
		return req, ErrNoAllowedAccounts
	}
	req.AccountIDs = accounts

	if sel, ok := FixedSelection(cfg); ok {
		req.Selection = sel
	}

	req.SpendMultiplier = cfg.SpendMultiplier

	if !cfg.GlobalCampaignFilter.IsEmpty() {
		restriction := cfg.GlobalCampaignFilter.Normalize()
		req.Restriction = &restriction
	} else {
		req.Restriction = nil
	}

	return req, nil
}

// Intersect devolve as contas solicitadas que estão liberadas. Sem contas
// solicitadas, devolve todas as liberadas. A comparação ignora o prefixo act_.
func Intersect(requested, allowed []string) []string {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, id := range allowed {
		if id = meta.NormalizeAccountID(id); id != "" {
			allowedSet[id] = struct{}{}
		}
	}

	source := requested
	if len(requested) == 0 {
		source = allowed
	}

	out := make([]string, 0, len(source))
	seen := make(map[string]struct{}, len(source))
	for _, id := range source {
		id = meta.NormalizeAccountID(id)
		if _, ok := allowedSet[id]; !ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

// FixedSelection transforma o período travado do usuário em intervalo customizado.
func FixedSelection(cfg domain.UserConfig) (daterange.Selection, bool) {
	if cfg.FixedDateStart == nil || cfg.FixedDateEnd == nil || *cfg.FixedDateStart == "" || *cfg.FixedDateEnd == "" {
		return daterange.Selection{}, false
	}

	return daterange.Selection{
		Preset: daterange.Custom,
		Custom: &daterange.CustomRange{StartDate: *cfg.FixedDateStart, EndDate: *cfg.FixedDateEnd},
	}, true
}

func CheckFeature(user *domain.User, feature domain.Feature) error {
	if user == nil {
		return ErrNoUser
	}
	if user.IsAdmin() {
		return nil
	}
	if feature == domain.FeatureAdmin || !user.Config.HasFeature(feature) {
		return ErrFeatureNotAllowed
	}
	return nil
}

// HidesSpend indica se os totais de investimento devem ser omitidos.
func HidesSpend(user *domain.User) bool {
	return user != nil && !user.IsAdmin() && user.Config.HideTotalSpend
}

// MaskSpend zera os campos de investimento dos totais.
func MaskSpend(m *domain.Metrics) {
	if m == nil {
		return
	}
	m.Spend = 0
	m.CPC = 0
	m.CPM = 0
	m.CostPerResult = 0
}

func MaskTrend(t *domain.Trend) {
	MaskSpend(&t.Current)
	MaskSpend(t.Previous)
	for _, k := range []string{"spend", "cpc", "cpm", "cost_per_result"} {
		delete(t.Deltas, k)
	}
}
