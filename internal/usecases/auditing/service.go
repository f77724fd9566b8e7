package auditing

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bsocial/adhub-api/infrastructure/integrator/meta"
	"github.com/bsocial/adhub-api/internal/domain"
	"github.com/bsocial/adhub-api/internal/usecases/insighting"
	"github.com/bsocial/adhub-api/pkg/daterange"
	"github.com/bsocial/adhub-api/pkg/utils"
)

// FallbackText é devolvido sempre que a geração falha.
const FallbackText = "Não foi possível gerar a auditoria com IA neste momento. " +
	"Revise os principais indicadores do período (investimento, custo por resultado e ROAS) " +
	"e tente novamente em alguns minutos."

// Generator é a chamada texto-para-texto do modelo generativo.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type Auditor interface {
	GenerateAudit(ctx context.Context, c domain.AuditContext) domain.AuditReport
	Audit(ctx context.Context, req domain.InsightRequest, hideSpend bool) (domain.AuditReport, error)
}

type Service struct {
	generator Generator
	insighter insighting.Insighter
	now       func() time.Time
}

func NewService(generator Generator, insighter insighting.Insighter) *Service {
	return &Service{
		generator: generator,
		insighter: insighter,
		now:       time.Now,
	}
}

// GenerateAudit nunca falha: qualquer erro do modelo vira o texto padrão.
func (s *Service) GenerateAudit(ctx context.Context, c domain.AuditContext) domain.AuditReport {
	report := domain.AuditReport{
		ID:          newAuditID(),
		GeneratedAt: s.now(),
	}

	text, err := s.generator.GenerateContent(ctx, BuildPrompt(c))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"audit_id": report.ID,
			"error":    err.Error(),
		}).Warn("audit: generation failed, using fallback")

		report.Text = FallbackText
		report.Fallback = true
		return report
	}

	report.Text = text
	return report
}

// Audit agrega totais, campanhas e criativos da requisição e gera a auditoria.
// Só os totais são obrigatórios; as listas entram quando disponíveis.
func (s *Service) Audit(ctx context.Context, req domain.InsightRequest, hideSpend bool) (domain.AuditReport, error) {
	totals, err := s.insighter.FetchAccountInsights(ctx, req)
	if err != nil {
		return domain.AuditReport{}, err
	}

	c := domain.AuditContext{
		Objective: req.Objective,
		Totals:    totals,
		HideSpend: hideSpend,
	}

	if rng, err := daterange.Resolve(req.Selection, s.reference(req)); err == nil {
		c.Since, c.Until = rng.Since, rng.Until
	}

	listReq := req
	listReq.Cursor = ""

	if page, err := s.insighter.FetchCampaignsWithInsights(ctx, listReq); err == nil {
		c.Campaigns = page.Data
	} else {
		logrus.WithError(err).Warn("audit: campaigns unavailable")
	}

	if creatives, err := s.insighter.FetchCreativePerformance(ctx, listReq); err == nil {
		c.Creatives = creatives
	} else {
		logrus.WithError(err).Warn("audit: creatives unavailable")
	}

	if accounts, err := s.insighter.FetchAdAccounts(ctx, req.Token); err == nil {
		c.AccountNames = accountNames(accounts, req.AccountIDs)
	}

	return s.GenerateAudit(ctx, c), nil
}

func (s *Service) reference(req domain.InsightRequest) time.Time {
	if !req.Now.IsZero() {
		return req.Now
	}
	return s.now()
}

func accountNames(accounts []domain.AdAccount, selected []string) []string {
	wanted := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		wanted[meta.NormalizeAccountID(id)] = struct{}{}
	}

	names := make([]string, 0, len(selected))
	for _, a := range accounts {
		if _, ok := wanted[a.ID]; ok {
			names = append(names, a.Name)
		}
	}
	return names
}

func newAuditID() string {
	id, err := utils.GenerateID(12)
	if err != nil {
		return time.Now().Format("20060102150405")
	}
	return id
}
