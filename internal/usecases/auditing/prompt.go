package auditing

import (
	"fmt"
	"strings"

	"github.com/bsocial/adhub-api/internal/domain"
	"github.com/bsocial/adhub-api/pkg/utils"
)

// Quantidade de campanhas e criativos incluídos no prompt.
const topN = 5

// BuildPrompt monta o prompt em Markdown com os totais e os destaques do período.
// Com HideSpend, investimento e métricas de custo ficam de fora.
func BuildPrompt(c domain.AuditContext) string {
	var sb strings.Builder

	sb.WriteString("Você é um gestor de tráfego sênior. Faça uma auditoria objetiva das contas de anúncios abaixo, ")
	sb.WriteString("em português, formatada em Markdown, com diagnóstico, pontos de atenção e recomendações práticas.\n\n")

	sb.WriteString("## Contexto\n")
	if len(c.AccountNames) > 0 {
		fmt.Fprintf(&sb, "- Contas: %s\n", strings.Join(c.AccountNames, ", "))
	}
	fmt.Fprintf(&sb, "- Período: %s a %s\n", c.Since, c.Until)
	if c.Objective != "" {
		fmt.Fprintf(&sb, "- Objetivo: %s\n", c.Objective)
	}

	t := c.Totals
	sb.WriteString("\n## Totais\n")
	if !c.HideSpend {
		fmt.Fprintf(&sb, "- Investimento: %.2f\n", utils.RoundWithTwoDecimalPlace(t.Spend))
	}
	fmt.Fprintf(&sb, "- Impressões: %d\n", t.Impressions)
	fmt.Fprintf(&sb, "- Alcance: %d\n", t.Reach)
	fmt.Fprintf(&sb, "- Cliques: %d\n", t.Clicks)
	fmt.Fprintf(&sb, "- CTR: %.2f%%\n", utils.RoundWithTwoDecimalPlace(t.CTR))
	if !c.HideSpend {
		fmt.Fprintf(&sb, "- CPC: %.2f\n", utils.RoundWithTwoDecimalPlace(t.CPC))
		fmt.Fprintf(&sb, "- CPM: %.2f\n", utils.RoundWithTwoDecimalPlace(t.CPM))
	}
	fmt.Fprintf(&sb, "- Resultados: %.0f\n", t.Results)
	if !c.HideSpend {
		fmt.Fprintf(&sb, "- Custo por resultado: %.2f\n", utils.RoundWithTwoDecimalPlace(t.CostPerResult))
	}
	fmt.Fprintf(&sb, "- ROAS: %.2f\n", utils.RoundWithTwoDecimalPlace(t.ROAS))

	if len(c.Campaigns) > 0 {
		sb.WriteString("\n## Principais campanhas\n")
		if c.HideSpend {
			sb.WriteString("| Campanha | Objetivo | Status | Resultados | ROAS |\n")
			sb.WriteString("|---|---|---|---|---|\n")
		} else {
			sb.WriteString("| Campanha | Objetivo | Status | Investimento | Resultados | CPR | ROAS |\n")
			sb.WriteString("|---|---|---|---|---|---|---|\n")
		}
		for _, cp := range limit(c.Campaigns, topN) {
			m := cp.Insights
			if m == nil {
				m = &domain.Metrics{}
			}
			if c.HideSpend {
				fmt.Fprintf(&sb, "| %s | %s | %s | %.0f | %.2f |\n",
					cell(cp.Name), cp.Objective, cp.EffectiveStatus, m.Results, m.ROAS)
				continue
			}
			fmt.Fprintf(&sb, "| %s | %s | %s | %.2f | %.0f | %.2f | %.2f |\n",
				cell(cp.Name), cp.Objective, cp.EffectiveStatus, m.Spend, m.Results, m.CostPerResult, m.ROAS)
		}
	}

	if len(c.Creatives) > 0 {
		sb.WriteString("\n## Principais criativos\n")
		if c.HideSpend {
			sb.WriteString("| Anúncio | Título | CTR | Resultados | ROAS |\n")
			sb.WriteString("|---|---|---|---|---|\n")
		} else {
			sb.WriteString("| Anúncio | Título | Investimento | CTR | Resultados | ROAS |\n")
			sb.WriteString("|---|---|---|---|---|---|\n")
		}
		for _, p := range limit(c.Creatives, topN) {
			if c.HideSpend {
				fmt.Fprintf(&sb, "| %s | %s | %.2f%% | %.0f | %.2f |\n",
					cell(p.AdName), cell(p.Creative.Title), p.Metrics.CTR, p.Metrics.Results, p.Metrics.ROAS)
				continue
			}
			fmt.Fprintf(&sb, "| %s | %s | %.2f | %.2f%% | %.0f | %.2f |\n",
				cell(p.AdName), cell(p.Creative.Title), p.Metrics.Spend, p.Metrics.CTR, p.Metrics.Results, p.Metrics.ROAS)
		}
	}

	return sb.String()
}

func limit[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// cell evita que nomes com pipe quebrem a tabela.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", "/")
}
