package routing

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/Tomas-vilte/MateChat/internal/domain/models"
	"github.com/Tomas-vilte/MateChat/internal/domain/ports"
)

var _ ports.IntentClassifier = (*HeuristicClassifier)(nil)

// HeuristicClassifier clasifica preguntas por keywords, sin llamadas de red.
// Es la estrategia por defecto y el fallback del clasificador de IA.
type HeuristicClassifier struct {
	defaultLimit int
}

// NewHeuristicClassifier crea un clasificador heurístico. defaultLimit acota
// la página pedida a GitHub cuando la pregunta no trae un número.
func NewHeuristicClassifier(defaultLimit int) *HeuristicClassifier {
	if defaultLimit <= 0 || defaultLimit > 100 {
		defaultLimit = 30
	}
	return &HeuristicClassifier{defaultLimit: defaultLimit}
}

var intentKeywords = map[models.Intent][]string{
	models.IntentFiles: {
		"file", "files", "contents", "tree", "structure",
		"archivo", "archivos", "contenido", "estructura",
	},
	models.IntentIssues: {
		"issue", "issues", "bug", "bugs", "ticket", "tickets",
	},
	models.IntentPullRequests: {
		"pull request", "pull requests", "pr ", "prs", "merge request",
	},
	models.IntentCommits: {
		"commit", "commits", "change history", "historial",
	},
}

var (
	issueNumberRe = regexp.MustCompile(`#(\d+)`)
	limitRe       = regexp.MustCompile(`(?i)(?:last|first|top|recent|latest|últim\w*|primer\w*)\s+(\d+)`)
)

// Classify nunca falla: ante entrada no reconocida o ambigua devuelve
// IntentSummary para que el turno siga vivo.
func (c *HeuristicClassifier) Classify(_ context.Context, question string) models.QueryIntent {
	normalized := " " + strings.ToLower(strings.TrimSpace(question)) + " "

	limit := c.defaultLimit
	if m := limitRe.FindStringSubmatch(normalized); len(m) > 1 {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			limit = n
			if limit > 100 {
				limit = 100
			}
		}
	}

	// "issue #38" pide el detalle de un issue puntual, no la lista
	if issueNum := extractIssueNumber(normalized); issueNum > 0 && matchesIntent(normalized, models.IntentIssues) {
		return models.QueryIntent{
			Action:      models.IntentIssueDetail,
			Limit:       limit,
			IssueNumber: issueNum,
		}
	}

	var matched []models.Intent
	for _, intent := range []models.Intent{models.IntentFiles, models.IntentIssues, models.IntentPullRequests, models.IntentCommits} {
		if matchesIntent(normalized, intent) {
			matched = append(matched, intent)
		}
	}

	// Empate o nada reconocible: Summary
	if len(matched) != 1 {
		return models.QueryIntent{Action: models.IntentSummary, Limit: limit}
	}

	return models.QueryIntent{Action: matched[0], Limit: limit}
}

func matchesIntent(normalized string, intent models.Intent) bool {
	for _, kw := range intentKeywords[intent] {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

func extractIssueNumber(normalized string) int {
	if m := issueNumberRe.FindStringSubmatch(normalized); len(m) > 1 {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return 0
}
