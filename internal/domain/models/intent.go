package models

// Intent es la categoría de datos de GitHub que pide una pregunta.
type Intent string

const (
	IntentFiles        Intent = "files"
	IntentIssues       Intent = "issues"
	IntentIssueDetail  Intent = "issue_detail"
	IntentPullRequests Intent = "pull_requests"
	IntentCommits      Intent = "commits"
	IntentSummary      Intent = "summary"
)

// ValidIntents retorna el conjunto de intents soportados.
func ValidIntents() []Intent {
	return []Intent{
		IntentFiles,
		IntentIssues,
		IntentIssueDetail,
		IntentPullRequests,
		IntentCommits,
		IntentSummary,
	}
}

func (i Intent) IsValid() bool {
	for _, v := range ValidIntents() {
		if i == v {
			return true
		}
	}
	return false
}

// QueryIntent es el resultado de clasificar una pregunta: la acción a
// ejecutar contra GitHub más sus parámetros opcionales. Se crea por turno
// y se descarta al terminar.
type QueryIntent struct {
	Action Intent
	// Limit acota el tamaño de página pedido a GitHub (1..100).
	Limit int
	// IssueNumber sólo aplica cuando Action es IntentIssueDetail.
	IssueNumber int
}
