package ports

import (
	"context"

	"github.com/Tomas-vilte/MateChat/internal/domain/models"
)

// RepoFetcher ejecuta la llamada a la API de GitHub que corresponde al
// intent y normaliza la respuesta. Devuelve la página completa o un error:
// no hay resultados parciales ni streaming.
type RepoFetcher interface {
	Fetch(ctx context.Context, repo models.RepoReference, intent models.QueryIntent) ([]models.FetchedRecord, error)
}
