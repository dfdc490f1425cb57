package models

import (
	"fmt"
	"strings"
)

// RepoReference identifica un repositorio de GitHub por dueño y nombre.
// Es inmutable una vez parseado de la entrada del usuario.
type RepoReference struct {
	Owner string
	Name  string
}

func (r RepoReference) String() string {
	return r.Owner + "/" + r.Name
}

func (r RepoReference) IsZero() bool {
	return r.Owner == "" || r.Name == ""
}

// ParseRepoReference acepta "owner/repo" o una URL completa de GitHub
// (https://github.com/owner/repo) y devuelve la referencia normalizada.
func ParseRepoReference(input string) (RepoReference, error) {
	cleaned := strings.TrimSpace(input)
	cleaned = strings.TrimSuffix(cleaned, "/")
	cleaned = strings.TrimSuffix(cleaned, ".git")

	for _, prefix := range []string{"https://github.com/", "http://github.com/", "github.com/"} {
		if strings.HasPrefix(cleaned, prefix) {
			cleaned = strings.TrimPrefix(cleaned, prefix)
			break
		}
	}

	parts := strings.Split(cleaned, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return RepoReference{}, fmt.Errorf("referencia de repositorio inválida: %q", input)
	}

	return RepoReference{Owner: parts[0], Name: parts[1]}, nil
}
