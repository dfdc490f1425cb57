package errors

import "fmt"

// InvalidInputError indica que la pregunta del usuario está vacía
type InvalidInputError struct{}

func (e *InvalidInputError) Error() string {
	return "la pregunta no puede estar vacía"
}

// NewInvalidInputError crea un nuevo error de entrada inválida
func NewInvalidInputError() *InvalidInputError {
	return &InvalidInputError{}
}

// RepoNotFoundError indica que el repositorio no existe o no es accesible
// con el token configurado
type RepoNotFoundError struct {
	Repo string
}

func (e *RepoNotFoundError) Error() string {
	return fmt.Sprintf("Repositorio '%s' no encontrado o inaccesible", e.Repo)
}

// NewRepoNotFoundError crea un nuevo error de repositorio no encontrado
func NewRepoNotFoundError(repo string) *RepoNotFoundError {
	return &RepoNotFoundError{Repo: repo}
}

// AuthError indica que el token de GitHub es inválido o expiró
type AuthError struct {
	Repo string
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Token de GitHub inválido o sin permisos para '%s': %v", e.Repo, e.Err)
	}
	return fmt.Sprintf("Token de GitHub inválido o sin permisos para '%s'", e.Repo)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError crea un nuevo error de autenticación
func NewAuthError(repo string, err error) *AuthError {
	return &AuthError{Repo: repo, Err: err}
}

// RateLimitedError indica que GitHub respondió con su límite de requests.
// No se reintenta: sin backoff un reintento no ayuda.
type RateLimitedError struct {
	Err error
}

func (e *RateLimitedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Límite de requests de GitHub alcanzado: %v", e.Err)
	}
	return "Límite de requests de GitHub alcanzado"
}

func (e *RateLimitedError) Unwrap() error {
	return e.Err
}

// NewRateLimitedError crea un nuevo error de rate limit
func NewRateLimitedError(err error) *RateLimitedError {
	return &RateLimitedError{Err: err}
}

// CompletionError indica que la llamada al modelo de IA falló
type CompletionError struct {
	Provider string
	Err      error
}

func (e *CompletionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Fallo la generación con el proveedor '%s': %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("Fallo la generación con el proveedor '%s'", e.Provider)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

// NewCompletionError crea un nuevo error de generación
func NewCompletionError(provider string, err error) *CompletionError {
	return &CompletionError{Provider: provider, Err: err}
}
