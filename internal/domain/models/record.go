package models

import "time"

// RecordKind indica de qué endpoint de GitHub salió un registro.
type RecordKind string

const (
	RecordRepo        RecordKind = "repository"
	RecordFile        RecordKind = "file"
	RecordIssue       RecordKind = "issue"
	RecordPullRequest RecordKind = "pull_request"
	RecordCommit      RecordKind = "commit"
)

// FetchedRecord es la proyección normalizada de un ítem de la API de GitHub.
// Lo crea el fetcher y el composer lo consume en modo lectura; nunca se
// muta después. Los campos en cero se omiten al serializar para que el
// prompt al modelo quede compacto.
type FetchedRecord struct {
	Kind   RecordKind `json:"kind"`
	Number int        `json:"number,omitempty"`
	Title  string     `json:"title,omitempty"`
	State  string     `json:"state,omitempty"`
	Author string     `json:"author,omitempty"`
	URL    string     `json:"url,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`

	// Issues
	Assignee    string   `json:"assignee,omitempty"`
	Description string   `json:"description,omitempty"`
	Comments    []string `json:"comments,omitempty"`
	Labels      []string `json:"labels,omitempty"`

	// Pull requests
	Merged    bool `json:"merged,omitempty"`
	Additions int  `json:"additions,omitempty"`
	Deletions int  `json:"deletions,omitempty"`

	// Commits
	SHA         string `json:"sha,omitempty"`
	Message     string `json:"message,omitempty"`
	AuthorEmail string `json:"author_email,omitempty"`

	// Archivos del root del repo
	Path string `json:"path,omitempty"`
	Type string `json:"type,omitempty"`
	Size int    `json:"size,omitempty"`

	// Resumen del repositorio
	Language   string `json:"language,omitempty"`
	Stars      int    `json:"stars,omitempty"`
	Forks      int    `json:"forks,omitempty"`
	OpenIssues int    `json:"open_issues,omitempty"`
}
