package github

import (
	"context"
	"errors"
	"net/http"
	"time"

	domainErrors "github.com/Tomas-vilte/MateChat/internal/domain/errors"
	"github.com/Tomas-vilte/MateChat/internal/domain/models"
	"github.com/Tomas-vilte/MateChat/internal/domain/ports"
	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

var _ ports.RepoFetcher = (*GitHubClient)(nil)

type RepositoriesService interface {
	Get(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error)
	GetContents(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentGetOptions) (*github.RepositoryContent, []*github.RepositoryContent, *github.Response, error)
	ListCommits(ctx context.Context, owner, repo string, opts *github.CommitsListOptions) ([]*github.RepositoryCommit, *github.Response, error)
}

type IssuesService interface {
	ListByRepo(ctx context.Context, owner, repo string, opts *github.IssueListByRepoOptions) ([]*github.Issue, *github.Response, error)
	Get(ctx context.Context, owner, repo string, number int) (*github.Issue, *github.Response, error)
	ListComments(ctx context.Context, owner, repo string, number int, opts *github.IssueListCommentsOptions) ([]*github.IssueComment, *github.Response, error)
}

type PullRequestsService interface {
	List(ctx context.Context, owner, repo string, opts *github.PullRequestListOptions) ([]*github.PullRequest, *github.Response, error)
}

// GitHubClient implementa el fetcher contra la API REST de GitHub. Hace un
// GET por turno según el intent y normaliza la respuesta; devuelve la
// página completa o un error, nunca resultados parciales.
type GitHubClient struct {
	repoService RepositoriesService
	issues      IssuesService
	prs         PullRequestsService
}

func NewGitHubClient(token string) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &GitHubClient{
		repoService: client.Repositories,
		issues:      client.Issues,
		prs:         client.PullRequests,
	}
}

func NewGitHubClientWithServices(
	repoService RepositoriesService,
	issues IssuesService,
	prs PullRequestsService,
) *GitHubClient {
	return &GitHubClient{
		repoService: repoService,
		issues:      issues,
		prs:         prs,
	}
}

func (ghc *GitHubClient) Fetch(ctx context.Context, repo models.RepoReference, intent models.QueryIntent) ([]models.FetchedRecord, error) {
	switch intent.Action {
	case models.IntentFiles:
		return ghc.fetchRootFiles(ctx, repo)
	case models.IntentIssues:
		return ghc.fetchIssues(ctx, repo, intent.Limit)
	case models.IntentIssueDetail:
		return ghc.fetchIssueDetail(ctx, repo, intent.IssueNumber)
	case models.IntentPullRequests:
		return ghc.fetchPullRequests(ctx, repo, intent.Limit)
	case models.IntentCommits:
		return ghc.fetchCommits(ctx, repo, intent.Limit)
	default:
		return ghc.fetchSummary(ctx, repo)
	}
}

func (ghc *GitHubClient) fetchSummary(ctx context.Context, repo models.RepoReference) ([]models.FetchedRecord, error) {
	repository, resp, err := ghc.repoService.Get(ctx, repo.Owner, repo.Name)
	if err != nil {
		return nil, ghc.mapError(repo, resp, err)
	}

	return []models.FetchedRecord{{
		Kind:        models.RecordRepo,
		Title:       repository.GetFullName(),
		Description: repository.GetDescription(),
		Language:    repository.GetLanguage(),
		Stars:       repository.GetStargazersCount(),
		Forks:       repository.GetForksCount(),
		OpenIssues:  repository.GetOpenIssuesCount(),
		URL:         repository.GetHTMLURL(),
		CreatedAt:   timestampPtr(repository.GetCreatedAt()),
	}}, nil
}

func (ghc *GitHubClient) fetchRootFiles(ctx context.Context, repo models.RepoReference) ([]models.FetchedRecord, error) {
	_, entries, resp, err := ghc.repoService.GetContents(ctx, repo.Owner, repo.Name, "", nil)
	if err != nil {
		return nil, ghc.mapError(repo, resp, err)
	}

	records := make([]models.FetchedRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, models.FetchedRecord{
			Kind: models.RecordFile,
			Path: entry.GetPath(),
			Type: entry.GetType(),
			Size: entry.GetSize(),
			URL:  entry.GetHTMLURL(),
		})
	}
	return records, nil
}

func (ghc *GitHubClient) fetchIssues(ctx context.Context, repo models.RepoReference, limit int) ([]models.FetchedRecord, error) {
	opts := &github.IssueListByRepoOptions{
		State:       "all",
		ListOptions: github.ListOptions{PerPage: pageSize(limit)},
	}

	issues, resp, err := ghc.issues.ListByRepo(ctx, repo.Owner, repo.Name, opts)
	if err != nil {
		return nil, ghc.mapError(repo, resp, err)
	}

	records := make([]models.FetchedRecord, 0, len(issues))
	for _, issue := range issues {
		// El endpoint de issues también devuelve PRs; acá solo interesan issues
		if issue.PullRequestLinks != nil {
			continue
		}
		records = append(records, models.FetchedRecord{
			Kind:      models.RecordIssue,
			Number:    issue.GetNumber(),
			Title:     issue.GetTitle(),
			State:     issue.GetState(),
			Author:    issue.GetUser().GetLogin(),
			Assignee:  issue.GetAssignee().GetLogin(),
			Labels:    labelNames(issue.Labels),
			URL:       issue.GetHTMLURL(),
			CreatedAt: timestampPtr(issue.GetCreatedAt()),
			ClosedAt:  timestampPtr(issue.GetClosedAt()),
		})
	}
	return records, nil
}

func (ghc *GitHubClient) fetchIssueDetail(ctx context.Context, repo models.RepoReference, number int) ([]models.FetchedRecord, error) {
	issue, resp, err := ghc.issues.Get(ctx, repo.Owner, repo.Name, number)
	if err != nil {
		return nil, ghc.mapError(repo, resp, err)
	}

	record := models.FetchedRecord{
		Kind:        models.RecordIssue,
		Number:      issue.GetNumber(),
		Title:       issue.GetTitle(),
		State:       issue.GetState(),
		Author:      issue.GetUser().GetLogin(),
		Assignee:    issue.GetAssignee().GetLogin(),
		Description: issue.GetBody(),
		Labels:      labelNames(issue.Labels),
		URL:         issue.GetHTMLURL(),
		CreatedAt:   timestampPtr(issue.GetCreatedAt()),
		ClosedAt:    timestampPtr(issue.GetClosedAt()),
	}

	comments, resp, err := ghc.issues.ListComments(ctx, repo.Owner, repo.Name, number, &github.IssueListCommentsOptions{})
	if err != nil {
		return nil, ghc.mapError(repo, resp, err)
	}
	for _, comment := range comments {
		record.Comments = append(record.Comments, comment.GetBody())
	}

	return []models.FetchedRecord{record}, nil
}

func (ghc *GitHubClient) fetchPullRequests(ctx context.Context, repo models.RepoReference, limit int) ([]models.FetchedRecord, error) {
	opts := &github.PullRequestListOptions{
		State:       "all",
		ListOptions: github.ListOptions{PerPage: pageSize(limit)},
	}

	prs, resp, err := ghc.prs.List(ctx, repo.Owner, repo.Name, opts)
	if err != nil {
		return nil, ghc.mapError(repo, resp, err)
	}

	records := make([]models.FetchedRecord, 0, len(prs))
	for _, pr := range prs {
		records = append(records, models.FetchedRecord{
			Kind:      models.RecordPullRequest,
			Number:    pr.GetNumber(),
			Title:     pr.GetTitle(),
			State:     pr.GetState(),
			Author:    pr.GetUser().GetLogin(),
			Labels:    labelNames(pr.Labels),
			Merged:    pr.MergedAt != nil,
			URL:       pr.GetHTMLURL(),
			CreatedAt: timestampPtr(pr.GetCreatedAt()),
			ClosedAt:  timestampPtr(pr.GetClosedAt()),
		})
	}
	return records, nil
}

func (ghc *GitHubClient) fetchCommits(ctx context.Context, repo models.RepoReference, limit int) ([]models.FetchedRecord, error) {
	opts := &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: pageSize(limit)},
	}

	commits, resp, err := ghc.repoService.ListCommits(ctx, repo.Owner, repo.Name, opts)
	if err != nil {
		return nil, ghc.mapError(repo, resp, err)
	}

	records := make([]models.FetchedRecord, 0, len(commits))
	for _, commit := range commits {
		records = append(records, models.FetchedRecord{
			Kind:        models.RecordCommit,
			SHA:         commit.GetSHA(),
			Message:     commit.GetCommit().GetMessage(),
			Author:      commit.GetCommit().GetAuthor().GetName(),
			AuthorEmail: commit.GetCommit().GetAuthor().GetEmail(),
			URL:         commit.GetHTMLURL(),
			CreatedAt:   timestampPtr(commit.GetCommit().GetAuthor().GetDate()),
		})
	}
	return records, nil
}

// mapError traduce la respuesta de GitHub a la taxonomía de errores del
// dominio: 404 → repo no encontrado, 401 → token inválido, rate limit →
// RateLimitedError. No se reintenta nada.
func (ghc *GitHubClient) mapError(repo models.RepoReference, resp *github.Response, err error) error {
	var rateLimitErr *github.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return domainErrors.NewRateLimitedError(err)
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return domainErrors.NewRateLimitedError(err)
	}

	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return domainErrors.NewRepoNotFoundError(repo.String())
		case http.StatusUnauthorized, http.StatusForbidden:
			return domainErrors.NewAuthError(repo.String(), err)
		}
	}

	return err
}

func pageSize(limit int) int {
	if limit <= 0 {
		return 30
	}
	if limit > 100 {
		return 100
	}
	return limit
}

func labelNames(labels []*github.Label) []string {
	if len(labels) == 0 {
		return nil
	}
	names := make([]string, 0, len(labels))
	for _, label := range labels {
		names = append(names, label.GetName())
	}
	return names
}

func timestampPtr(ts github.Timestamp) *time.Time {
	if ts.IsZero() {
		return nil
	}
	t := ts.Time
	return &t
}
