package github

import (
	"context"

	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/mock"
)

type (
	MockRepositoriesService struct {
		mock.Mock
	}

	MockIssuesService struct {
		mock.Mock
	}

	MockPullRequestsService struct {
		mock.Mock
	}
)

func (m *MockRepositoriesService) Get(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error) {
	args := m.Called(ctx, owner, repo)
	var repository *github.Repository
	if args.Get(0) != nil {
		repository = args.Get(0).(*github.Repository)
	}
	var resp *github.Response
	if args.Get(1) != nil {
		resp = args.Get(1).(*github.Response)
	}
	return repository, resp, args.Error(2)
}

func (m *MockRepositoriesService) GetContents(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentGetOptions) (*github.RepositoryContent, []*github.RepositoryContent, *github.Response, error) {
	args := m.Called(ctx, owner, repo, path, opts)
	var file *github.RepositoryContent
	if args.Get(0) != nil {
		file = args.Get(0).(*github.RepositoryContent)
	}
	var entries []*github.RepositoryContent
	if args.Get(1) != nil {
		entries = args.Get(1).([]*github.RepositoryContent)
	}
	var resp *github.Response
	if args.Get(2) != nil {
		resp = args.Get(2).(*github.Response)
	}
	return file, entries, resp, args.Error(3)
}

func (m *MockRepositoriesService) ListCommits(ctx context.Context, owner, repo string, opts *github.CommitsListOptions) ([]*github.RepositoryCommit, *github.Response, error) {
	args := m.Called(ctx, owner, repo, opts)
	var commits []*github.RepositoryCommit
	if args.Get(0) != nil {
		commits = args.Get(0).([]*github.RepositoryCommit)
	}
	var resp *github.Response
	if args.Get(1) != nil {
		resp = args.Get(1).(*github.Response)
	}
	return commits, resp, args.Error(2)
}

func (m *MockIssuesService) ListByRepo(ctx context.Context, owner, repo string, opts *github.IssueListByRepoOptions) ([]*github.Issue, *github.Response, error) {
	args := m.Called(ctx, owner, repo, opts)
	var issues []*github.Issue
	if args.Get(0) != nil {
		issues = args.Get(0).([]*github.Issue)
	}
	var resp *github.Response
	if args.Get(1) != nil {
		resp = args.Get(1).(*github.Response)
	}
	return issues, resp, args.Error(2)
}

func (m *MockIssuesService) Get(ctx context.Context, owner, repo string, number int) (*github.Issue, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number)
	var issue *github.Issue
	if args.Get(0) != nil {
		issue = args.Get(0).(*github.Issue)
	}
	var resp *github.Response
	if args.Get(1) != nil {
		resp = args.Get(1).(*github.Response)
	}
	return issue, resp, args.Error(2)
}

func (m *MockIssuesService) ListComments(ctx context.Context, owner, repo string, number int, opts *github.IssueListCommentsOptions) ([]*github.IssueComment, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number, opts)
	var comments []*github.IssueComment
	if args.Get(0) != nil {
		comments = args.Get(0).([]*github.IssueComment)
	}
	var resp *github.Response
	if args.Get(1) != nil {
		resp = args.Get(1).(*github.Response)
	}
	return comments, resp, args.Error(2)
}

func (m *MockPullRequestsService) List(ctx context.Context, owner, repo string, opts *github.PullRequestListOptions) ([]*github.PullRequest, *github.Response, error) {
	args := m.Called(ctx, owner, repo, opts)
	var prs []*github.PullRequest
	if args.Get(0) != nil {
		prs = args.Get(0).([]*github.PullRequest)
	}
	var resp *github.Response
	if args.Get(1) != nil {
		resp = args.Get(1).(*github.Response)
	}
	return prs, resp, args.Error(2)
}
