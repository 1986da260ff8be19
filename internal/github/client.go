package github

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// SearchLimit is the number of results a search returns, matching gh's default
const SearchLimit = 30

// APIClient searches through the GitHub REST API
type APIClient struct {
	client *github.Client
}

// NewAPIClient creates a new GitHub client with token authentication
func NewAPIClient(ctx context.Context, token string) *APIClient {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return newAPIClient(github.NewClient(tc))
}

func newAPIClient(client *github.Client) *APIClient {
	return &APIClient{client: client}
}

// Search runs the invocation as a single search request. The API always returns every field,
// so fields is ignored.
func (c *APIClient) Search(ctx context.Context, inv Invocation, _ []string) ([]Issue, error) {
	query := inv.SearchQuery()
	opts := &github.SearchOptions{
		ListOptions: github.ListOptions{
			PerPage: SearchLimit,
		},
	}

	slog.Debug("GitHub API: Searching issues", "query", query)
	result, _, err := c.client.Search.Issues(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search issues: %w", err)
	}

	issues := make([]Issue, 0, len(result.Issues))
	for _, issue := range result.Issues {
		issues = append(issues, convertIssue(issue))
	}

	return issues, nil
}

func convertIssue(issue *github.Issue) Issue {
	converted := Issue{
		Number:     issue.GetNumber(),
		Title:      issue.GetTitle(),
		Body:       issue.GetBody(),
		Author:     User{Login: issue.GetUser().GetLogin()},
		Repository: repositoryFromURL(issue.GetRepositoryURL()),
	}

	for _, label := range issue.Labels {
		converted.Labels = append(converted.Labels, Label{Name: label.GetName()})
	}

	for _, assignee := range issue.Assignees {
		converted.Assignees = append(converted.Assignees, User{Login: assignee.GetLogin()})
	}

	return converted
}

// repositoryFromURL extracts the repository from an API URL such as
// https://api.github.com/repos/w3c/apa
func repositoryFromURL(url string) Repository {
	_, path, found := strings.Cut(url, "/repos/")
	if !found {
		return Repository{}
	}

	owner, name, found := strings.Cut(strings.TrimSuffix(path, "/"), "/")
	if !found || owner == "" || name == "" {
		return Repository{}
	}

	return Repository{Name: name, NameWithOwner: owner + "/" + name}
}
