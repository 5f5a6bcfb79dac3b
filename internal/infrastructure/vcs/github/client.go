package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Tomas-vilte/MateNotes/internal/domain/models"
	"github.com/Tomas-vilte/MateNotes/internal/domain/ports"
	domainErrors "github.com/Tomas-vilte/MateNotes/internal/errors"
	"github.com/Tomas-vilte/MateNotes/internal/i18n"
	"github.com/Tomas-vilte/MateNotes/internal/logger"
	"github.com/Tomas-vilte/MateNotes/internal/regex"
	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

var _ ports.VCSClient = (*GitHubClient)(nil)

type PullRequestsService interface {
	Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error)
	ListPullRequestsWithCommit(ctx context.Context, owner, repo, sha string, opts *github.ListOptions) ([]*github.PullRequest, *github.Response, error)
}

type RepositoriesService interface {
	GetCommit(ctx context.Context, owner, repo, sha string, opts *github.ListOptions) (*github.RepositoryCommit, *github.Response, error)
}

type SearchService interface {
	Issues(ctx context.Context, query string, opts *github.SearchOptions) (*github.IssuesSearchResult, *github.Response, error)
}

// Titles containing any of these are treated as bundling "release" PRs
// instead of the PR that originally introduced the commit.
var releaseKeywords = []string{"release", "changeset", "version bump", "bump version"}

type GitHubClient struct {
	prService     PullRequestsService
	repoService   RepositoriesService
	searchService SearchService
	owner         string
	repo          string
	trans         *i18n.Translations
	progress      ports.ProgressFunc

	// injectable for rate-limit tests
	sleep func(d time.Duration)
	now   func() time.Time
}

func NewGitHubClient(owner, repo, token string, trans *i18n.Translations, progress ports.ProgressFunc) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &GitHubClient{
		prService:     client.PullRequests,
		repoService:   client.Repositories,
		searchService: client.Search,
		owner:         owner,
		repo:          repo,
		trans:         trans,
		progress:      progress,
		sleep:         time.Sleep,
		now:           time.Now,
	}
}

func NewGitHubClientWithServices(
	prService PullRequestsService,
	repoService RepositoriesService,
	searchService SearchService,
	owner string,
	repo string,
	trans *i18n.Translations,
	progress ports.ProgressFunc,
) *GitHubClient {
	return &GitHubClient{
		prService:     prService,
		repoService:   repoService,
		searchService: searchService,
		owner:         owner,
		repo:          repo,
		trans:         trans,
		progress:      progress,
		sleep:         time.Sleep,
		now:           time.Now,
	}
}

// ResolveCommit finds the pull request that originally introduced the
// commit. Strategies run in order, stopping at the first hit:
//  1. a #N reference inside the commit message
//  2. the issue search API, oldest PR first, skipping release PRs
//  3. the commits/{sha}/pulls association endpoint
//
// When every strategy misses, the commit identities are still returned
// with a nil PullRequest.
func (ghc *GitHubClient) ResolveCommit(ctx context.Context, sha string) (*models.CommitResolution, error) {
	commit, resp, err := ghc.getCommit(ctx, sha)
	if err != nil {
		if resp != nil && resp.Response != nil && resp.StatusCode == http.StatusNotFound {
			return nil, domainErrors.ErrCommitNotFound
		}
		return nil, domainErrors.ErrPRLookupFailed.WithError(err)
	}

	message := commit.GetCommit().GetMessage()
	info := models.CommitInfo{
		SHA:       sha,
		Author:    commitAuthorIdentity(commit),
		CoAuthors: ParseCoAuthors(message),
	}

	if pr := ghc.prFromMessageReference(ctx, sha, message); pr != nil {
		return &models.CommitResolution{Commit: info, PullRequest: pr}, nil
	}
	if pr := ghc.prFromSearch(ctx, sha); pr != nil {
		return &models.CommitResolution{Commit: info, PullRequest: pr}, nil
	}
	if pr := ghc.prFromCommitAssociation(ctx, sha); pr != nil {
		return &models.CommitResolution{Commit: info, PullRequest: pr}, nil
	}

	return &models.CommitResolution{Commit: info}, nil
}

// prFromMessageReference follows a "#N" token in the commit message,
// the cheapest signal of the original PR.
func (ghc *GitHubClient) prFromMessageReference(ctx context.Context, sha, message string) *models.PullRequestInfo {
	match := regex.PRReference.FindStringSubmatch(message)
	if match == nil {
		return nil
	}

	number, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}

	pr, _, err := ghc.getPullRequest(ctx, number)
	if err != nil {
		logger.Warn(ctx, "referenced PR could not be fetched", "sha", sha, "pr", number, "error", err)
		return nil
	}
	return pullRequestInfo(pr)
}

// prFromSearch queries the search API for PRs mentioning the hash,
// oldest first, and skips bundling release PRs.
func (ghc *GitHubClient) prFromSearch(ctx context.Context, sha string) *models.PullRequestInfo {
	query := fmt.Sprintf("repo:%s/%s type:pr %s", ghc.owner, ghc.repo, sha)
	opts := &github.SearchOptions{
		Sort:        "created",
		Order:       "asc",
		ListOptions: github.ListOptions{PerPage: 30},
	}

	result, _, err := ghc.searchIssues(ctx, query, opts)
	if err != nil {
		logger.Warn(ctx, "PR search failed", "sha", sha, "error", err)
		return nil
	}

	for _, issue := range result.Issues {
		if IsReleaseTitle(issue.GetTitle()) {
			continue
		}

		pr, _, err := ghc.getPullRequest(ctx, issue.GetNumber())
		if err != nil {
			logger.Warn(ctx, "searched PR could not be fetched", "sha", sha, "pr", issue.GetNumber(), "error", err)
			return nil
		}
		return pullRequestInfo(pr)
	}
	return nil
}

// prFromCommitAssociation is the last resort: the provider's own
// commit→PR association. If every candidate looks like a release PR the
// first one is accepted anyway, with a diagnostic.
func (ghc *GitHubClient) prFromCommitAssociation(ctx context.Context, sha string) *models.PullRequestInfo {
	pulls, _, err := ghc.listPullRequestsWithCommit(ctx, sha)
	if err != nil {
		logger.Warn(ctx, "commit association lookup failed", "sha", sha, "error", err)
		return nil
	}
	if len(pulls) == 0 {
		return nil
	}

	for _, pr := range pulls {
		if !IsReleaseTitle(pr.GetTitle()) {
			return pullRequestInfo(pr)
		}
	}

	forced := pulls[0]
	ghc.report(ghc.trans.GetMessage("notes.forced_release_pr", 0, map[string]interface{}{
		"Hash":   sha,
		"Number": forced.GetNumber(),
	}))
	return pullRequestInfo(forced)
}

// Low-level calls. Each one retries after a rate-limit wait; anything
// else is returned as-is.

func (ghc *GitHubClient) getCommit(ctx context.Context, sha string) (*github.RepositoryCommit, *github.Response, error) {
	for {
		commit, resp, err := ghc.repoService.GetCommit(ctx, ghc.owner, ghc.repo, sha, nil)
		if ghc.waitedForRateLimit(err) {
			continue
		}
		return commit, resp, err
	}
}

func (ghc *GitHubClient) getPullRequest(ctx context.Context, number int) (*github.PullRequest, *github.Response, error) {
	for {
		pr, resp, err := ghc.prService.Get(ctx, ghc.owner, ghc.repo, number)
		if ghc.waitedForRateLimit(err) {
			continue
		}
		return pr, resp, err
	}
}

func (ghc *GitHubClient) searchIssues(ctx context.Context, query string, opts *github.SearchOptions) (*github.IssuesSearchResult, *github.Response, error) {
	for {
		result, resp, err := ghc.searchService.Issues(ctx, query, opts)
		if ghc.waitedForRateLimit(err) {
			continue
		}
		return result, resp, err
	}
}

func (ghc *GitHubClient) listPullRequestsWithCommit(ctx context.Context, sha string) ([]*github.PullRequest, *github.Response, error) {
	for {
		pulls, resp, err := ghc.prService.ListPullRequestsWithCommit(ctx, ghc.owner, ghc.repo, sha, &github.ListOptions{PerPage: 30})
		if ghc.waitedForRateLimit(err) {
			continue
		}
		return pulls, resp, err
	}
}

// waitedForRateLimit sleeps until the limit resets when err signals a
// rate limit. The wait is clamped to non-negative; there is no retry
// cap, the provider decides when we may continue.
func (ghc *GitHubClient) waitedForRateLimit(err error) bool {
	if err == nil {
		return false
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		ghc.waitFor(rateErr.Rate.Reset.Time.Sub(ghc.now()))
		return true
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		ghc.waitFor(abuseErr.GetRetryAfter())
		return true
	}

	return false
}

func (ghc *GitHubClient) waitFor(wait time.Duration) {
	if wait < 0 {
		wait = 0
	}
	ghc.report(ghc.trans.GetMessage("notes.rate_limit_wait", 0, map[string]interface{}{
		"Seconds": int(wait.Seconds()),
	}))
	ghc.sleep(wait)
}

func (ghc *GitHubClient) report(msg string) {
	if ghc.progress != nil {
		ghc.progress(msg)
	}
}

// IsReleaseTitle reports whether a PR title looks like a bundling
// release PR rather than an original change.
func IsReleaseTitle(title string) bool {
	lowered := strings.ToLower(title)
	for _, keyword := range releaseKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

func pullRequestInfo(pr *github.PullRequest) *models.PullRequestInfo {
	return &models.PullRequestInfo{
		Number: pr.GetNumber(),
		Author: loginIdentity(pr.GetUser().GetLogin()),
		Body:   pr.GetBody(),
	}
}

func commitAuthorIdentity(commit *github.RepositoryCommit) string {
	if login := commit.GetAuthor().GetLogin(); login != "" {
		return loginIdentity(login)
	}
	return commit.GetCommit().GetAuthor().GetName()
}

func loginIdentity(login string) string {
	if login == "" {
		return ""
	}
	return "@" + login
}
