package services

import (
	"context"
	"strings"
	"testing"

	"github.com/Tomas-vilte/MateNotes/internal/domain/models"
	domainErrors "github.com/Tomas-vilte/MateNotes/internal/errors"
	"github.com/Tomas-vilte/MateNotes/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, vcs *MockVCSClient) *NotesService {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "../../locales")
	require.NoError(t, err)
	return NewNotesService(vcs, trans, nil)
}

func TestExtractCommitHashes(t *testing.T) {
	t.Run("should extract hashes in document order", func(t *testing.T) {
		changeset := "## 3.21.0\n" +
			"- abc1234: Fix crash on empty cart\n" +
			"plain prose line\n" +
			"- 9f8e7d6c5b4a: Add product filters\n"

		hashes := ExtractCommitHashes(changeset)

		assert.Equal(t, []string{"abc1234", "9f8e7d6c5b4a"}, hashes)
	})

	t.Run("should take the first match per line", func(t *testing.T) {
		hashes := ExtractCommitHashes("abc1234: then fedcba9: second")
		assert.Equal(t, []string{"abc1234"}, hashes)
	})

	t.Run("should ignore tokens without a colon or too short", func(t *testing.T) {
		changeset := "abc1234 no colon here\n" +
			"abc12: too short\n" +
			"GHIJKLM: not hex\n"

		assert.Empty(t, ExtractCommitHashes(changeset))
	})
}

func TestGenerateReleaseNotes(t *testing.T) {
	t.Run("should echo the changeset and append a full entry", func(t *testing.T) {
		mockVCS := &MockVCSClient{}
		service := newTestService(t, mockVCS)

		mockVCS.On("ResolveCommit", mock.Anything, "abc1234").
			Return(&models.CommitResolution{
				Commit: models.CommitInfo{SHA: "abc1234", Author: "@alice"},
				PullRequest: &models.PullRequestInfo{
					Number: 42,
					Author: "@bob",
					Body:   "Fixes bug X",
				},
			}, nil)

		changeset := "- abc1234: Fix crash on empty cart\nno hash on this line"
		notes := service.GenerateReleaseNotes(context.Background(), changeset)

		assert.True(t, strings.HasPrefix(notes, changeset+"\n\n"))
		assert.Contains(t, notes, "no hash on this line")
		assert.Contains(t, notes, "Commit abc1234 (PR #42):\n")
		assert.Contains(t, notes, "Contributors: @alice, @bob\n")
		assert.Contains(t, notes, "Fixes bug X")
		mockVCS.AssertNumberOfCalls(t, "ResolveCommit", 1)
	})

	t.Run("should not resolve anything for a changeset without hashes", func(t *testing.T) {
		mockVCS := &MockVCSClient{}
		service := newTestService(t, mockVCS)

		changeset := "## 3.21.0\njust prose, no commits"
		notes := service.GenerateReleaseNotes(context.Background(), changeset)

		assert.Equal(t, changeset+"\n\n", notes)
		mockVCS.AssertNotCalled(t, "ResolveCommit", mock.Anything, mock.Anything)
	})

	t.Run("should use the placeholder when the PR has no body", func(t *testing.T) {
		mockVCS := &MockVCSClient{}
		service := newTestService(t, mockVCS)

		mockVCS.On("ResolveCommit", mock.Anything, "abc1234").
			Return(&models.CommitResolution{
				Commit: models.CommitInfo{SHA: "abc1234", Author: "@alice"},
			}, nil)

		notes := service.GenerateReleaseNotes(context.Background(), "abc1234: fix")

		assert.Contains(t, notes, "Commit abc1234:\n")
		assert.Contains(t, notes, "No pull request description found.")
		assert.NotContains(t, notes, "(PR #")
	})

	t.Run("should emit a failure line when resolution errors", func(t *testing.T) {
		mockVCS := &MockVCSClient{}
		service := newTestService(t, mockVCS)

		mockVCS.On("ResolveCommit", mock.Anything, "deadbeef").
			Return(nil, domainErrors.ErrCommitNotFound)

		notes := service.GenerateReleaseNotes(context.Background(), "deadbeef: removed feature")

		assert.Contains(t, notes, "Commit deadbeef: could not retrieve information.\n")
	})

	t.Run("should continue with remaining commits after a failure", func(t *testing.T) {
		mockVCS := &MockVCSClient{}
		service := newTestService(t, mockVCS)

		mockVCS.On("ResolveCommit", mock.Anything, "deadbeef").
			Return(nil, domainErrors.ErrPRLookupFailed)
		mockVCS.On("ResolveCommit", mock.Anything, "abc1234").
			Return(&models.CommitResolution{
				Commit: models.CommitInfo{SHA: "abc1234", Author: "@alice"},
				PullRequest: &models.PullRequestInfo{
					Number: 7,
					Author: "@alice",
					Body:   "Adds filters",
				},
			}, nil)

		changeset := "deadbeef: removed feature\nabc1234: add filters"
		notes := service.GenerateReleaseNotes(context.Background(), changeset)

		assert.Contains(t, notes, "Commit deadbeef: could not retrieve information.")
		assert.Contains(t, notes, "Commit abc1234 (PR #7):")
		mockVCS.AssertNumberOfCalls(t, "ResolveCommit", 2)
	})
}

func TestContributors(t *testing.T) {
	t.Run("should dedup by literal string equality only", func(t *testing.T) {
		res := &models.CommitResolution{
			Commit: models.CommitInfo{
				Author:    "@alice",
				CoAuthors: []string{"@alice", "Alice Smith", "@bob"},
			},
			PullRequest: &models.PullRequestInfo{Author: "@alice"},
		}

		// Two spellings of the same person survive; exact repeats do not.
		assert.Equal(t, []string{"@alice", "Alice Smith", "@bob"}, contributors(res))
	})

	t.Run("should list PR author after commit author when distinct", func(t *testing.T) {
		res := &models.CommitResolution{
			Commit:      models.CommitInfo{Author: "@alice", CoAuthors: []string{"@carol"}},
			PullRequest: &models.PullRequestInfo{Author: "@bob"},
		}

		assert.Equal(t, []string{"@alice", "@bob", "@carol"}, contributors(res))
	})

	t.Run("should skip empty identities", func(t *testing.T) {
		res := &models.CommitResolution{
			Commit: models.CommitInfo{Author: ""},
		}

		assert.Empty(t, contributors(res))
	})
}
