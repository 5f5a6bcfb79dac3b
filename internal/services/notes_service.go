package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateNotes/internal/domain/models"
	"github.com/Tomas-vilte/MateNotes/internal/domain/ports"
	domainErrors "github.com/Tomas-vilte/MateNotes/internal/errors"
	"github.com/Tomas-vilte/MateNotes/internal/i18n"
	"github.com/Tomas-vilte/MateNotes/internal/logger"
	"github.com/Tomas-vilte/MateNotes/internal/regex"
)

const noDescriptionPlaceholder = "No pull request description found."

// NotesService turns a changeset into release notes: it extracts commit
// hashes, resolves each one through the VCS client and renders the
// report after the original text. Processing is strictly sequential, in
// document order.
type NotesService struct {
	vcs      ports.VCSClient
	trans    *i18n.Translations
	progress ports.ProgressFunc
}

func NewNotesService(vcs ports.VCSClient, trans *i18n.Translations, progress ports.ProgressFunc) *NotesService {
	return &NotesService{
		vcs:      vcs,
		trans:    trans,
		progress: progress,
	}
}

// ExtractCommitHashes returns the commit hashes found in the changeset,
// in document order. One hash per line at most; lines without a
// hex-token-plus-colon pattern contribute nothing.
func ExtractCommitHashes(changeset string) []string {
	var hashes []string
	for _, line := range strings.Split(changeset, "\n") {
		if match := regex.CommitHashLine.FindStringSubmatch(line); match != nil {
			hashes = append(hashes, match[1])
		}
	}
	return hashes
}

// GenerateReleaseNotes renders the full report: the original changeset
// text, a blank-line separator, then one entry per commit hash.
// Per-commit failures are reported and do not stop the run.
func (s *NotesService) GenerateReleaseNotes(ctx context.Context, changeset string) string {
	var notes strings.Builder
	notes.WriteString(changeset)
	notes.WriteString("\n\n")

	for _, sha := range ExtractCommitHashes(changeset) {
		s.report(s.trans.GetMessage("notes.processing_commit", 0, map[string]interface{}{
			"Hash": sha,
		}))

		entry := s.resolveEntry(ctx, sha)
		notes.WriteString(renderEntry(entry))
	}

	return notes.String()
}

func (s *NotesService) resolveEntry(ctx context.Context, sha string) models.ReleaseNoteEntry {
	res, err := s.vcs.ResolveCommit(ctx, sha)
	if err != nil {
		if errors.Is(err, domainErrors.ErrCommitNotFound) {
			s.report(s.trans.GetMessage("notes.commit_not_found", 0, map[string]interface{}{
				"Hash": sha,
			}))
		} else {
			s.report(s.trans.GetMessage("notes.api_error", 0, map[string]interface{}{
				"Hash":  sha,
				"Error": err.Error(),
			}))
		}
		logger.Warn(ctx, "commit resolution failed", "sha", sha, "error", err)
		return models.ReleaseNoteEntry{SHA: sha, Failed: true}
	}

	entry := models.ReleaseNoteEntry{
		SHA:          sha,
		Contributors: contributors(res),
	}
	if res.PullRequest != nil {
		entry.PRNumber = res.PullRequest.Number
		entry.Body = strings.TrimSpace(res.PullRequest.Body)
	}
	return entry
}

// contributors assembles the ordered, duplicate-free identity list:
// commit author, PR author if literally distinct, then co-authors.
// Dedup is by literal string equality only.
func contributors(res *models.CommitResolution) []string {
	var list []string
	seen := make(map[string]struct{})

	add := func(identity string) {
		if identity == "" {
			return
		}
		if _, ok := seen[identity]; ok {
			return
		}
		seen[identity] = struct{}{}
		list = append(list, identity)
	}

	add(res.Commit.Author)
	if res.PullRequest != nil {
		add(res.PullRequest.Author)
	}
	for _, coAuthor := range res.Commit.CoAuthors {
		add(coAuthor)
	}

	return list
}

func renderEntry(entry models.ReleaseNoteEntry) string {
	if entry.Failed {
		return fmt.Sprintf("Commit %s: could not retrieve information.\n\n", entry.SHA)
	}

	var b strings.Builder
	if entry.PRNumber != 0 {
		fmt.Fprintf(&b, "Commit %s (PR #%d):\n", entry.SHA, entry.PRNumber)
	} else {
		fmt.Fprintf(&b, "Commit %s:\n", entry.SHA)
	}

	fmt.Fprintf(&b, "Contributors: %s\n", strings.Join(entry.Contributors, ", "))

	if entry.Body != "" {
		b.WriteString(entry.Body)
	} else {
		b.WriteString(noDescriptionPlaceholder)
	}
	b.WriteString("\n\n")

	return b.String()
}

func (s *NotesService) report(msg string) {
	if s.progress != nil {
		s.progress(msg)
	}
}
