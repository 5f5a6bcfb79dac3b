package ports

import (
	"context"

	"github.com/Tomas-vilte/MateNotes/internal/domain/models"
)

// ProgressFunc receives user-facing progress and diagnostic messages.
type ProgressFunc func(msg string)

// VCSClient resolves a commit hash to its commit and pull request
// metadata on the hosting provider.
type VCSClient interface {
	ResolveCommit(ctx context.Context, sha string) (*models.CommitResolution, error)
}
