package models

// CommitInfo describes a commit extracted from the changeset, with the
// identities attributed by the hosting provider.
type CommitInfo struct {
	SHA       string
	Author    string
	CoAuthors []string
}

// PullRequestInfo is the metadata of the pull request that originally
// introduced a commit. Best-effort: a commit may have none.
type PullRequestInfo struct {
	Number int
	Author string
	Body   string
}

// CommitResolution pairs a commit with the pull request the resolver
// found for it, if any.
type CommitResolution struct {
	Commit      CommitInfo
	PullRequest *PullRequestInfo
}

// ReleaseNoteEntry is one rendered block of the final report.
type ReleaseNoteEntry struct {
	SHA          string
	PRNumber     int
	Contributors []string
	Body         string
	Failed       bool
}
