package regex

import "regexp"

var (
	// Changeset patterns
	CommitHashLine = regexp.MustCompile(`([0-9a-f]{7,40}):`)

	// GitHub linkage patterns
	PRReference = regexp.MustCompile(`#(\d+)`)

	// Commit message trailer patterns
	CoAuthorTrailer = regexp.MustCompile(`(?im)^Co-authored-by:\s*(.*?)\s*<([^>]*)>\s*$`)

	// Identity patterns
	NoReplyLocalPart = regexp.MustCompile(`^(?:\d+\+)?(.+)$`)
	BareUsername     = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
)
