package github

import (
	"strings"

	"github.com/Tomas-vilte/MateNotes/internal/regex"
)

const noReplyDomain = "users.noreply.github.com"

// ParseCoAuthors extracts every Co-authored-by trailer from a commit
// message, in message order. Duplicates are kept; deduplication happens
// at report-assembly time.
func ParseCoAuthors(message string) []string {
	matches := regex.CoAuthorTrailer.FindAllStringSubmatch(message, -1)
	if len(matches) == 0 {
		return nil
	}

	coAuthors := make([]string, 0, len(matches))
	for _, match := range matches {
		coAuthors = append(coAuthors, FormatIdentity(match[1], match[2]))
	}
	return coAuthors
}

// FormatIdentity turns a trailer name/email pair into a display
// identity. A GitHub no-reply email wins over everything: its local
// part carries the real username. A name without spaces or punctuation
// is assumed to already be a username.
func FormatIdentity(name, email string) string {
	if local, ok := strings.CutSuffix(email, "@"+noReplyDomain); ok {
		if match := regex.NoReplyLocalPart.FindStringSubmatch(local); match != nil {
			return "@" + match[1]
		}
	}

	if regex.BareUsername.MatchString(name) {
		return "@" + name
	}
	return name
}
