// Package repo resolves human-typed repository references into a canonical
// owner/repo identifier for the fixed github.com host.
package repo

import (
	"errors"
	"fmt"
	"strings"
)

// Host is the single hosting domain this tool supports. It is also kept as
// an explicit segment of destination paths so that other hosts could share
// one download root.
const Host = "github.com"

var (
	ErrMissingOwnerOrRepo = errors.New("missing owner or repository name")
	ErrEmptySegment       = errors.New("empty owner or repository name")
)

// Identifier is the canonical owner/repo pair, independent of the shape the
// reference was typed in.
type Identifier struct {
	Owner string
	Repo  string
}

func (id Identifier) String() string {
	return id.Owner + "/" + id.Repo
}

// CloneURL returns the SSH URL used for the actual clone.
func (id Identifier) CloneURL() string {
	return fmt.Sprintf("git@%s:%s/%s.git", Host, id.Owner, id.Repo)
}

// Resolve parses any of the accepted reference shapes into an Identifier:
//
//	git@github.com:owner/repo.git
//	https://github.com/owner/repo[/anything/deeper]
//	github.com/owner/repo
//	owner/repo
//
// Everything past the repository name is discarded, including tree/<branch>
// segments; a branch is only ever selected through the --branch flag.
func Resolve(input string) (Identifier, error) {
	normalized := strings.TrimSpace(input)

	if i := strings.Index(normalized, "://"); i >= 0 {
		normalized = normalized[i+len("://"):]
	}
	if rest, ok := strings.CutPrefix(normalized, "git@"); ok {
		normalized = strings.Replace(rest, ":", "/", 1)
	}

	var segments []string
	for _, s := range strings.Split(normalized, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	// Host recognition wins over the two-bare-segments shorthand, so an
	// owner coincidentally named github.com cannot be referenced that way.
	if len(segments) > 0 && segments[0] == Host {
		segments = segments[1:]
	}

	if len(segments) < 2 {
		return Identifier{}, fmt.Errorf("%w: %q", ErrMissingOwnerOrRepo, input)
	}

	owner := segments[0]
	name := strings.TrimSuffix(segments[1], ".git")
	if owner == "" || name == "" {
		return Identifier{}, fmt.Errorf("%w: %q", ErrEmptySegment, input)
	}

	return Identifier{Owner: owner, Repo: name}, nil
}
