package analyzer

import (
	"errors"
	"regexp"
	"strings"

	"larpscan/types"
)

// ErrInvalidLocator reports a locator matching neither the HTTPS nor
// the SSH repository shape.
var ErrInvalidLocator = errors.New("invalid repository locator")

var (
	httpsLocator = regexp.MustCompile(`github\.com/([^/\s]+)/([^/\s]+)`)
	sshLocator   = regexp.MustCompile(`github\.com:([^/\s]+)/([^/\s]+)\.git`)
)

// ParseLocator extracts the owner and repository name from an HTTPS URL
// or an SSH-style reference. A trailing .git suffix on the name is
// dropped. It never panics; unrecognized input yields ErrInvalidLocator.
func ParseLocator(locator string) (types.RepoRef, error) {
	locator = strings.TrimSpace(locator)

	if m := httpsLocator.FindStringSubmatch(locator); m != nil {
		return types.RepoRef{Owner: m[1], Name: strings.TrimSuffix(m[2], ".git")}, nil
	}
	if m := sshLocator.FindStringSubmatch(locator); m != nil {
		return types.RepoRef{Owner: m[1], Name: m[2]}, nil
	}

	return types.RepoRef{}, ErrInvalidLocator
}
