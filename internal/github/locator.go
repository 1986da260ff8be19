package github

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidLocator is returned when a string is not of the form owner/repo#N
var ErrInvalidLocator = errors.New("invalid issue locator")

// Locator identifies an issue as owner/repo#N
type Locator struct {
	Owner  string
	Repo   string
	Number int
}

// ParseLocator parses a concise locator such as "w3c/apa#42"
func ParseLocator(s string) (Locator, error) {
	slash := strings.Index(s, "/")
	hash := strings.Index(s, "#")
	if slash < 0 || hash < 0 || hash < slash {
		return Locator{}, fmt.Errorf("%w: %q", ErrInvalidLocator, s)
	}

	owner := s[:slash]
	repo := s[slash+1 : hash]
	if owner == "" || repo == "" {
		return Locator{}, fmt.Errorf("%w: %q", ErrInvalidLocator, s)
	}

	number, err := strconv.Atoi(s[hash+1:])
	if err != nil || number <= 0 {
		return Locator{}, fmt.Errorf("%w: %q", ErrInvalidLocator, s)
	}

	return Locator{Owner: owner, Repo: repo, Number: number}, nil
}

func (l Locator) String() string {
	return fmt.Sprintf("%s/%s#%d", l.Owner, l.Repo, l.Number)
}

// NameWithOwner returns "owner/repo"
func (l Locator) NameWithOwner() string {
	return l.Owner + "/" + l.Repo
}

// URL returns the issue's page on GitHub. GitHub redirects to the pull request page
// when the number belongs to a PR.
func (l Locator) URL() string {
	return fmt.Sprintf("https://github.com/%s/%s/issues/%d", l.Owner, l.Repo, l.Number)
}
