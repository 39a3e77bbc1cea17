// Package refspec shapes the push refspec the review server expects:
// <commit>:refs/for/<branch>[%r=email,r=email,...].
package refspec

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mwaldron/gerritup/internal/git"
)

// addressRE matches the reviewer addresses we admit. The domain part is
// optional; bare names get a default domain appended.
var addressRE = regexp.MustCompile(`^([a-zA-Z0-9][-_.a-zA-Z0-9]*)(@[-_.a-zA-Z0-9]+)?$`)

// ExpandReviewers splits possibly comma-joined reviewer tokens into
// individual addresses and appends "@"+defaultDomain to any address without
// a domain part.
func ExpandReviewers(tokens []string, defaultDomain string) ([]string, error) {
	var emails []string
	for _, token := range tokens {
		for _, addr := range strings.Split(token, ",") {
			addr = strings.TrimSpace(addr)
			if addr == "" {
				continue
			}
			m := addressRE.FindStringSubmatch(addr)
			if m == nil {
				return nil, fmt.Errorf("invalid reviewer address %q", addr)
			}
			if m[2] == "" {
				addr += "@" + defaultDomain
			}
			emails = append(emails, addr)
		}
	}
	return emails, nil
}

// Annotation renders the reviewer clause appended to the destination ref,
// e.g. "%r=a@x.com,r=b@y.com". It returns "" when no reviewers are given.
func Annotation(emails []string) string {
	if len(emails) == 0 {
		return ""
	}
	var b strings.Builder
	for i, email := range emails {
		if i == 0 {
			b.WriteString("%r=")
		} else {
			b.WriteString(",r=")
		}
		b.WriteString(email)
	}
	return b.String()
}

// Destination rewrites a resolved upstream branch into the review-request
// namespace: refs/heads/main becomes refs/for/main. An upstream outside
// refs/heads/ indicates a resolver bug, not user error.
func Destination(upstreamBranch string) (string, error) {
	if !strings.HasPrefix(upstreamBranch, git.LocalBranchPrefix) {
		return "", fmt.Errorf("internal error: upstream %q does not start with %s",
			upstreamBranch, git.LocalBranchPrefix)
	}
	return git.ReviewRefPrefix + strings.TrimPrefix(upstreamBranch, git.LocalBranchPrefix), nil
}

// Format assembles the final push refspec.
func Format(commit, destination, annotation string) string {
	return commit + ":" + destination + annotation
}
