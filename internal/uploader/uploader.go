// Package uploader drives an upload: resolve the upstream, validate the
// remote, build the review refspec, push.
package uploader

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mwaldron/gerritup/config"
	"github.com/mwaldron/gerritup/internal/git"
	"github.com/mwaldron/gerritup/internal/refspec"
	"github.com/mwaldron/gerritup/internal/upstream"
)

// Uploader pushes a commit to the review server inferred from its upstream.
type Uploader struct {
	Client   git.Client
	Resolver *upstream.Resolver

	// URLPrefixes are the remote URL schemes accepted as review servers.
	URLPrefixes []string
	// DefaultDomain completes bare reviewer names.
	DefaultDomain string

	// Stdout receives the progress line. Defaults to os.Stdout.
	Stdout io.Writer
}

// New wires an Uploader from a git client and loaded configuration.
func New(client git.Client, cfg *config.Config) *Uploader {
	return &Uploader{
		Client: client,
		Resolver: &upstream.Resolver{
			Client:         client,
			IgnoreBranches: cfg.Refs.IgnoreBranches,
		},
		URLPrefixes:   cfg.Review.URLPrefixes,
		DefaultDomain: cfg.Review.DefaultDomain,
	}
}

// Run uploads commit for review, annotated with the given reviewer tokens.
// All failures are fatal to the upload; a push failure carries the git exit
// code, recoverable via git.ExitStatus.
func (u *Uploader) Run(ctx context.Context, commit string, reviewers []string) error {
	up, err := u.Resolver.Resolve(ctx, commit)
	if err != nil {
		return fmt.Errorf("can't get upstream for %s: %w", commit, err)
	}

	// Refuse to push to anything that does not look like the review
	// server. A plain mirror remote would accept the refspec and quietly
	// create a literal "refs/for/..." ref.
	url, err := u.Client.RemoteURL(ctx, up.Remote)
	if err != nil {
		return err
	}
	if !u.reviewRemote(url) {
		return fmt.Errorf("remote %q (%s) does not look like a review server (want URL prefix %s)",
			up.Remote, url, strings.Join(u.URLPrefixes, " or "))
	}

	emails, err := refspec.ExpandReviewers(reviewers, u.DefaultDomain)
	if err != nil {
		return err
	}

	destination, err := refspec.Destination(up.Branch)
	if err != nil {
		return err
	}
	spec := refspec.Format(commit, destination, refspec.Annotation(emails))

	fmt.Fprintf(u.stdout(), "Uploading %s to %s branch %s\n", commit, up.Remote, up.ShortBranch())
	return u.Client.Push(ctx, up.Remote, spec)
}

func (u *Uploader) reviewRemote(url string) bool {
	for _, prefix := range u.URLPrefixes {
		if strings.HasPrefix(url, prefix) {
			return true
		}
	}
	return false
}

func (u *Uploader) stdout() io.Writer {
	if u.Stdout != nil {
		return u.Stdout
	}
	return os.Stdout
}
