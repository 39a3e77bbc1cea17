// Package upstream infers the (remote, branch) pair a ref should be uploaded
// against, following configured upstreams and recursing through containing
// branches when the ref is not itself a configured branch.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/mwaldron/gerritup/internal/git"
)

// ErrNotReachable reports that a ref is not contained in any local branch
// with a usable upstream.
var ErrNotReachable = errors.New("not reachable from any branch")

// NoUpstreamError reports a branch whose upstream configuration exists but
// is incomplete.
type NoUpstreamError struct {
	Branch string
}

func (e *NoUpstreamError) Error() string {
	return fmt.Sprintf("no upstream configured for branch %q", e.Branch)
}

// AmbiguousError reports that recursion found more than one distinct
// upstream for a ref. Candidates are sorted by remote, then branch.
type AmbiguousError struct {
	Ref        string
	Candidates []git.Upstream
}

func (e *AmbiguousError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ambiguous upstream for %q, candidates:", e.Ref)
	for _, c := range e.Candidates {
		fmt.Fprintf(&b, "\n\t%s %s", c.Remote, c.Branch)
	}
	return b.String()
}

// Resolver resolves refs to their upload target.
type Resolver struct {
	Client git.Client
	// IgnoreBranches holds glob patterns for branch names that never count
	// as containment candidates (throwaway or mirror branches).
	IgnoreBranches []string
}

// Resolve returns the single unambiguous upstream for ref, which may be a
// branch name or any commit expression.
func (r *Resolver) Resolve(ctx context.Context, ref string) (git.Upstream, error) {
	return r.resolve(ctx, ref, map[string]bool{})
}

func (r *Resolver) resolve(ctx context.Context, ref string, seen map[string]bool) (git.Upstream, error) {
	// Upstream configuration is keyed by bare branch name.
	name := strings.TrimPrefix(ref, git.LocalBranchPrefix)

	cfg, err := r.Client.BranchUpstream(ctx, name)
	if err != nil {
		return git.Upstream{}, err
	}
	if cfg.Remote != "" && cfg.Merge != "" {
		return git.Upstream{Remote: cfg.Remote, Branch: cfg.Merge}, nil
	}
	if cfg.Remote != "" || cfg.Merge != "" {
		// The branch is configured but half-broken. Recursing into
		// containing branches here would silently guess past a config
		// the user almost certainly meant to be authoritative.
		return git.Upstream{}, &NoUpstreamError{Branch: name}
	}

	// Not a configured branch: a commit id, or a branch nobody set an
	// upstream for. Delegate to the branches containing it.
	candidates, err := r.Client.ContainingBranches(ctx, ref)
	if err != nil {
		return git.Upstream{}, err
	}
	var next []string
	for _, c := range candidates {
		if seen[c] || r.ignored(c) {
			continue
		}
		next = append(next, c)
	}
	// Mark every candidate at this level before descending, so sibling
	// recursions do not re-traverse each other and containment cycles
	// terminate.
	for _, c := range next {
		seen[c] = true
	}

	found := make(map[git.Upstream]bool)
	var lastErr error
	for _, c := range next {
		u, err := r.resolve(ctx, c, seen)
		if err != nil {
			lastErr = err
			continue
		}
		found[u] = true
	}

	if len(found) == 0 {
		if lastErr != nil {
			return git.Upstream{}, lastErr
		}
		return git.Upstream{}, fmt.Errorf("%q: %w", ref, ErrNotReachable)
	}
	all := make([]git.Upstream, 0, len(found))
	for u := range found {
		all = append(all, u)
	}
	if len(all) == 1 {
		return all[0], nil
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Remote != all[j].Remote {
			return all[i].Remote < all[j].Remote
		}
		return all[i].Branch < all[j].Branch
	})
	return git.Upstream{}, &AmbiguousError{Ref: ref, Candidates: all}
}

func (r *Resolver) ignored(branch string) bool {
	for _, pattern := range r.IgnoreBranches {
		if ok, err := doublestar.Match(pattern, branch); err == nil && ok {
			return true
		}
	}
	return false
}
