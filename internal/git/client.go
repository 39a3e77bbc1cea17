package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	gogitcfg "github.com/go-git/go-git/v5/config"
	log "github.com/sirupsen/logrus"
)

// CLIClient talks to a repository through the git command line, with an
// in-process fast path for configuration reads (see client_gogit.go).
type CLIClient struct {
	// Dir is the repository directory passed to git -C.
	Dir string
	// DryRun prints the push command instead of running it.
	DryRun bool
	// Stdout and Stderr receive push output. Defaults: os.Stdout, os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	openOnce sync.Once
	repoCfg  *gogitcfg.Config // nil when the repo could not be opened in-process
}

// NewCLIClient returns a client for the repository at dir.
func NewCLIClient(dir string) *CLIClient {
	return &CLIClient{Dir: dir}
}

// BranchUpstream reads the configured upstream of a local branch.
func (c *CLIClient) BranchUpstream(ctx context.Context, branch string) (BranchConfig, error) {
	if cfg := c.repoConfig(); cfg != nil {
		b, ok := cfg.Branches[branch]
		if !ok {
			return BranchConfig{}, nil
		}
		return BranchConfig{Remote: b.Remote, Merge: string(b.Merge)}, nil
	}

	remote, err := c.configValue(ctx, "branch."+branch+".remote")
	if err != nil {
		return BranchConfig{}, err
	}
	merge, err := c.configValue(ctx, "branch."+branch+".merge")
	if err != nil {
		return BranchConfig{}, err
	}
	return BranchConfig{Remote: remote, Merge: merge}, nil
}

// RemoteURL reads the URL configured for a remote.
func (c *CLIClient) RemoteURL(ctx context.Context, remote string) (string, error) {
	if cfg := c.repoConfig(); cfg != nil {
		r, ok := cfg.Remotes[remote]
		if !ok || len(r.URLs) == 0 {
			return "", nil
		}
		return r.URLs[0], nil
	}
	return c.configValue(ctx, "remote."+remote+".url")
}

// ContainingBranches returns the local branches whose history contains ref.
func (c *CLIClient) ContainingBranches(ctx context.Context, ref string) ([]string, error) {
	out, err := c.output(ctx, "branch", "--contains", ref)
	if err != nil {
		return nil, err
	}
	return ParseBranchLines(out), nil
}

// LocalBranches lists all local branch names.
func (c *CLIClient) LocalBranches(ctx context.Context) ([]string, error) {
	out, err := c.output(ctx, "branch", "--list")
	if err != nil {
		return nil, err
	}
	return ParseBranchLines(out), nil
}

// Push pushes refspec to remote. Output is streamed rather than captured so
// the review server's CL-link message reaches the user as it is printed.
func (c *CLIClient) Push(ctx context.Context, remote, refspec string) error {
	args := c.gitArgs("push", remote, refspec)
	if c.DryRun {
		fmt.Fprintf(c.stdout(), "git %s\n", strings.Join(args, " "))
		return nil
	}
	log.WithField("args", strings.Join(args, " ")).Debug("git")
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = c.stdout()
	cmd.Stderr = c.stderr()
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git push %s %s: %w", remote, refspec, err)
	}
	return nil
}

// configValue reads a single git config key. A missing key yields "", nil:
// git config exits 1 for unset keys and that is not an error here.
func (c *CLIClient) configValue(ctx context.Context, key string) (string, error) {
	args := c.gitArgs("config", key)
	log.WithField("args", strings.Join(args, " ")).Debug("git")
	out, err := exec.CommandContext(ctx, "git", args...).CombinedOutput()
	s := strings.TrimSpace(string(out))
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) && ee.ExitCode() == 1 {
			return "", nil
		}
		return "", fmt.Errorf("git config %s: %w: %s", key, err, s)
	}
	return s, nil
}

// output runs a read-only git command and returns its trimmed combined
// output. It must not be used for commands that modify state.
func (c *CLIClient) output(ctx context.Context, args ...string) (string, error) {
	args = c.gitArgs(args...)
	log.WithField("args", strings.Join(args, " ")).Debug("git")
	out, err := exec.CommandContext(ctx, "git", args...).CombinedOutput()
	s := strings.TrimSpace(string(out))
	log.WithField("output", s).Debug("git result")
	if err != nil {
		return s, fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, s)
	}
	return s, nil
}

func (c *CLIClient) gitArgs(args ...string) []string {
	if c.Dir == "" || c.Dir == "." {
		return args
	}
	return append([]string{"-C", c.Dir}, args...)
}

func (c *CLIClient) stdout() io.Writer {
	if c.Stdout != nil {
		return c.Stdout
	}
	return os.Stdout
}

func (c *CLIClient) stderr() io.Writer {
	if c.Stderr != nil {
		return c.Stderr
	}
	return os.Stderr
}

// ParseBranchLines extracts branch names from git branch output. It tolerates
// current-branch and worktree markers ("* ", "+ "), skips detached-HEAD
// descriptions and "undefined" results, and strips name-rev style "~N"/"^N"
// offset suffixes.
func ParseBranchLines(out string) []string {
	var names []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "* ")
		line = strings.TrimPrefix(line, "+ ")
		if line == "" || line == "undefined" || strings.HasPrefix(line, "(") {
			continue
		}
		if i := strings.IndexAny(line, "~^"); i >= 0 {
			line = line[:i]
		}
		if line != "" {
			names = append(names, line)
		}
	}
	return names
}
