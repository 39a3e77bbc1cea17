package git

import "context"

// Client defines the Git metadata queries and the single mutating operation
// (push) the tool performs. Keeping the surface this narrow lets upstream
// resolution run against a scripted fake without a repository on disk.
type Client interface {
	// BranchUpstream reads branch.<name>.remote and branch.<name>.merge.
	// Unset keys come back as empty strings, not errors.
	BranchUpstream(ctx context.Context, branch string) (BranchConfig, error)

	// ContainingBranches returns the local branch names whose history
	// contains ref.
	ContainingBranches(ctx context.Context, ref string) ([]string, error)

	// RemoteURL reads remote.<name>.url ("" if unset).
	RemoteURL(ctx context.Context, remote string) (string, error)

	// Push pushes refspec to remote, streaming the command output.
	Push(ctx context.Context, remote, refspec string) error
}

// Compile-time interface conformance checks.
var (
	_ Client = (*CLIClient)(nil)
	_ Client = (*MockClient)(nil)
)
