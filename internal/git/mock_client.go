package git

import (
	"context"
	"fmt"
)

// MockClient is a scripted Git backend for tests. Branch configuration,
// containment edges, and remote URLs are plain maps, and pushes are recorded
// instead of executed, so resolution logic can be exercised without a real
// repository on disk.
type MockClient struct {
	Branches   map[string]BranchConfig // branch name -> configured upstream
	Contains   map[string][]string     // ref -> branches containing it
	RemoteURLs map[string]string       // remote name -> URL

	PushErr error    // returned by Push after recording
	Pushed  []string // "remote refspec" per push

	ContainsQueries []string // refs passed to ContainingBranches, in order
}

// BranchUpstream returns the scripted configuration for branch.
func (m *MockClient) BranchUpstream(_ context.Context, branch string) (BranchConfig, error) {
	return m.Branches[branch], nil
}

// ContainingBranches returns the scripted containment edges for ref.
func (m *MockClient) ContainingBranches(_ context.Context, ref string) ([]string, error) {
	m.ContainsQueries = append(m.ContainsQueries, ref)
	return m.Contains[ref], nil
}

// RemoteURL returns the scripted URL for remote.
func (m *MockClient) RemoteURL(_ context.Context, remote string) (string, error) {
	return m.RemoteURLs[remote], nil
}

// Push records the push and returns PushErr.
func (m *MockClient) Push(_ context.Context, remote, refspec string) error {
	m.Pushed = append(m.Pushed, fmt.Sprintf("%s %s", remote, refspec))
	return m.PushErr
}
