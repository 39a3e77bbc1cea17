package git

import "strings"

const (
	// LocalBranchPrefix is the ref namespace for local branches.
	LocalBranchPrefix = "refs/heads/"
	// ReviewRefPrefix is the ref namespace the review server watches for
	// push-based review requests.
	ReviewRefPrefix = "refs/for/"
)

// Upstream identifies the (remote, branch) pair a ref is uploaded against.
// Branch is fully qualified, e.g. "refs/heads/main".
type Upstream struct {
	Remote string
	Branch string
}

// ShortBranch returns the branch name without the refs/heads/ prefix.
func (u Upstream) ShortBranch() string {
	return strings.TrimPrefix(u.Branch, LocalBranchPrefix)
}

// String renders the upstream in the familiar "remote/branch" form.
func (u Upstream) String() string {
	return u.Remote + "/" + u.ShortBranch()
}

// BranchConfig holds the configured upstream of a local branch as recorded
// in git configuration. Either field may be empty.
type BranchConfig struct {
	Remote string // branch.<name>.remote
	Merge  string // branch.<name>.merge, fully qualified
}
