package cmd

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mwaldron/gerritup/internal/output"
	"github.com/mwaldron/gerritup/internal/upstream"
)

// UpstreamsCmd creates the upstreams inspection command.
func UpstreamsCmd() *cli.Command {
	return &cli.Command{
		Name:      "upstreams",
		Usage:     "Show the resolved upload target for local branches or the given refs",
		ArgsUsage: "[ref...]",
		Action:    upstreamsAction,
	}
}

func upstreamsAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		output.Errorf("failed to load config: %v", err)
		return cli.Exit("", 1)
	}

	client := newClient(c)
	refs := c.Args().Slice()
	if len(refs) == 0 {
		refs, err = client.LocalBranches(c.Context)
		if err != nil {
			output.Errorf("%v", err)
			return cli.Exit("", 1)
		}
	}

	resolver := &upstream.Resolver{
		Client:         client,
		IgnoreBranches: cfg.Refs.IgnoreBranches,
	}
	rows := make([]output.UpstreamRow, 0, len(refs))
	for _, ref := range refs {
		u, err := resolver.Resolve(c.Context, ref)
		rows = append(rows, output.UpstreamRow{
			Ref:    ref,
			Remote: u.Remote,
			Branch: u.Branch,
			Err:    err,
		})
	}
	output.WriteUpstreams(os.Stdout, rows)
	return nil
}
