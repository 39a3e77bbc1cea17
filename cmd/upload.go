package cmd

import (
	"github.com/urfave/cli/v2"

	gitpkg "github.com/mwaldron/gerritup/internal/git"
	"github.com/mwaldron/gerritup/internal/output"
	"github.com/mwaldron/gerritup/internal/uploader"
)

// UploadCmd creates the upload command.
func UploadCmd() *cli.Command {
	return &cli.Command{
		Name:      "upload",
		Aliases:   []string{"up"},
		Usage:     "Push a commit to the review server for its inferred upstream",
		ArgsUsage: "[commit]",
		Flags:     UploadFlags(),
		Action:    uploadAction,
	}
}

// UploadFlags returns the upload command's flags. They are also installed on
// the root command so a bare invocation uploads without naming the
// subcommand.
func UploadFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "reviewer",
			Aliases: []string{"r"},
			Usage:   "Reviewer address; repeatable, comma-separable. Bare names get the default domain appended",
		},
	}
}

func uploadAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		output.Errorf("failed to load config: %v", err)
		return cli.Exit("", 1)
	}

	if c.NArg() > 1 {
		output.Errorf("at most one commit may be given")
		return cli.Exit("", 1)
	}
	commit := "HEAD"
	if c.NArg() == 1 {
		commit = c.Args().Get(0)
	}

	u := uploader.New(newClient(c), cfg)
	if err := u.Run(c.Context, commit, c.StringSlice("reviewer")); err != nil {
		output.Errorf("%v", err)
		return cli.Exit("", gitpkg.ExitStatus(err))
	}
	return nil
}
