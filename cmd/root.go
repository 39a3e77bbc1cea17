package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/mwaldron/gerritup/config"
	gitpkg "github.com/mwaldron/gerritup/internal/git"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "gerritup",
		Usage:   "Upload a commit to the review server inferred from its branch upstream",
		Version: "0.3.0",
		Commands: []*cli.Command{
			UploadCmd(),
			UpstreamsCmd(),
		},
		Flags:  globalFlags(),
		Before: setupLogging,
		// Bare invocation uploads, like the upload subcommand.
		Action: uploadAction,
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
		},
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"C"},
			Value:   ".",
			Usage:   "Path to Git repository",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Log every git invocation",
		},
		&cli.BoolFlag{
			Name:    "dry-run",
			Aliases: []string{"n"},
			Usage:   "Print the push command instead of running it",
		},
	}
}

func setupLogging(c *cli.Context) error {
	log.SetOutput(os.Stderr)
	if c.Bool("verbose") {
		log.SetLevel(log.DebugLevel)
	}
	return nil
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	return config.LoadConfig(c.String("config"), c.String("repo"))
}

func newClient(c *cli.Context) *gitpkg.CLIClient {
	client := gitpkg.NewCLIClient(c.String("repo"))
	client.DryRun = c.Bool("dry-run")
	return client
}
