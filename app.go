// Command gerritup infers the code-review upload target for a git ref from
// the branch's configured upstream and pushes it to the review server as
// <commit>:refs/for/<branch>, optionally annotating reviewers.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/mwaldron/gerritup/cmd"
)

func main() {
	app := cmd.App()

	// Install the upload flags on the root command as well, so a bare
	// "gerritup -r adg HEAD" works without naming the subcommand.
	app.Flags = append(app.Flags, cmd.UploadFlags()...)

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
