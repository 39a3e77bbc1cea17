package git

import (
	gogit "github.com/go-git/go-git/v5"
	gogitcfg "github.com/go-git/go-git/v5/config"
	log "github.com/sirupsen/logrus"
)

// repoConfig returns the repository configuration parsed in-process with
// go-git, or nil when the repository cannot be opened that way (bare repos
// behind odd layouts, incompatible extensions). Callers fall back to git
// config subprocess lookups on nil.
//
// The config is read once per client; the tool is one-shot, so staleness is
// not a concern.
func (c *CLIClient) repoConfig() *gogitcfg.Config {
	c.openOnce.Do(func() {
		dir := c.Dir
		if dir == "" {
			dir = "."
		}
		repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
		if err != nil {
			log.WithError(err).Debug("in-process repository open failed, using git config")
			return
		}
		cfg, err := repo.Config()
		if err != nil {
			log.WithError(err).Debug("in-process config read failed, using git config")
			return
		}
		c.repoCfg = cfg
	})
	return c.repoCfg
}
