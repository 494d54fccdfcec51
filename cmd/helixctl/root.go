package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"helixcraftworks.com/helix-web/internal/config"
	"helixcraftworks.com/helix-web/internal/content"
	"helixcraftworks.com/helix-web/internal/logging"
	"helixcraftworks.com/helix-web/internal/routes"
)

// cli carries the state shared by subcommands once configuration is loaded.
type cli struct {
	out        io.Writer
	cfgFile    string
	contentDir string
	verbose    bool

	cfg config.Config
	log *zap.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out}
	root := &cobra.Command{
		Use:           "helixctl",
		Short:         "Helix Craftworks site tooling",
		Long:          "helixctl lists and resolves site routes and submits forms to the form backend.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init()
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default ./helix-web.yaml when present)")
	root.PersistentFlags().StringVar(&c.contentDir, "content", "", "standalone page markdown directory")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(c.routesCmd(), c.submitCmd())
	return root
}

func (c *cli) init() error {
	cfg, err := config.Load(config.Options{ConfigFile: c.cfgFile})
	if err != nil {
		return err
	}
	if c.contentDir != "" {
		cfg.ContentDir = c.contentDir
	}
	c.cfg = cfg
	c.log = zap.NewNop()
	if c.verbose {
		l, err := logging.New(true)
		if err != nil {
			return err
		}
		c.log = l
	}
	return nil
}

func (c *cli) table() (*routes.Table, error) {
	pages, err := content.LoadStandalone(c.cfg.ContentDir)
	if err != nil {
		return nil, err
	}
	return routes.Site(pages)
}
