package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"helixcraftworks.com/helix-web/internal/routes"
)

type routeEntry struct {
	Path     string `yaml:"path"`
	Variant  string `yaml:"variant"`
	Title    string `yaml:"title,omitempty"`
	Sections int    `yaml:"sections,omitempty"`
}

type resolution struct {
	Path     string      `yaml:"path"`
	Fallback bool        `yaml:"fallback"`
	Page     routes.Page `yaml:"page"`
}

func (c *cli) routesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Inspect the route table",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List every registered path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				t, err := c.table()
				if err != nil {
					return err
				}
				out := make([]routeEntry, 0, t.Len())
				for _, p := range t.Paths() {
					page, _ := t.Lookup(p)
					out = append(out, routeEntry{Path: p, Variant: string(page.Variant), Title: page.Title, Sections: len(page.Sections)})
				}
				return c.writeYAML(out)
			},
		},
		&cobra.Command{
			Use:   "resolve <path>",
			Short: "Show the page a path renders",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := c.table()
				if err != nil {
					return err
				}
				_, ok := t.Lookup(args[0])
				return c.writeYAML(resolution{Path: args[0], Fallback: !ok, Page: t.Resolve(args[0])})
			},
		},
	)
	return cmd
}

func (c *cli) writeYAML(v any) error {
	enc := yaml.NewEncoder(c.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
