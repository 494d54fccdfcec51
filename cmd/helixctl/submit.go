package main

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"helixcraftworks.com/helix-web/internal/forms"
)

type submitResult struct {
	Form     string            `yaml:"form"`
	Endpoint string            `yaml:"endpoint"`
	Strategy string            `yaml:"strategy"`
	State    string            `yaml:"state"`
	Message  string            `yaml:"message,omitempty"`
	Errors   map[string]string `yaml:"errors,omitempty"`
	Payload  string            `yaml:"payload,omitempty"`
}

func (c *cli) submitCmd() *cobra.Command {
	var (
		origin   string
		endpoint string
		sets     []string
		files    []string
		dryRun   bool
	)
	cmd := &cobra.Command{
		Use:   "submit <form>",
		Short: "Submit a form the way the site does",
		Example: `  helixctl submit contact --set name="Gene Gear" --set email=gene@example.com --set message=Hello
  helixctl submit careers-application --origin /careers --set name=Jordan --file resume=./cv.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := forms.Lookup(args[0], origin)
			if err != nil {
				return err
			}
			inst := forms.NewInstance(def)
			if err := applySets(inst, sets); err != nil {
				return err
			}
			if err := applyFiles(inst, files); err != nil {
				return err
			}

			if endpoint == "" {
				endpoint = c.cfg.FormEndpoint
			}
			backend := forms.NewBackend(endpoint, c.cfg.FormTimeout, c.log.Named("forms"))
			res := submitResult{Form: def.Name, Endpoint: backend.Endpoint(), Strategy: def.Strategy.Name()}
			if dryRun {
				res.State = forms.StateIdle.String()
				res.Errors = inst.Validate()
				res.Payload = inst.Payload().Encode()
				return c.writeYAML(res)
			}

			ctrl := forms.NewController(inst,
				forms.WithClient(backend),
				forms.WithEndpoint(backend.Endpoint()),
				forms.WithLogger(c.log),
				forms.WithObserver(func(from, to forms.State) {
					c.log.Debug("state", zap.Stringer("from", from), zap.Stringer("to", to))
				}),
			)
			submitErr := ctrl.Submit(cmd.Context())
			res.State = ctrl.State().String()
			res.Message = ctrl.ErrorMessage()
			res.Errors = ctrl.FieldErrors()
			if err := c.writeYAML(res); err != nil {
				return err
			}
			return submitErr
		},
	}
	cmd.Flags().StringVar(&origin, "origin", "/", "page path the form is submitted from")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "form backend URL (default from config)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "field value as name=value; repeat for checkbox groups")
	cmd.Flags().StringArrayVar(&files, "file", nil, "file field as name=path")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate and print the payload without sending")
	return cmd
}

func applySets(inst *forms.Instance, sets []string) error {
	grouped := map[string][]string{}
	var order []string
	for _, s := range sets {
		k, v, ok := strings.Cut(s, "=")
		if !ok || k == "" {
			return fmt.Errorf("--set %q: want name=value", s)
		}
		if _, known := inst.Def.Field(k); !known {
			return fmt.Errorf("--set %q: %s has no field %q", s, inst.Def.Name, k)
		}
		if _, seen := grouped[k]; !seen {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], forms.Clean(v))
	}
	for _, k := range order {
		inst.Set(k, grouped[k]...)
	}
	return nil
}

func applyFiles(inst *forms.Instance, files []string) error {
	for _, s := range files {
		k, p, ok := strings.Cut(s, "=")
		if !ok || k == "" || p == "" {
			return fmt.Errorf("--file %q: want name=path", s)
		}
		f, known := inst.Def.Field(k)
		if !known || f.Kind != forms.KindFile {
			return fmt.Errorf("--file %q: %s has no file field %q", s, inst.Def.Name, k)
		}
		file, err := diskFile(p)
		if err != nil {
			return err
		}
		inst.SetFile(k, file)
	}
	return nil
}

func diskFile(path string) (*forms.File, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if st.IsDir() {
		return nil, errors.New(path + " is a directory")
	}
	return &forms.File{
		Name:        filepath.Base(path),
		Size:        st.Size(),
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
		Open:        func() (io.ReadCloser, error) { return os.Open(path) },
	}, nil
}
