package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rdnovell/galleon-plugins/pkg/provision"
	"github.com/rdnovell/galleon-plugins/pkg/render/moddot"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output string // output file path (stdout if empty)
	format string // "dot" or "svg"
}

// graphCommand creates the graph command, which renders the module
// dependency graph of a template tree.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph <dir>",
		Short: "Render the module dependency graph of a template tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != "dot" && opts.format != "svg" {
				return fmt.Errorf("invalid format: %s (must be 'dot' or 'svg')", opts.format)
			}
			return c.runGraph(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if omitted)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "dot", "output format: dot (default), svg")

	return cmd
}

func (c *CLI) runGraph(dir string, opts *graphOpts) error {
	templates, err := loadTemplates(dir)
	if err != nil {
		return err
	}
	c.Logger.Debugf("Loaded %d descriptors from %s", len(templates), dir)

	g := moddot.Build(templates)
	dot := g.ToDOT()

	var data []byte
	switch opts.format {
	case "svg":
		data, err = moddot.RenderSVG(dot)
		if err != nil {
			return err
		}
	default:
		data = []byte(dot)
	}

	if opts.output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return err
	}
	printSuccess("Graphed %d modules", len(g.Modules()))
	printFile(opts.output)
	return nil
}

// loadTemplates collects every module.xml descriptor under dir.
func loadTemplates(dir string) ([]*provision.Template, error) {
	var templates []*provision.Template
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(d.Name(), "module.xml") {
			return nil
		}
		t, err := provision.LoadTemplate(path)
		if err != nil {
			return err
		}
		templates = append(templates, t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return templates, nil
}
