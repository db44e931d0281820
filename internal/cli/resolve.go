package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/rdnovell/galleon-plugins/pkg/config"
	"github.com/rdnovell/galleon-plugins/pkg/maven"
)

// resolveOpts holds the command-line flags for the resolve command.
type resolveOpts struct {
	configPath     string
	channelResolve bool
	requireChannel bool
	noCache        bool
}

// resolveCommand creates the resolve command, a diagnostic that resolves a
// single coordinate string the way provisioning would.
func (c *CLI) resolveCommand() *cobra.Command {
	var opts resolveOpts

	cmd := &cobra.Command{
		Use:   "resolve <groupId:artifactId[:version[:classifier[:extension]]]>",
		Short: "Resolve a single artifact coordinate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runResolve(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "galleon.toml", "configuration file")
	cmd.Flags().BoolVar(&opts.channelResolve, "channel-resolution", false, "prefer channel-managed versions")
	cmd.Flags().BoolVar(&opts.requireChannel, "require-channel", false, "fail without a channel-managed version")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the metadata cache")

	return cmd
}

func (c *CLI) runResolve(ctx context.Context, coords string, opts *resolveOpts) error {
	cfg, err := config.Load(opts.configPath)
	if os.IsNotExist(err) {
		// No config is fine here: fall back to the default repositories.
		cfg = &config.Config{}
	} else if err != nil {
		return err
	}

	resolver, err := c.newResolver(cfg, opts.noCache)
	if err != nil {
		return err
	}

	spinner := newSpinner(ctx, "Resolving "+coords)
	spinner.Start()

	a, err := resolver.Resolve(ctx, coords, opts.channelResolve, opts.requireChannel)
	if err != nil {
		spinner.StopWithError("Resolution failed")
		return err
	}
	spinner.StopWithSuccess("Resolved " + coords)

	printKeyValue("groupId", a.GroupID)
	printKeyValue("artifactId", a.ArtifactID)
	printKeyValue("version", a.Version)
	if a.Classifier != "" {
		printKeyValue("classifier", a.Classifier)
	}
	ext := a.Extension
	if ext == "" {
		ext = maven.DefaultExtension
	}
	printKeyValue("extension", ext)
	if a.Path != "" {
		printFile(a.Path)
	}
	return nil
}
