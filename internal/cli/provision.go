package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rdnovell/galleon-plugins/pkg/config"
	"github.com/rdnovell/galleon-plugins/pkg/provision"
)

// provisionOpts holds the command-line flags for the provision command.
// Flags override the corresponding fields of the configuration file.
type provisionOpts struct {
	configPath     string // configuration file path
	mode           string // packaging mode override
	templates      string // template directory override
	versions       string // version table path override
	channelResolve bool   // force channel-managed versions
	requireChannel bool   // fail artifacts no channel defines
	noCache        bool   // bypass the metadata cache
	showSchemas    bool   // list schema jars after the run
}

// provisionCommand creates the provision command.
func (c *CLI) provisionCommand() *cobra.Command {
	var opts provisionOpts

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Resolve and package a module descriptor tree",
		Long: `Provision walks a directory tree of module descriptors, resolves every
artifact placeholder against the version table (or channels), and rewrites
the descriptors in place. In fat mode resolved artifacts are copied next to
their descriptor; in thin mode descriptors reference coordinates only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runProvision(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "galleon.toml", "configuration file")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "packaging mode: fat, thin (overrides config)")
	cmd.Flags().StringVar(&opts.templates, "templates", "", "template directory (overrides config)")
	cmd.Flags().StringVar(&opts.versions, "versions", "", "version table file (overrides config)")
	cmd.Flags().BoolVar(&opts.channelResolve, "channel-resolution", false, "prefer channel-managed versions")
	cmd.Flags().BoolVar(&opts.requireChannel, "require-channel", false, "fail artifacts without a channel-managed version")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the metadata cache")
	cmd.Flags().BoolVar(&opts.showSchemas, "schemas", false, "list schema artifacts after the run")

	return cmd
}

func (c *CLI) runProvision(ctx context.Context, opts *provisionOpts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	table, err := provision.LoadVersionTable(cfg.Versions)
	if err != nil {
		return err
	}
	c.Logger.Debugf("Loaded %d version entries from %s", table.Len(), cfg.Versions)

	resolver, err := c.newResolver(cfg, opts.noCache)
	if err != nil {
		return err
	}

	schemas := &provision.SchemaRecorder{}
	runner := &provision.Runner{
		Versions:          table,
		Resolver:          resolver,
		Mode:              provision.Mode(cfg.Mode),
		Schemas:           schemas,
		Logger:            c.Logger,
		ChannelResolution: cfg.ChannelResolution,
		RequireChannel:    cfg.RequireChannel,
	}

	prog := newProgress(c.Logger)
	result, err := runner.Run(ctx, cfg.Templates)
	if err != nil {
		printError("Provisioning failed: %v", err)
		return err
	}
	prog.done(fmt.Sprintf("Provisioned %d modules", result.Processed))

	printSuccess("Provisioned %s (%s mode)", cfg.Templates, cfg.Mode)
	printStats(result.Processed, result.Ignored)
	if opts.showSchemas {
		for _, e := range schemas.Entries() {
			printDetail("schema %s (%s)", e.Path, e.GroupID)
		}
	}
	printNextStep("Inspect the dependency graph", "galleon graph "+cfg.Templates)
	return nil
}

// loadConfig reads the configuration file and applies flag overrides.
func loadConfig(opts *provisionOpts) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.mode != "" {
		cfg.Mode = opts.mode
	}
	if opts.templates != "" {
		cfg.Templates = opts.templates
	}
	if opts.versions != "" {
		cfg.Versions = opts.versions
	}
	if opts.channelResolve {
		cfg.ChannelResolution = true
	}
	if opts.requireChannel {
		cfg.RequireChannel = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
