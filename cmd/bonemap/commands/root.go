// Package commands implements the CLI commands for bonemap.
package commands

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"bonemap/internal/app"
	"bonemap/internal/build"
	"bonemap/internal/config"
	"bonemap/internal/logger"
)

// needsApp marks commands that work on the rig and session.
const needsApp = "bonemap/needs-app"

// CLI represents the command line interface for bonemap.
type CLI struct {
	app     *app.App
	log     *logger.Logger
	out     io.Writer
	rootCmd *cobra.Command
}

// New creates a new CLI writing command output to out.
func New(out io.Writer, log *logger.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "bonemap",
		Short:         "Map the bones of one armature onto another",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", config.DefaultPath, "Path to configuration file")
	flags.String("rig", "", "Path to the rig file (overrides config)")
	flags.String("state", "", "Path to the session state file (overrides config)")
	flags.String("log-level", "", "Log level: debug, info, warn or error (overrides config)")
	flags.Bool("log-json", false, "Write logs as JSON")

	c := &CLI{
		log:     log,
		out:     out,
		rootCmd: rootCmd,
	}

	rootCmd.SetOut(out)
	rootCmd.PersistentPreRunE = c.open

	for _, cmd := range []*cobra.Command{
		c.newSelectCmd(),
		c.newListCmd(),
		c.newAutoFillCmd(),
		c.newSuggestCmd(),
		c.newSetCmd(),
		c.newKindCmd(),
		c.newClearListCmd(),
		c.newClearCmd(),
		c.newExportCmd(),
		c.newImportCmd(),
		c.newApplyCmd(),
	} {
		cmd.Annotations = map[string]string{needsApp: "true"}
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// open loads the configuration, applies flag overrides and opens the app.
func (c *CLI) open(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[needsApp] == "" {
		return nil
	}

	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := c.log.SetLevel(cfg.Log.Level); err != nil {
		return err
	}

	c.log.SetJSON(cfg.Log.Format == "json")

	c.app = app.New(cfg, c.log, c.out)

	return c.app.Open()
}

func (c *CLI) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")

	cfg, err := config.Load(path)
	if errors.Is(err, config.ErrNotFound) && !flags.Changed("config") {
		cfg, err = config.Default(), nil
	}

	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if flags.Changed("rig") {
		cfg.Rig, _ = flags.GetString("rig")
	}

	if flags.Changed("state") {
		cfg.State, _ = flags.GetString("state")
	}

	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}

	if jsonLogs, _ := flags.GetBool("log-json"); jsonLogs {
		cfg.Log.Format = "json"
	}

	return cfg, nil
}
