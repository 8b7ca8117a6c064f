package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/zeozeozeo/modtidy/pkg/config"
	"github.com/zeozeozeo/modtidy/pkg/modfile"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
)

// app holds the state shared by every subcommand
type app struct {
	store  *modfile.Store
	cfg    *config.Config
	logger *log.Logger

	cfgFile string
	verbose bool
}

func newApp(store *modfile.Store) *app {
	return &app{
		store:  store,
		cfg:    config.DefaultConfig(),
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: config.AppName}),
	}
}

// loadConfig reads the configuration and applies log settings. It runs
// before every subcommand.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg, used, err := config.Load(config.LoadOptions{ConfigFilePath: a.cfgFile})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger.SetOutput(cmd.ErrOrStderr())
	a.logger.SetLevel(cfg.Level())
	if a.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}
	if used != "" {
		a.logger.Debug("loaded configuration", "file", used)
	}
	return nil
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "modtidy",
		Short: "Inspect and tidy 4-channel tracker modules",
		Long: TitleStyle.Render("modtidy") + SubtitleStyle.Render(" - inspect and tidy M.K. tracker modules") + `

modtidy reads ProTracker style modules, drops patterns and samples
the song never plays, trims sample data past the loop and writes the
result back byte for byte in the same format.

` + SubtitleStyle.Render("Examples:") + `
  modtidy info song.mod             Show samples and patterns
  modtidy tidy song.mod             Tidy song.mod in place
  modtidy tidy -o out/ *.mod        Tidy many files into out/
  modtidy browse ~/mods             Browse a directory of modules`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./modtidy.yaml or $HOME/.config/modtidy/modtidy.yaml)")

	rootCmd.AddCommand(newInfoCmd(a))
	rootCmd.AddCommand(newTidyCmd(a))
	rootCmd.AddCommand(newBrowseCmd(a))
	return rootCmd
}

func main() {
	a := newApp(modfile.NewOsStore())
	if err := fang.Execute(
		context.Background(),
		newRootCmd(a),
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
