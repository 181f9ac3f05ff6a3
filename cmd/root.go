// Package cmd wires the command-line surface to the player.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/p-doom/crowd-code-player/internal/config"
	"github.com/p-doom/crowd-code-player/internal/log"
	"github.com/p-doom/crowd-code-player/internal/trace"
	"github.com/p-doom/crowd-code-player/internal/ui/player"
	"github.com/p-doom/crowd-code-player/internal/ui/styles"
	"github.com/p-doom/crowd-code-player/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "crowd-code-player <trace.csv>",
	Short: "Replay recorded coding sessions in the terminal",
	Long: `Replays a recorded coding session - a time-ordered CSV trace of text
edits and terminal output - reconstructing each file's content incrementally
and visualizing cursor movement, scrolling, and pacing at adjustable speed.`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE:    runPlayer,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/crowd-code-player/config.yaml)")
	rootCmd.Flags().Float64("speed", 20.0,
		"initial playback speed multiplier")
	rootCmd.Flags().Int64("long-pause-threshold", 120000,
		"recorded gaps above this (ms) are compressed into a short banner")
	rootCmd.Flags().Bool("follow", false,
		"keep watching the trace and play rows appended while recording")
	rootCmd.Flags().Bool("debug", false,
		"write a debug log to crowd-code-player.log")

	// Bind flags to viper
	_ = viper.BindPFlag("speed", rootCmd.Flags().Lookup("speed"))
	_ = viper.BindPFlag("long_pause_threshold_ms", rootCmd.Flags().Lookup("long-pause-threshold"))
	_ = viper.BindPFlag("follow", rootCmd.Flags().Lookup("follow"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("speed", defaults.Speed)
	viper.SetDefault("long_pause_threshold_ms", defaults.LongPauseThresholdMs)
	viper.SetDefault("follow", defaults.Follow)
	viper.SetDefault("ui.show_help_line", defaults.UI.ShowHelpLine)
	viper.SetDefault("theme.status_bar", defaults.Theme.StatusBar)
	viper.SetDefault("theme.cursor", defaults.Theme.Cursor)
	viper.SetDefault("theme.banner", defaults.Theme.Banner)
	viper.SetDefault("theme.muted", defaults.Theme.Muted)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .crowd-code-player/config.yaml (current directory)
		// 2. ~/.config/crowd-code-player/config.yaml (user config)
		if _, err := os.Stat(".crowd-code-player/config.yaml"); err == nil {
			viper.SetConfigFile(".crowd-code-player/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "crowd-code-player"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create a commented default in the
		// user config dir so the knobs are discoverable.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			home, homeErr := os.UserHomeDir()
			if homeErr == nil {
				defaultPath := filepath.Join(home, ".config", "crowd-code-player", "config.yaml")
				if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
					viper.SetConfigFile(defaultPath)
					_ = viper.ReadInConfig()
				}
				// If write fails, just continue with defaults (no config file)
			}
		} else {
			log.ErrorErr(log.CatConfig, "Reading config failed", err)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runPlayer(cmd *cobra.Command, args []string) error {
	if debug, _ := cmd.Flags().GetBool("debug"); debug || os.Getenv("CROWD_CODE_DEBUG") != "" {
		cleanup, err := log.Init("crowd-code-player.log")
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		defer cleanup()
	} else {
		log.SetEnabled(false)
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	styles.ApplyTheme(cfg.Theme.StatusBar, cfg.Theme.Cursor, cfg.Theme.Banner, cfg.Theme.Muted)

	tracePath := args[0]

	// The one fatal condition: an unreadable trace means no session at all.
	events, err := trace.Load(tracePath)
	if err != nil {
		return err
	}

	model := player.New(events, cfg)

	var w *watcher.Watcher
	if cfg.Follow {
		w, err = watcher.New(watcher.DefaultConfig(tracePath))
		if err != nil {
			return fmt.Errorf("creating trace watcher: %w", err)
		}
		changes, err := w.Start()
		if err != nil {
			return fmt.Errorf("starting trace watcher: %w", err)
		}
		model = model.WithFollow(tracePath, changes)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()

	if w != nil {
		if stopErr := w.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}

	if err != nil {
		return fmt.Errorf("running player: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
