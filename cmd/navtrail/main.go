package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/vidyasagar/navtrail/internal/app"
	"github.com/vidyasagar/navtrail/internal/logging"
	"github.com/vidyasagar/navtrail/internal/storage"
	"github.com/vidyasagar/navtrail/internal/theme"
	"github.com/vidyasagar/navtrail/internal/workspace"
)

var version = "0.1.0"

var (
	themeFlag    string
	configFlag   string
	logLevelFlag string
	noPanelFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "navtrail [file[:line]...]",
	Short: "navtrail - walk back and forth along your jumps through code",
	Long: `navtrail is a terminal code viewer that records every jump between files
and to distant lines, so you can walk the path back and forth with H and L.

Examples:
  navtrail main.go                 # open a file
  navtrail main.go:42 util.go      # open several, the first at line 42
  navtrail --theme nord main.go    # use the nord theme`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "color theme (see 'navtrail themes')")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default is $XDG_CONFIG_HOME/navtrail/config.json)")
	rootCmd.Flags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&noPanelFlag, "no-panel", false, "start with the path panel hidden")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	// A config that cannot be read is replaced by defaults and never saved
	// over.
	cfg, err := storage.LoadConfig(configFlag)
	saveable := err == nil
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; using defaults\n", err)
		d := storage.DefaultConfig()
		cfg = &d
	}

	themeName := cfg.Theme
	if themeFlag != "" {
		themeName = themeFlag
	}
	if !theme.Set(themeName) {
		return fmt.Errorf("unknown theme %q (available: %v)", themeName, theme.List())
	}

	levelName := cfg.LogLevel
	if logLevelFlag != "" {
		levelName = logLevelFlag
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}

	dataDir, dataErr := storage.DataDir()
	logDir := cfg.LogDir
	if logDir == "" && dataErr == nil {
		logDir = filepath.Join(dataDir, "logs")
	}
	logger, err := logging.New(logging.Config{Level: level, LogDir: logDir, Service: "navtrail"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; logging disabled\n", err)
		logger = logging.Discard()
	}
	defer logger.Close()
	logger.Info("starting", "version", version, "files", len(args), "config", cfg.Path())

	loader, err := workspace.NewLoader(cfg.CacheSize)
	if err != nil {
		return err
	}
	ws := workspace.New(loader, logger.Logger)
	for _, arg := range args {
		t := workspace.ParseTarget(arg)
		if _, err := ws.Open(t.Path, t.Line); err != nil {
			return err
		}
	}

	// Marks and file watching are best-effort.
	var marks *storage.MarkStore
	if dataErr == nil {
		db, err := storage.OpenDB(dataDir)
		if err != nil {
			logger.Warn("marks disabled", "error", err)
		} else {
			defer db.Close()
			marks = storage.NewMarkStore(db)
		}
	}

	watcher, err := workspace.NewWatcher(logger.Logger)
	if err != nil {
		logger.Warn("file watching disabled", "error", err)
	} else {
		defer watcher.Close()
	}

	opts := app.Options{
		Workspace: ws,
		Watcher:   watcher,
		Marks:     marks,
		Logger:    logger.Logger,

		HidePathPanel: noPanelFlag,
	}
	if saveable {
		opts.Config = cfg
	}

	p := tea.NewProgram(app.New(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "error", err)
		return err
	}
	logger.Info("exiting")
	return nil
}
