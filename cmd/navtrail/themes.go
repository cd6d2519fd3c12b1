package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vidyasagar/navtrail/internal/storage"
	"github.com/vidyasagar/navtrail/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available color themes",
	Long:  `Display the built-in color themes and the syntax style each one uses.`,
	Run:   runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) {
	current := storage.DefaultConfig().Theme
	if cfg, err := storage.LoadConfig(configFlag); err == nil {
		current = cfg.Theme
	}

	names := theme.List()
	maxLen := 0
	for _, name := range names {
		maxLen = max(maxLen, len(name))
	}

	fmt.Println("Available themes:")
	fmt.Println()
	for _, name := range names {
		t, _ := theme.Get(name)
		marker := " "
		if name == current {
			marker = "*"
		}
		fmt.Printf("%s %-*s  %s\n", marker, maxLen, name, t.ChromaStyle)
	}
	fmt.Println()
	fmt.Println("Use with --theme <name>, :theme <name>, or \"theme\" in config.json.")
}
