package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vidyasagar/navtrail/internal/storage"
)

var marksCmd = &cobra.Command{
	Use:   "marks",
	Short: "List saved marks",
	Long:  `Display the named marks set with m<x>, as name, file and line.`,
	RunE:  runMarks,
}

func init() {
	rootCmd.AddCommand(marksCmd)
}

func runMarks(cmd *cobra.Command, args []string) error {
	dataDir, err := storage.DataDir()
	if err != nil {
		return err
	}
	db, err := storage.OpenDB(dataDir)
	if err != nil {
		return err
	}
	defer db.Close()

	marks, err := storage.NewMarkStore(db).List()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), storage.RenderMarks(marks))
	return nil
}
