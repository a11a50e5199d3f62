package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RifqiMT/working-hours-tracker/internal/config"
	"github.com/RifqiMT/working-hours-tracker/internal/store"
)

var profileFlag string

var rootCmd = &cobra.Command{
	Use:   "workhours",
	Short: "workhours – a per-profile working-hours tracker",
	Long: `workhours tracks work days per profile: clock in/out or add entries
manually, tag them with status and location, and report durations, overtime,
and aggregate statistics. All data is stored as human-readable JSON in
~/.workhours/.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&profileFlag, "profile", "", "Profile to operate on (default from config)")
	rootCmd.AddCommand(inCmd)
	rootCmd.AddCommand(outCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(slidesCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(vacationCmd)
	rootCmd.AddCommand(outlookCmd)
}

// openStore loads the config and opens the data store, exiting on system
// errors. Config problems degrade to defaults with a warning.
func openStore() (*store.Store, config.Config) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	base, err := store.BaseDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return store.Open(base), cfg
}

// activeProfile resolves the profile to operate on: --profile beats the
// configured default.
func activeProfile(cfg config.Config) string {
	if profileFlag != "" {
		return profileFlag
	}
	if cfg.DefaultProfile != "" {
		return cfg.DefaultProfile
	}
	return store.DefaultProfile
}
