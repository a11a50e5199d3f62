package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/RifqiMT/working-hours-tracker/internal/model"
	"github.com/RifqiMT/working-hours-tracker/internal/msgraph"
)

var (
	outlookSyncFrom     string
	outlookSyncTo       string
	outlookSyncDate     string
	outlookSyncToday    bool
	outlookSyncDryRun   bool
	outlookSyncLocation string
	outlookSyncTZ       string
)

var outlookCmd = &cobra.Command{
	Use:   "outlook",
	Short: "Outlook calendar integration",
}

var outlookSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync Outlook calendar events into work entries",
	Args:  cobra.NoArgs,
	RunE:  runOutlookSync,
}

func init() {
	outlookSyncCmd.Flags().StringVar(&outlookSyncFrom, "from", "", "Start date (YYYY-MM-DD); required when --to is specified")
	outlookSyncCmd.Flags().StringVar(&outlookSyncTo, "to", "", "End date (YYYY-MM-DD); defaults to today")
	outlookSyncCmd.Flags().StringVar(&outlookSyncDate, "date", "", "Sync a specific date (YYYY-MM-DD)")
	outlookSyncCmd.Flags().BoolVar(&outlookSyncToday, "today", false, "Sync only today (default)")
	outlookSyncCmd.Flags().BoolVar(&outlookSyncDryRun, "dry-run", false, "Print planned entries without writing")
	outlookSyncCmd.Flags().StringVar(&outlookSyncLocation, "location", string(model.LocationWFO), "Location stamped on synced entries (WFO, WFH, Anywhere)")
	outlookSyncCmd.Flags().StringVar(&outlookSyncTZ, "timezone", "", "IANA timezone for event times (default from config)")
	outlookCmd.AddCommand(outlookSyncCmd)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

func runOutlookSync(cmd *cobra.Command, args []string) error {
	now := time.Now()
	var from, to time.Time

	switch {
	case outlookSyncDate != "":
		d, err := time.Parse("2006-01-02", outlookSyncDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --date value %q: %v\n", outlookSyncDate, err)
			os.Exit(1)
		}
		from = startOfDay(d)
		to = endOfDay(d)

	case outlookSyncFrom != "" || outlookSyncTo != "":
		if outlookSyncTo != "" && outlookSyncFrom == "" {
			fmt.Fprintln(os.Stderr, "--from is required when --to is specified")
			os.Exit(1)
		}
		var err error
		from, err = time.Parse("2006-01-02", outlookSyncFrom)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --from value %q: %v\n", outlookSyncFrom, err)
			os.Exit(1)
		}
		from = startOfDay(from)

		if outlookSyncTo != "" {
			t, err := time.Parse("2006-01-02", outlookSyncTo)
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid --to value %q: %v\n", outlookSyncTo, err)
				os.Exit(1)
			}
			to = endOfDay(t)
		} else {
			to = endOfDay(now)
		}

	default:
		// Default: today.
		from = startOfDay(now)
		to = endOfDay(now)
	}

	st, cfg := openStore()
	profile := activeProfile(cfg)

	timezone := outlookSyncTZ
	if timezone == "" {
		timezone = cfg.Outlook.Timezone
	}
	location := model.NormalizeLocation(outlookSyncLocation)
	if location == "" {
		fmt.Fprintf(os.Stderr, "invalid --location value %q\n", outlookSyncLocation)
		os.Exit(1)
	}

	dryTag := ""
	if outlookSyncDryRun {
		dryTag = " [dry-run]"
	}
	fmt.Printf("Syncing Outlook events (%s → %s)%s...\n",
		from.Format("2006-01-02"), to.Format("2006-01-02"), dryTag)
	fmt.Println()

	ctx := context.Background()

	tok, oauthCfg, err := msgraph.GetHTTPClient(ctx, cfg.Outlook.TenantID, cfg.Outlook.ClientID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Authentication failed: %v\n", err)
		os.Exit(1)
	}

	client := msgraph.NewClient(ctx, tok, oauthCfg)

	events, err := client.GetCalendarView(ctx, from, to, timezone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch calendar events: %v\n", err)
		os.Exit(1)
	}

	opts := msgraph.SyncOptions{
		Timezone: timezone,
		Location: location,
		DryRun:   outlookSyncDryRun,
	}

	incoming, result := msgraph.BuildDayEntries(events, opts)
	merged := msgraph.SyncEntries(st.Entries(profile), incoming, opts, &result)
	if !outlookSyncDryRun {
		if err := st.SetEntries(profile, merged); err != nil {
			fmt.Fprintf(os.Stderr, "Sync error: %v\n", err)
			os.Exit(2)
		}
	}

	fmt.Println()
	fmt.Println("Summary:")
	fmt.Printf("  %d imported\n", result.Imported)
	fmt.Printf("  %d skipped\n", result.Skipped)
	fmt.Printf("  %d updated\n", result.Updated)
	if result.Errors > 0 {
		fmt.Printf("  %d errors\n", result.Errors)
		os.Exit(2)
	}
	return nil
}
