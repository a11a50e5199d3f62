package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	deleteDate string
	deleteYes  bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]...",
	Short: "Delete entries by id or by date",
	Args:  cobra.ArbitraryArgs,
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().StringVar(&deleteDate, "date", "", "Delete all entries on this date (YYYY-MM-DD)")
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	st, cfg := openStore()
	profile := activeProfile(cfg)

	ids := append([]string{}, args...)
	if deleteDate != "" {
		for _, e := range st.Entries(profile) {
			if e.Date == deleteDate {
				ids = append(ids, e.ID)
			}
		}
	}
	if len(ids) == 0 {
		fmt.Fprintln(os.Stderr, "Nothing to delete: give entry ids or --date.")
		os.Exit(1)
	}

	if !deleteYes && !confirm(fmt.Sprintf("Delete %d entries from profile %q?", len(ids), profile)) {
		fmt.Println("Aborted.")
		return nil
	}

	removed, err := st.DeleteEntries(profile, ids...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Printf("Deleted %d entries.\n", removed)
	return nil
}

// confirm prompts on stdin; anything but y/yes aborts.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
