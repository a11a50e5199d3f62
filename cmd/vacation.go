package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
)

var vacationCmd = &cobra.Command{
	Use:   "vacation [year] [days]",
	Short: "Show or set the yearly vacation allowance",
	Long: `Without arguments, lists the configured vacation allowance per year.
With a year and a day count, sets the allowance for that year.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runVacation,
}

func runVacation(cmd *cobra.Command, args []string) error {
	st, cfg := openStore()
	profile := activeProfile(cfg)

	if len(args) == 0 {
		allowances := st.VacationDays(profile)
		if len(allowances) == 0 {
			fmt.Printf("No vacation allowance set for profile %q.\n", profile)
			return nil
		}
		years := make([]string, 0, len(allowances))
		for y := range allowances {
			years = append(years, y)
		}
		sort.Strings(years)
		for _, y := range years {
			fmt.Printf("%s: %d days\n", y, allowances[y])
		}
		return nil
	}

	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: workhours vacation <year> <days>")
		os.Exit(1)
	}
	year := args[0]
	if _, err := strconv.Atoi(year); err != nil || len(year) != 4 {
		fmt.Fprintf(os.Stderr, "Invalid year %q.\n", year)
		os.Exit(1)
	}
	days, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid day count %q.\n", args[1])
		os.Exit(1)
	}
	if err := st.SetVacationDays(profile, year, days); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	set, _ := st.VacationAllowance(profile, year)
	fmt.Printf("Vacation allowance for %s set to %d days.\n", year, set)
	return nil
}
