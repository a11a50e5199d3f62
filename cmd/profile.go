package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage profiles",
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfileList,
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new empty profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileAdd,
}

var profileRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a profile, migrating all its data",
	Args:  cobra.ExactArgs(2),
	RunE:  runProfileRename,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile and all its data",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileDelete,
}

var profileDeleteYes bool

var profileRoleCmd = &cobra.Command{
	Use:   "role [role]",
	Short: "Show or set the role label of the active profile",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProfileRole,
}

func init() {
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileRenameCmd)
	profileCmd.AddCommand(profileDeleteCmd)
	profileCmd.AddCommand(profileRoleCmd)
	profileDeleteCmd.Flags().BoolVarP(&profileDeleteYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runProfileList(cmd *cobra.Command, args []string) error {
	st, cfg := openStore()
	active := activeProfile(cfg)

	names, err := st.ProfileNames()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	for _, n := range names {
		marker := " "
		if n == active {
			marker = "*"
		}
		line := fmt.Sprintf("%s %s", marker, n)
		if role := st.Role(n); role != "" {
			line += fmt.Sprintf("  (%s)", role)
		}
		fmt.Println(line)
	}
	return nil
}

func runProfileAdd(cmd *cobra.Command, args []string) error {
	st, _ := openStore()
	if err := st.AddProfile(args[0]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Created profile %q.\n", args[0])
	return nil
}

func runProfileRename(cmd *cobra.Command, args []string) error {
	st, _ := openStore()
	if err := st.RenameProfile(args[0], args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Renamed profile %q to %q.\n", args[0], args[1])
	return nil
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	st, _ := openStore()
	if !profileDeleteYes && !confirm(fmt.Sprintf("Delete profile %q and all its entries?", args[0])) {
		fmt.Println("Aborted.")
		return nil
	}
	if err := st.DeleteProfile(args[0]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Deleted profile %q.\n", args[0])
	return nil
}

func runProfileRole(cmd *cobra.Command, args []string) error {
	st, cfg := openStore()
	profile := activeProfile(cfg)

	if len(args) == 0 {
		role := st.Role(profile)
		if role == "" {
			fmt.Printf("Profile %q has no role set.\n", profile)
		} else {
			fmt.Printf("%s\n", role)
		}
		return nil
	}
	if err := st.SetRole(profile, args[0]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Printf("Set role of profile %q to %q.\n", profile, args[0])
	return nil
}
