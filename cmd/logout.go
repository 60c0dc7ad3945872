package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the admin session",
	RunE:  runLogout,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) (err error) {
	_, s, err := openStore()
	if err != nil {
		return err
	}

	// Logging out of an anonymous session is fine.
	s.Logout()
	fmt.Println("Logged out.")

	return err
}
