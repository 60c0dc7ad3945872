package cmd

import (
	"fmt"

	"github.com/huutaile/portfolio-admin/pkg/store"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var personalFields = map[string]*string{
	"fullName":        new(string),
	"title":           new(string),
	"tagline":         new(string),
	"summary":         new(string),
	"email":           new(string),
	"phone":           new(string),
	"location":        new(string),
	"linkedinUrl":     new(string),
	"githubUrl":       new(string),
	"websiteUrl":      new(string),
	"profileImageUrl": new(string),
	"resumeUrl":       new(string),
	"availability":    new(string),
}

//nolint:gochecknoglobals // Cobra boilerplate
var personalCmd = &cobra.Command{
	Use:   "personal",
	Short: "Manage personal info",
}

//nolint:gochecknoglobals // Cobra boilerplate
var personalUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update personal info fields",
	Long: `Update personal info. Only the fields passed as flags are changed;
everything else keeps its current value.

Example:
  portfolio-admin personal update --email new@example.com --location "Austin, TX"`,
	RunE: runPersonalUpdate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(personalCmd)
	personalCmd.AddCommand(personalUpdateCmd)
	for field, target := range personalFields {
		personalUpdateCmd.Flags().StringVar(target, field, "", fmt.Sprintf("set %s", field))
	}
}

func runPersonalUpdate(cmd *cobra.Command, args []string) (err error) {
	_, s, err := openStore()
	if err != nil {
		return err
	}

	err = requireAdmin(s)
	if err != nil {
		return err
	}

	// Only flags the user actually set enter the patch, so an explicit
	// empty string is still a valid value.
	patch := store.Patch{}
	for field, target := range personalFields {
		if cmd.Flags().Changed(field) {
			patch[field] = *target
		}
	}

	if len(patch) == 0 {
		fmt.Println("Nothing to update.")
		return err
	}

	err = s.UpdatePersonalInfo(patch)
	if err != nil {
		return err
	}

	warnIfUnsaved(s)
	fmt.Printf("Updated %d field(s).\n", len(patch))

	return err
}
