package cmd

import (
	"fmt"

	"github.com/huutaile/portfolio-admin/pkg/store"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var settingsTheme string

//nolint:gochecknoglobals // Cobra boilerplate
var settingsShowEmail bool

//nolint:gochecknoglobals // Cobra boilerplate
var settingsShowPhone bool

//nolint:gochecknoglobals // Cobra boilerplate
var settingsAllowResume bool

//nolint:gochecknoglobals // Cobra boilerplate
var settingsMaintenance bool

//nolint:gochecknoglobals // Cobra boilerplate
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage display settings",
}

//nolint:gochecknoglobals // Cobra boilerplate
var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current display settings",
	RunE:  runSettingsShow,
}

//nolint:gochecknoglobals // Cobra boilerplate
var settingsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update display settings",
	Long: `Update display settings. Only flags that are passed change anything.

The visibility flags take effect on the contact page; maintenance mode hides
the public pages from anonymous viewers.

Example:
  portfolio-admin settings update --show-email=false --maintenance=true`,
	RunE: runSettingsUpdate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsUpdateCmd)

	settingsUpdateCmd.Flags().StringVar(&settingsTheme, "theme", "light", "display theme")
	settingsUpdateCmd.Flags().BoolVar(&settingsShowEmail, "show-email", true, "show email on the contact page")
	settingsUpdateCmd.Flags().BoolVar(&settingsShowPhone, "show-phone", true, "show phone on the contact page")
	settingsUpdateCmd.Flags().BoolVar(&settingsAllowResume, "allow-resume", true, "offer the resume download link")
	settingsUpdateCmd.Flags().BoolVar(&settingsMaintenance, "maintenance", false, "hide public pages behind a maintenance notice")
}

func runSettingsShow(cmd *cobra.Command, args []string) (err error) {
	_, s, err := openStore()
	if err != nil {
		return err
	}

	settings := s.Data().Settings
	fmt.Printf("theme:               %s\n", settings.Theme)
	fmt.Printf("showEmail:           %t\n", settings.ShowEmail)
	fmt.Printf("showPhone:           %t\n", settings.ShowPhone)
	fmt.Printf("allowDownloadResume: %t\n", settings.AllowDownloadResume)
	fmt.Printf("maintenanceMode:     %t\n", settings.MaintenanceMode)

	return err
}

func runSettingsUpdate(cmd *cobra.Command, args []string) (err error) {
	_, s, err := openStore()
	if err != nil {
		return err
	}

	err = requireAdmin(s)
	if err != nil {
		return err
	}

	patch := store.Patch{}
	setIfChanged(cmd, patch, "theme", "theme", settingsTheme)
	setIfChanged(cmd, patch, "show-email", "showEmail", settingsShowEmail)
	setIfChanged(cmd, patch, "show-phone", "showPhone", settingsShowPhone)
	setIfChanged(cmd, patch, "allow-resume", "allowDownloadResume", settingsAllowResume)
	setIfChanged(cmd, patch, "maintenance", "maintenanceMode", settingsMaintenance)

	if len(patch) == 0 {
		fmt.Println("Nothing to update.")
		return err
	}

	err = s.UpdateSettings(patch)
	if err != nil {
		return err
	}

	warnIfUnsaved(s)
	fmt.Printf("Updated %d setting(s).\n", len(patch))

	return err
}
