package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/huutaile/portfolio-admin/pkg/portfolio"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var educationCmd = &cobra.Command{
	Use:   "education",
	Short: "Manage education entries",
}

//nolint:gochecknoglobals // Cobra boilerplate
var educationShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the education collection as JSON",
	RunE:  runEducationShow,
}

//nolint:gochecknoglobals // Cobra boilerplate
var educationSetCmd = &cobra.Command{
	Use:   "set <file>",
	Short: "Replace the education collection from a JSON file",
	Long: `Replace the whole education collection with the contents of a JSON file.

Education has no per-item editing: the collection is always written as a
unit. A typical workflow is 'education show > edu.json', edit the file, then
'education set edu.json'.`,
	Args: cobra.ExactArgs(1),
	RunE: runEducationSet,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(educationCmd)
	educationCmd.AddCommand(educationShowCmd)
	educationCmd.AddCommand(educationSetCmd)
}

func runEducationShow(cmd *cobra.Command, args []string) (err error) {
	_, s, err := openStore()
	if err != nil {
		return err
	}

	raw, err := json.MarshalIndent(s.Data().Education, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to serialize education")
		return err
	}
	fmt.Println(string(raw))

	return err
}

func runEducationSet(cmd *cobra.Command, args []string) (err error) {
	_, s, err := openStore()
	if err != nil {
		return err
	}

	err = requireAdmin(s)
	if err != nil {
		return err
	}

	// Read file
	raw, err := os.ReadFile(args[0])
	if err != nil {
		err = errors.Wrapf(err, "failed to read education file: %s", args[0])
		return err
	}

	// Parse JSON
	var education []portfolio.Education
	err = json.Unmarshal(raw, &education)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse education file: %s", args[0])
		return err
	}

	err = s.UpdateEducation(education)
	if err != nil {
		return err
	}

	warnIfUnsaved(s)
	fmt.Printf("Replaced education collection (%d entries).\n", len(education))

	return err
}
