package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the current snapshot to a file",
	Long: `Write the current portfolio snapshot to a JSON file. The file uses the
same layout as the persisted snapshot, so it can be dropped into another data
directory as-is.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

//nolint:gochecknoglobals // Cobra boilerplate
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the built-in default content",
	Long: `Discard all edits and restore the built-in default dataset. The
persisted snapshot is overwritten immediately.`,
	RunE: runReset,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	_, s, err := openStore()
	if err != nil {
		return err
	}

	raw, err := json.MarshalIndent(s.Data(), "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to serialize snapshot")
		return err
	}

	err = os.WriteFile(args[0], raw, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write export file: %s", args[0])
		return err
	}

	fmt.Printf("Snapshot exported to %s\n", args[0])

	return err
}

func runReset(cmd *cobra.Command, args []string) (err error) {
	_, s, err := openStore()
	if err != nil {
		return err
	}

	err = requireAdmin(s)
	if err != nil {
		return err
	}

	err = s.Reset()
	if err != nil {
		return err
	}

	warnIfUnsaved(s)
	fmt.Println("Restored default content.")

	return err
}
