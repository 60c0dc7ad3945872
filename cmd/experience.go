package cmd

import (
	"fmt"
	"strconv"

	"github.com/huutaile/portfolio-admin/pkg/portfolio"
	"github.com/huutaile/portfolio-admin/pkg/store"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var expCompany string

//nolint:gochecknoglobals // Cobra boilerplate
var expPosition string

//nolint:gochecknoglobals // Cobra boilerplate
var expStart string

//nolint:gochecknoglobals // Cobra boilerplate
var expEnd string

//nolint:gochecknoglobals // Cobra boilerplate
var expCurrent bool

//nolint:gochecknoglobals // Cobra boilerplate
var expLocation string

//nolint:gochecknoglobals // Cobra boilerplate
var expDescription string

//nolint:gochecknoglobals // Cobra boilerplate
var expAchievements []string

//nolint:gochecknoglobals // Cobra boilerplate
var expTechnologies []string

//nolint:gochecknoglobals // Cobra boilerplate
var experienceCmd = &cobra.Command{
	Use:   "experience",
	Short: "Manage work experience entries",
}

//nolint:gochecknoglobals // Cobra boilerplate
var experienceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List experience entries with their ids",
	RunE:  runExperienceList,
}

//nolint:gochecknoglobals // Cobra boilerplate
var experienceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an experience entry",
	Long: `Add an experience entry. The new entry is appended to the end of the
collection and gets a freshly minted id.

Example:
  portfolio-admin experience add --company "Acme Corp" --position "Engineer" \
    --start 2025-01-01 --current --tech Go --tech PostgreSQL`,
	RunE: runExperienceAdd,
}

//nolint:gochecknoglobals // Cobra boilerplate
var experienceUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of an experience entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runExperienceUpdate,
}

//nolint:gochecknoglobals // Cobra boilerplate
var experienceDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an experience entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runExperienceDelete,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(experienceCmd)
	experienceCmd.AddCommand(experienceListCmd)
	experienceCmd.AddCommand(experienceAddCmd)
	experienceCmd.AddCommand(experienceUpdateCmd)
	experienceCmd.AddCommand(experienceDeleteCmd)

	for _, c := range []*cobra.Command{experienceAddCmd, experienceUpdateCmd} {
		c.Flags().StringVar(&expCompany, "company", "", "company name")
		c.Flags().StringVar(&expPosition, "position", "", "position title")
		c.Flags().StringVar(&expStart, "start", "", "start date (YYYY-MM-DD)")
		c.Flags().StringVar(&expEnd, "end", "", "end date (YYYY-MM-DD)")
		c.Flags().BoolVar(&expCurrent, "current", false, "mark as current position")
		c.Flags().StringVar(&expLocation, "location", "", "location")
		c.Flags().StringVar(&expDescription, "description", "", "description")
		c.Flags().StringArrayVar(&expAchievements, "achievement", nil, "achievement (repeatable)")
		c.Flags().StringArrayVar(&expTechnologies, "tech", nil, "technology (repeatable)")
	}
}

func runExperienceList(cmd *cobra.Command, args []string) (err error) {
	_, s, err := openStore()
	if err != nil {
		return err
	}

	for _, experience := range s.Data().Experiences {
		fmt.Printf("%d\t%s — %s (%s)\n", experience.ID, experience.PositionTitle, experience.CompanyName,
			dateRange(experience.StartDate, experience.EndDate, experience.IsCurrent))
	}

	return err
}

func runExperienceAdd(cmd *cobra.Command, args []string) (err error) {
	_, s, err := openStore()
	if err != nil {
		return err
	}

	err = requireAdmin(s)
	if err != nil {
		return err
	}

	experience := portfolio.Experience{
		CompanyName:   expCompany,
		PositionTitle: expPosition,
		StartDate:     expStart,
		IsCurrent:     expCurrent,
		Location:      expLocation,
		Description:   expDescription,
		Achievements:  emptyIfNil(expAchievements),
		Technologies:  emptyIfNil(expTechnologies),
	}
	if expEnd != "" {
		experience.EndDate = &expEnd
	}

	id, err := s.AddExperience(experience)
	if err != nil {
		return err
	}

	warnIfUnsaved(s)
	fmt.Printf("Added experience %d.\n", id)

	return err
}

func runExperienceUpdate(cmd *cobra.Command, args []string) (err error) {
	_, s, err := openStore()
	if err != nil {
		return err
	}

	err = requireAdmin(s)
	if err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	patch := store.Patch{}
	setIfChanged(cmd, patch, "company", "companyName", expCompany)
	setIfChanged(cmd, patch, "position", "positionTitle", expPosition)
	setIfChanged(cmd, patch, "start", "startDate", expStart)
	setIfChanged(cmd, patch, "end", "endDate", expEnd)
	setIfChanged(cmd, patch, "current", "isCurrent", expCurrent)
	setIfChanged(cmd, patch, "location", "location", expLocation)
	setIfChanged(cmd, patch, "description", "description", expDescription)
	setIfChanged(cmd, patch, "achievement", "achievements", expAchievements)
	setIfChanged(cmd, patch, "tech", "technologies", expTechnologies)

	if len(patch) == 0 {
		fmt.Println("Nothing to update.")
		return err
	}

	err = s.UpdateExperience(id, patch)
	if err != nil {
		return err
	}

	warnIfUnsaved(s)
	fmt.Printf("Updated experience %d.\n", id)

	return err
}

func runExperienceDelete(cmd *cobra.Command, args []string) (err error) {
	_, s, err := openStore()
	if err != nil {
		return err
	}

	err = requireAdmin(s)
	if err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	err = s.DeleteExperience(id)
	if err != nil {
		return err
	}

	warnIfUnsaved(s)
	fmt.Printf("Deleted experience %d.\n", id)

	return err
}

func parseID(arg string) (id int64, err error) {
	id, err = strconv.ParseInt(arg, 10, 64)
	if err != nil {
		err = errors.Errorf("invalid id: %s", arg)
		return id, err
	}
	return id, err
}

// setIfChanged adds value to the patch under field when the user actually
// set the flag, so explicit zero values still count as updates.
func setIfChanged(cmd *cobra.Command, patch store.Patch, flag, field string, value any) {
	if cmd.Flags().Changed(flag) {
		patch[field] = value
	}
}

func emptyIfNil(values []string) (result []string) {
	result = values
	if result == nil {
		result = []string{}
	}
	return result
}
