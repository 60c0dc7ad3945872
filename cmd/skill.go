package cmd

import (
	"fmt"

	"github.com/huutaile/portfolio-admin/pkg/portfolio"
	"github.com/huutaile/portfolio-admin/pkg/store"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var skillName string

//nolint:gochecknoglobals // Cobra boilerplate
var skillLevel string

//nolint:gochecknoglobals // Cobra boilerplate
var skillCategory string

//nolint:gochecknoglobals // Cobra boilerplate
var skillYears int

//nolint:gochecknoglobals // Cobra boilerplate
var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage skill entries",
}

//nolint:gochecknoglobals // Cobra boilerplate
var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skill entries with their ids",
	RunE:  runSkillList,
}

//nolint:gochecknoglobals // Cobra boilerplate
var skillAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a skill entry",
	Long: `Add a skill entry. Proficiency must be one of BEGINNER, INTERMEDIATE,
ADVANCED, or EXPERT.

Example:
  portfolio-admin skill add --name Go --level ADVANCED --category Backend --years 3`,
	RunE: runSkillAdd,
}

//nolint:gochecknoglobals // Cobra boilerplate
var skillUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a skill entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillUpdate,
}

//nolint:gochecknoglobals // Cobra boilerplate
var skillDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a skill entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillDelete,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(skillCmd)
	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillAddCmd)
	skillCmd.AddCommand(skillUpdateCmd)
	skillCmd.AddCommand(skillDeleteCmd)

	for _, c := range []*cobra.Command{skillAddCmd, skillUpdateCmd} {
		c.Flags().StringVar(&skillName, "name", "", "skill name")
		c.Flags().StringVar(&skillLevel, "level", portfolio.ProficiencyIntermediate, "proficiency level")
		c.Flags().StringVar(&skillCategory, "category", "", "grouping category")
		c.Flags().IntVar(&skillYears, "years", 0, "years of experience")
	}
}

func runSkillList(cmd *cobra.Command, args []string) (err error) {
	_, s, err := openStore()
	if err != nil {
		return err
	}

	for _, skill := range s.Data().Skills {
		fmt.Printf("%d\t%s\t%s\t%s (%d yrs)\n", skill.ID, skill.SkillName, skill.Category, skill.ProficiencyLevel, skill.YearsExperience)
	}

	return err
}

func runSkillAdd(cmd *cobra.Command, args []string) (err error) {
	_, s, err := openStore()
	if err != nil {
		return err
	}

	err = requireAdmin(s)
	if err != nil {
		return err
	}

	err = validateProficiency(skillLevel)
	if err != nil {
		return err
	}

	id, err := s.AddSkill(portfolio.Skill{
		SkillName:        skillName,
		ProficiencyLevel: skillLevel,
		Category:         skillCategory,
		YearsExperience:  skillYears,
	})
	if err != nil {
		return err
	}

	warnIfUnsaved(s)
	fmt.Printf("Added skill %d.\n", id)

	return err
}

func runSkillUpdate(cmd *cobra.Command, args []string) (err error) {
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

	if cmd.Flags().Changed("level") {
		err = validateProficiency(skillLevel)
		if err != nil {
			return err
		}
	}

	patch := store.Patch{}
	setIfChanged(cmd, patch, "name", "skillName", skillName)
	setIfChanged(cmd, patch, "level", "proficiencyLevel", skillLevel)
	setIfChanged(cmd, patch, "category", "category", skillCategory)
	setIfChanged(cmd, patch, "years", "yearsExperience", skillYears)

	if len(patch) == 0 {
		fmt.Println("Nothing to update.")
		return err
	}

	err = s.UpdateSkill(id, patch)
	if err != nil {
		return err
	}

	warnIfUnsaved(s)
	fmt.Printf("Updated skill %d.\n", id)

	return err
}

func runSkillDelete(cmd *cobra.Command, args []string) (err error) {
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

	err = s.DeleteSkill(id)
	if err != nil {
		return err
	}

	warnIfUnsaved(s)
	fmt.Printf("Deleted skill %d.\n", id)

	return err
}

func validateProficiency(level string) (err error) {
	switch level {
	case portfolio.ProficiencyBeginner, portfolio.ProficiencyIntermediate, portfolio.ProficiencyAdvanced, portfolio.ProficiencyExpert:
	default:
		err = errors.Errorf("invalid proficiency level '%s': must be BEGINNER, INTERMEDIATE, ADVANCED, or EXPERT", level)
		return err
	}
	return err
}
