package cmd

import (
	"fmt"

	"github.com/huutaile/portfolio-admin/pkg/portfolio"
	"github.com/huutaile/portfolio-admin/pkg/store"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var projName string

//nolint:gochecknoglobals // Cobra boilerplate
var projDescription string

//nolint:gochecknoglobals // Cobra boilerplate
var projLongDescription string

//nolint:gochecknoglobals // Cobra boilerplate
var projTechnologies []string

//nolint:gochecknoglobals // Cobra boilerplate
var projURL string

//nolint:gochecknoglobals // Cobra boilerplate
var projGithubURL string

//nolint:gochecknoglobals // Cobra boilerplate
var projStart string

//nolint:gochecknoglobals // Cobra boilerplate
var projEnd string

//nolint:gochecknoglobals // Cobra boilerplate
var projOngoing bool

//nolint:gochecknoglobals // Cobra boilerplate
var projStatus string

//nolint:gochecknoglobals // Cobra boilerplate
var projFeatured bool

//nolint:gochecknoglobals // Cobra boilerplate
var projImages []string

//nolint:gochecknoglobals // Cobra boilerplate
var projChallenges string

//nolint:gochecknoglobals // Cobra boilerplate
var projLearnings string

//nolint:gochecknoglobals // Cobra boilerplate
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage project entries",
}

//nolint:gochecknoglobals // Cobra boilerplate
var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List project entries with their ids",
	RunE:  runProjectList,
}

//nolint:gochecknoglobals // Cobra boilerplate
var projectAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a project entry",
	Long: `Add a project entry. Status should be one of "In Development",
"Completed", "On Hold", or "Planning".

Example:
  portfolio-admin project add --name "CLI Toolkit" --description "A toolkit" \
    --start 2025-02-01 --status "In Development" --ongoing --tech Go`,
	RunE: runProjectAdd,
}

//nolint:gochecknoglobals // Cobra boilerplate
var projectUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a project entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectUpdate,
}

//nolint:gochecknoglobals // Cobra boilerplate
var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectDelete,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectUpdateCmd)
	projectCmd.AddCommand(projectDeleteCmd)

	for _, c := range []*cobra.Command{projectAddCmd, projectUpdateCmd} {
		c.Flags().StringVar(&projName, "name", "", "project name")
		c.Flags().StringVar(&projDescription, "description", "", "short description")
		c.Flags().StringVar(&projLongDescription, "long-description", "", "long description")
		c.Flags().StringArrayVar(&projTechnologies, "tech", nil, "technology (repeatable)")
		c.Flags().StringVar(&projURL, "url", "", "project URL")
		c.Flags().StringVar(&projGithubURL, "github", "", "GitHub URL")
		c.Flags().StringVar(&projStart, "start", "", "start date (YYYY-MM-DD)")
		c.Flags().StringVar(&projEnd, "end", "", "end date (YYYY-MM-DD)")
		c.Flags().BoolVar(&projOngoing, "ongoing", false, "mark as ongoing")
		c.Flags().StringVar(&projStatus, "status", portfolio.StatusPlanning, "project status")
		c.Flags().BoolVar(&projFeatured, "featured", false, "feature on the home page")
		c.Flags().StringArrayVar(&projImages, "image", nil, "image URL (repeatable)")
		c.Flags().StringVar(&projChallenges, "challenges", "", "challenges")
		c.Flags().StringVar(&projLearnings, "learnings", "", "learnings")
	}
}

func runProjectList(cmd *cobra.Command, args []string) (err error) {
	_, s, err := openStore()
	if err != nil {
		return err
	}

	for _, project := range s.Data().Projects {
		marker := " "
		if project.Featured {
			marker = "*"
		}
		fmt.Printf("%d\t%s %s [%s]\n", project.ID, marker, project.ProjectName, project.Status)
	}

	return err
}

func runProjectAdd(cmd *cobra.Command, args []string) (err error) {
	_, s, err := openStore()
	if err != nil {
		return err
	}

	err = requireAdmin(s)
	if err != nil {
		return err
	}

	project := portfolio.Project{
		ProjectName:     projName,
		Description:     projDescription,
		LongDescription: projLongDescription,
		Technologies:    emptyIfNil(projTechnologies),
		ProjectURL:      projURL,
		GithubURL:       projGithubURL,
		StartDate:       projStart,
		IsOngoing:       projOngoing,
		Status:          projStatus,
		Featured:        projFeatured,
		Images:          emptyIfNil(projImages),
		Challenges:      projChallenges,
		Learnings:       projLearnings,
	}
	if projEnd != "" {
		project.EndDate = &projEnd
	}

	id, err := s.AddProject(project)
	if err != nil {
		return err
	}

	warnIfUnsaved(s)
	fmt.Printf("Added project %d.\n", id)

	return err
}

func runProjectUpdate(cmd *cobra.Command, args []string) (err error) {
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
	setIfChanged(cmd, patch, "name", "projectName", projName)
	setIfChanged(cmd, patch, "description", "description", projDescription)
	setIfChanged(cmd, patch, "long-description", "longDescription", projLongDescription)
	setIfChanged(cmd, patch, "tech", "technologies", projTechnologies)
	setIfChanged(cmd, patch, "url", "projectUrl", projURL)
	setIfChanged(cmd, patch, "github", "githubUrl", projGithubURL)
	setIfChanged(cmd, patch, "start", "startDate", projStart)
	setIfChanged(cmd, patch, "end", "endDate", projEnd)
	setIfChanged(cmd, patch, "ongoing", "isOngoing", projOngoing)
	setIfChanged(cmd, patch, "status", "status", projStatus)
	setIfChanged(cmd, patch, "featured", "featured", projFeatured)
	setIfChanged(cmd, patch, "image", "images", projImages)
	setIfChanged(cmd, patch, "challenges", "challenges", projChallenges)
	setIfChanged(cmd, patch, "learnings", "learnings", projLearnings)

	if len(patch) == 0 {
		fmt.Println("Nothing to update.")
		return err
	}

	err = s.UpdateProject(id, patch)
	if err != nil {
		return err
	}

	warnIfUnsaved(s)
	fmt.Printf("Updated project %d.\n", id)

	return err
}

func runProjectDelete(cmd *cobra.Command, args []string) (err error) {
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

	err = s.DeleteProject(id)
	if err != nil {
		return err
	}

	warnIfUnsaved(s)
	fmt.Printf("Deleted project %d.\n", id)

	return err
}
