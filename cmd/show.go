package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huutaile/portfolio-admin/pkg/portfolio"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

//nolint:gochecknoglobals // Cobra boilerplate
var showJSONPath string

//nolint:gochecknoglobals // Cobra boilerplate
var showCmd = &cobra.Command{
	Use:   "show [home|about|experience|projects|skills|contact]",
	Short: "Display a portfolio page",
	Long: `Display one of the portfolio pages as text.

Without an argument the default page from the config is shown. Use --json to
print the raw snapshot instead, optionally narrowed to a path:

  portfolio-admin show --json
  portfolio-admin show --json personalInfo.email
  portfolio-admin show --json "experiences.#.companyName"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showJSONPath, "json", "", "print the snapshot as JSON, optionally narrowed to a path")
	showCmd.Flags().Lookup("json").NoOptDefVal = "."
}

func runShow(cmd *cobra.Command, args []string) (err error) {
	cfg, s, err := openStore()
	if err != nil {
		return err
	}

	data := s.Data()

	if cmd.Flags().Changed("json") {
		return printJSON(data, showJSONPath)
	}

	// Maintenance mode hides the public site; the admin still sees it.
	if data.Settings.MaintenanceMode && !s.IsAdmin() {
		fmt.Println("This site is down for maintenance. Please check back later.")
		return err
	}

	page := cfg.GetDefaultPage()
	if len(args) > 0 {
		page = args[0]
	}

	switch page {
	case "home":
		renderHome(data)
	case "about":
		renderAbout(data)
	case "experience":
		renderExperience(data)
	case "projects":
		renderProjects(data)
	case "skills":
		renderSkills(data)
	case "contact":
		renderContact(data)
	default:
		err = errors.Errorf("unknown page: %s", page)
		return err
	}

	return err
}

func printJSON(data portfolio.Data, path string) (err error) {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to serialize snapshot")
		return err
	}

	if path == "" || path == "." {
		fmt.Println(string(raw))
		return err
	}

	result := gjson.GetBytes(raw, path)
	if !result.Exists() {
		err = errors.Errorf("no value at path: %s", path)
		return err
	}
	fmt.Println(result.String())

	return err
}

func renderHome(data portfolio.Data) {
	info := data.PersonalInfo
	fmt.Printf("%s\n%s\n\n", info.FullName, info.Title)
	if info.Tagline != "" {
		fmt.Printf("%s\n\n", info.Tagline)
	}
	if info.Availability != "" {
		fmt.Printf("Availability: %s\n", info.Availability)
	}

	featured := featuredProjects(data.Projects)
	if len(featured) > 0 {
		fmt.Println("\nFeatured projects:")
		for _, project := range featured {
			fmt.Printf("  - %s: %s\n", project.ProjectName, project.Description)
		}
	}
}

func renderAbout(data portfolio.Data) {
	info := data.PersonalInfo
	fmt.Printf("About %s\n\n", info.FullName)
	if info.Summary != "" {
		fmt.Printf("%s\n", info.Summary)
	}

	if len(data.Education) > 0 {
		fmt.Println("\nEducation:")
		for _, education := range data.Education {
			fmt.Printf("  %s, %s in %s (%s)\n", education.InstitutionName, education.DegreeType, education.FieldOfStudy, dateRange(education.StartDate, &education.EndDate, false))
			if education.GPA != "" {
				fmt.Printf("    GPA: %s\n", education.GPA)
			}
		}
	}

	if len(data.Certifications) > 0 {
		fmt.Println("\nCertifications:")
		for _, certification := range data.Certifications {
			fmt.Printf("  %s — %s (issued %s)\n", certification.Name, certification.Issuer, certification.IssueDate)
		}
	}

	if len(data.Testimonials) > 0 {
		fmt.Println("\nTestimonials:")
		for _, testimonial := range data.Testimonials {
			fmt.Printf("  %q\n    — %s, %s at %s\n", testimonial.Content, testimonial.Name, testimonial.Position, testimonial.Company)
		}
	}
}

func renderExperience(data portfolio.Data) {
	fmt.Println("Experience")
	for _, experience := range data.Experiences {
		fmt.Printf("\n%s — %s\n", experience.PositionTitle, experience.CompanyName)
		fmt.Printf("  %s", dateRange(experience.StartDate, experience.EndDate, experience.IsCurrent))
		if experience.Location != "" {
			fmt.Printf(" | %s", experience.Location)
		}
		fmt.Println()
		if experience.Description != "" {
			fmt.Printf("  %s\n", experience.Description)
		}
		for _, achievement := range experience.Achievements {
			fmt.Printf("  - %s\n", achievement)
		}
		if len(experience.Technologies) > 0 {
			fmt.Printf("  Technologies: %s\n", strings.Join(experience.Technologies, ", "))
		}
	}
}

func renderProjects(data portfolio.Data) {
	fmt.Println("Projects")
	for _, project := range data.Projects {
		fmt.Printf("\n%s [%s]\n", project.ProjectName, project.Status)
		fmt.Printf("  %s\n", project.Description)
		fmt.Printf("  %s\n", dateRange(project.StartDate, project.EndDate, project.IsOngoing))
		if len(project.Technologies) > 0 {
			fmt.Printf("  Technologies: %s\n", strings.Join(project.Technologies, ", "))
		}
		if project.ProjectURL != "" {
			fmt.Printf("  URL: %s\n", project.ProjectURL)
		}
		if project.GithubURL != "" {
			fmt.Printf("  Source: %s\n", project.GithubURL)
		}
	}
}

func renderSkills(data portfolio.Data) {
	fmt.Println("Skills")

	// Preserve first-seen category order rather than sorting alphabetically
	categories := make([]string, 0)
	byCategory := make(map[string][]portfolio.Skill)
	for _, skill := range data.Skills {
		if _, seen := byCategory[skill.Category]; !seen {
			categories = append(categories, skill.Category)
		}
		byCategory[skill.Category] = append(byCategory[skill.Category], skill)
	}

	for _, category := range categories {
		fmt.Printf("\n%s:\n", category)
		for _, skill := range byCategory[category] {
			fmt.Printf("  %-16s %s (%d yrs)\n", skill.SkillName, skill.ProficiencyLevel, skill.YearsExperience)
		}
	}
}

func renderContact(data portfolio.Data) {
	info := data.PersonalInfo
	settings := data.Settings

	fmt.Printf("Contact %s\n\n", info.FullName)
	if settings.ShowEmail && info.Email != "" {
		fmt.Printf("Email:    %s\n", info.Email)
	}
	if settings.ShowPhone && info.Phone != "" {
		fmt.Printf("Phone:    %s\n", info.Phone)
	}
	if info.Location != "" {
		fmt.Printf("Location: %s\n", info.Location)
	}
	if info.LinkedinURL != "" {
		fmt.Printf("LinkedIn: %s\n", info.LinkedinURL)
	}
	if info.GithubURL != "" {
		fmt.Printf("GitHub:   %s\n", info.GithubURL)
	}
	if info.WebsiteURL != "" {
		fmt.Printf("Website:  %s\n", info.WebsiteURL)
	}
	if settings.AllowDownloadResume && info.ResumeURL != "" {
		fmt.Printf("Resume:   %s\n", info.ResumeURL)
	}
}

func featuredProjects(projects []portfolio.Project) (featured []portfolio.Project) {
	featured = make([]portfolio.Project, 0)
	for _, project := range projects {
		if project.Featured {
			featured = append(featured, project)
		}
	}
	return featured
}

// dateRange formats a start/end pair. A current position shows "Present"
// regardless of any stored end date.
func dateRange(start string, end *string, current bool) (formatted string) {
	switch {
	case current || end == nil || *end == "":
		formatted = fmt.Sprintf("%s – Present", start)
	default:
		formatted = fmt.Sprintf("%s – %s", start, *end)
	}
	return formatted
}
