package portfolio

// Data is the aggregate root for all portfolio content. It is the unit of
// persistence: the whole value is serialized and written as one snapshot.
// JSON tags match the persisted snapshot layout, so older snapshots missing
// newer fields still load (absent fields stay at their zero value).
type Data struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Experiences    []Experience    `json:"experiences"`
	Education      []Education     `json:"education"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Testimonials   []Testimonial   `json:"testimonials"`
	Settings       Settings        `json:"settings"`
}

// PersonalInfo is a singleton within Data. It is never deleted, only merged
// into via UpdatePersonalInfo.
type PersonalInfo struct {
	FullName        string `json:"fullName"`
	Title           string `json:"title"`
	Tagline         string `json:"tagline,omitempty"`
	Summary         string `json:"summary,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Location        string `json:"location,omitempty"`
	LinkedinURL     string `json:"linkedinUrl,omitempty"`
	GithubURL       string `json:"githubUrl,omitempty"`
	WebsiteURL      string `json:"websiteUrl,omitempty"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
	ResumeURL       string `json:"resumeUrl,omitempty"`
	Availability    string `json:"availability,omitempty"`
}

// Experience is one entry in the work history. Insertion order is display
// order. A nil EndDate means the position is ongoing; when IsCurrent is true
// the end date is treated as absent at display time regardless of its value.
type Experience struct {
	ID            int64    `json:"id"`
	CompanyName   string   `json:"companyName"`
	PositionTitle string   `json:"positionTitle"`
	StartDate     string   `json:"startDate"`
	EndDate       *string  `json:"endDate"`
	IsCurrent     bool     `json:"isCurrent"`
	Location      string   `json:"location,omitempty"`
	Description   string   `json:"description,omitempty"`
	Achievements  []string `json:"achievements"`
	Technologies  []string `json:"technologies"`
}

// Project status values. Free-form strings in the snapshot; these are the
// values the default dataset and the admin UI use.
const (
	StatusInDevelopment = "In Development"
	StatusCompleted     = "Completed"
	StatusOnHold        = "On Hold"
	StatusPlanning      = "Planning"
)

// Project is one portfolio project entry.
type Project struct {
	ID              int64    `json:"id"`
	ProjectName     string   `json:"projectName"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription,omitempty"`
	Technologies    []string `json:"technologies"`
	ProjectURL      string   `json:"projectUrl,omitempty"`
	GithubURL       string   `json:"githubUrl,omitempty"`
	StartDate       string   `json:"startDate"`
	EndDate         *string  `json:"endDate"`
	IsOngoing       bool     `json:"isOngoing"`
	Status          string   `json:"status"`
	Featured        bool     `json:"featured"`
	Images          []string `json:"images"`
	Challenges      string   `json:"challenges,omitempty"`
	Learnings       string   `json:"learnings,omitempty"`
}

// Skill proficiency levels.
const (
	ProficiencyBeginner     = "BEGINNER"
	ProficiencyIntermediate = "INTERMEDIATE"
	ProficiencyAdvanced     = "ADVANCED"
	ProficiencyExpert       = "EXPERT"
)

// Skill is one skill entry. Category is a free-text grouping key.
type Skill struct {
	ID               int64  `json:"id"`
	SkillName        string `json:"skillName"`
	ProficiencyLevel string `json:"proficiencyLevel"`
	Category         string `json:"category"`
	YearsExperience  int    `json:"yearsExperience"`
}

// Education is one education entry. Unlike Experience/Project/Skill the
// collection is replaced wholesale; there is no per-item mutation API.
type Education struct {
	ID              int64    `json:"id"`
	InstitutionName string   `json:"institutionName"`
	DegreeType      string   `json:"degreeType"`
	FieldOfStudy    string   `json:"fieldOfStudy"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate,omitempty"`
	GPA             string   `json:"gpa,omitempty"`
	Location        string   `json:"location,omitempty"`
	Description     string   `json:"description,omitempty"`
	Coursework      []string `json:"coursework"`
}

// Certification is a display-only entity; no mutation operations exist.
type Certification struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Issuer        string  `json:"issuer"`
	IssueDate     string  `json:"issueDate"`
	ExpiryDate    *string `json:"expiryDate"`
	CredentialID  string  `json:"credentialId,omitempty"`
	CredentialURL string  `json:"credentialUrl,omitempty"`
}

// Testimonial is a display-only entity; no mutation operations exist.
type Testimonial struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Company  string `json:"company"`
	Content  string `json:"content"`
	Avatar   string `json:"avatar,omitempty"`
	Rating   int    `json:"rating"`
}

// Settings holds display preferences. The visibility flags and maintenance
// mode are honored by the rendering layer, not by the store itself.
type Settings struct {
	Theme               string `json:"theme"`
	ShowEmail           bool   `json:"showEmail"`
	ShowPhone           bool   `json:"showPhone"`
	AllowDownloadResume bool   `json:"allowDownloadResume"`
	MaintenanceMode     bool   `json:"maintenanceMode"`
}
