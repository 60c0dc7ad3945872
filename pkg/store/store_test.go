package store

import (
	"os"
	"reflect"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/huutaile/portfolio-admin/pkg/portfolio"
	"github.com/huutaile/portfolio-admin/pkg/storage"
	"github.com/pkg/errors"
)

func newTestStore(t *testing.T) (s *Store, fs billy.Filesystem) {
	t.Helper()
	fs = memfs.New()
	s, err := New(storage.New(fs, nil), nil)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return s, fs
}

func TestInitialDataEqualsDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	if !reflect.DeepEqual(s.Data(), portfolio.Default()) {
		t.Error("Expected initial data to equal the built-in defaults exactly")
	}
	if s.IsAdmin() {
		t.Error("Expected initial session to be anonymous")
	}
}

func TestPersistedSnapshotReplacesDefaults(t *testing.T) {
	fs := memfs.New()
	adapter := storage.New(fs, nil)

	persisted := portfolio.Default()
	persisted.PersonalInfo.FullName = "Persisted Person"
	persisted.Skills = nil
	err := adapter.Save(persisted)
	if err != nil {
		t.Fatalf("Failed to seed snapshot: %v", err)
	}

	s, err := New(adapter, nil)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	data := s.Data()
	if data.PersonalInfo.FullName != "Persisted Person" {
		t.Errorf("Expected persisted name, got '%s'", data.PersonalInfo.FullName)
	}

	// Full replace, not a merge: the persisted empty skill list wins over
	// the default 22 entries.
	if len(data.Skills) != 0 {
		t.Errorf("Expected 0 skills after full replace, got %d", len(data.Skills))
	}
}

func TestCorruptSnapshotFallsBackToDefaults(t *testing.T) {
	fs := memfs.New()
	err := writeSlot(fs, "portfolioData.json", "{{{ not json")
	if err != nil {
		t.Fatalf("Failed to write corrupt slot: %v", err)
	}

	s, err := New(storage.New(fs, nil), nil)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	if !reflect.DeepEqual(s.Data(), portfolio.Default()) {
		t.Error("Expected corrupt snapshot to fall back to defaults")
	}
}

func TestAddExperienceDistinctIDs(t *testing.T) {
	s, _ := newTestStore(t)

	// Two adds issued back-to-back, well inside one millisecond.
	idA, err := s.AddExperience(portfolio.Experience{CompanyName: "A Corp"})
	if err != nil {
		t.Fatalf("Failed to add experience: %v", err)
	}
	idB, err := s.AddExperience(portfolio.Experience{CompanyName: "B Corp"})
	if err != nil {
		t.Fatalf("Failed to add experience: %v", err)
	}

	if idA == idB {
		t.Errorf("Expected distinct ids, both were %d", idA)
	}

	experiences := s.Data().Experiences
	if len(experiences) != 5 {
		t.Fatalf("Expected 5 experiences (3 defaults + 2 added), got %d", len(experiences))
	}
	if experiences[3].CompanyName != "A Corp" || experiences[4].CompanyName != "B Corp" {
		t.Error("Expected added experiences appended in call order")
	}
}

func TestUpdateSkillTargetsOnlyMatch(t *testing.T) {
	s, _ := newTestStore(t)

	before := s.Data().Skills
	target := before[2].ID

	err := s.UpdateSkill(target, Patch{"yearsExperience": 9})
	if err != nil {
		t.Fatalf("Failed to update skill: %v", err)
	}

	after := s.Data().Skills
	if len(after) != len(before) {
		t.Fatalf("Expected skill count unchanged, got %d", len(after))
	}

	for i := range after {
		if after[i].ID == target {
			if after[i].YearsExperience != 9 {
				t.Errorf("Expected target skill yearsExperience 9, got %d", after[i].YearsExperience)
			}
			if after[i].SkillName != before[i].SkillName {
				t.Error("Expected untouched fields of the target to survive the patch")
			}
			continue
		}
		if !reflect.DeepEqual(after[i], before[i]) {
			t.Errorf("Expected skill %d to be unchanged", after[i].ID)
		}
	}
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	before := s.Data()

	err := s.UpdateExperience(99999, Patch{"companyName": "Ghost Corp"})
	if err != nil {
		t.Fatalf("Expected silent no-op, got error: %v", err)
	}

	if !reflect.DeepEqual(s.Data(), before) {
		t.Error("Expected update of unknown id to change nothing")
	}
}

func TestDeleteProjectRemovesExactlyOne(t *testing.T) {
	s, _ := newTestStore(t)

	before := s.Data().Projects
	target := before[1].ID

	err := s.DeleteProject(target)
	if err != nil {
		t.Fatalf("Failed to delete project: %v", err)
	}

	after := s.Data().Projects
	if len(after) != len(before)-1 {
		t.Fatalf("Expected %d projects after delete, got %d", len(before)-1, len(after))
	}
	for _, project := range after {
		if project.ID == target {
			t.Errorf("Expected project %d to be gone", target)
		}
	}

	// Deleting the same id again is a no-op.
	err = s.DeleteProject(target)
	if err != nil {
		t.Fatalf("Expected repeat delete to be a silent no-op, got error: %v", err)
	}
	if len(s.Data().Projects) != len(after) {
		t.Error("Expected repeat delete to change nothing")
	}
}

func TestLoginGate(t *testing.T) {
	s, _ := newTestStore(t)

	tests := []struct {
		name        string
		credentials Credentials
		want        bool
	}{
		{name: "valid", credentials: Credentials{Username: "admin", Password: "admin123"}, want: true},
		{name: "wrong password", credentials: Credentials{Username: "admin", Password: "nope"}, want: false},
		{name: "wrong username", credentials: Credentials{Username: "x", Password: "y"}, want: false},
		{name: "empty", credentials: Credentials{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Logout()
			ok := s.Login(tt.credentials)
			if ok != tt.want {
				t.Errorf("Expected login result %t, got %t", tt.want, ok)
			}
			if s.IsAdmin() != tt.want {
				t.Errorf("Expected isAdmin %t after login, got %t", tt.want, s.IsAdmin())
			}
		})
	}
}

func TestFailedLoginLeavesSessionUntouched(t *testing.T) {
	s, _ := newTestStore(t)

	ok := s.Login(Credentials{Username: "admin", Password: "admin123"})
	if !ok {
		t.Fatal("Expected valid login to succeed")
	}

	// A later failed attempt must not end the active session.
	ok = s.Login(Credentials{Username: "admin", Password: "wrong"})
	if ok {
		t.Error("Expected invalid login to fail")
	}
	if !s.IsAdmin() {
		t.Error("Expected failed login to leave the active session untouched")
	}
}

func TestLogoutAlwaysAnonymous(t *testing.T) {
	s, _ := newTestStore(t)

	// Logout from an anonymous session is harmless.
	s.Logout()
	if s.IsAdmin() {
		t.Error("Expected anonymous after logout")
	}

	s.Login(Credentials{Username: "admin", Password: "admin123"})
	s.Logout()
	if s.IsAdmin() {
		t.Error("Expected anonymous after logout of an admin session")
	}
}

func TestSessionSurvivesReload(t *testing.T) {
	fs := memfs.New()
	adapter := storage.New(fs, nil)

	s, err := New(adapter, nil)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	ok := s.Login(Credentials{Username: "admin", Password: "admin123"})
	if !ok {
		t.Fatal("Expected login to succeed")
	}

	// A fresh store on the same slots simulates a page reload.
	reloaded, err := New(storage.New(fs, nil), nil)
	if err != nil {
		t.Fatalf("Failed to create reloaded store: %v", err)
	}
	if !reloaded.IsAdmin() {
		t.Error("Expected admin session to survive reinitialization")
	}

	s.Logout()
	reloaded, err = New(storage.New(fs, nil), nil)
	if err != nil {
		t.Fatalf("Failed to create reloaded store: %v", err)
	}
	if reloaded.IsAdmin() {
		t.Error("Expected anonymous session after logout and reinitialization")
	}
}

func TestMutationsSurviveReload(t *testing.T) {
	fs := memfs.New()

	s, err := New(storage.New(fs, nil), nil)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	err = s.UpdatePersonalInfo(Patch{"email": "reloaded@example.com"})
	if err != nil {
		t.Fatalf("Failed to update personal info: %v", err)
	}

	reloaded, err := New(storage.New(fs, nil), nil)
	if err != nil {
		t.Fatalf("Failed to create reloaded store: %v", err)
	}
	if got := reloaded.Data().PersonalInfo.Email; got != "reloaded@example.com" {
		t.Errorf("Expected persisted email, got '%s'", got)
	}
}

func TestEndToEndExperienceScenario(t *testing.T) {
	s, _ := newTestStore(t)

	original := s.Data().Experiences
	if len(original) != 3 {
		t.Fatalf("Expected 3 default experiences, got %d", len(original))
	}

	id, err := s.AddExperience(portfolio.Experience{
		CompanyName:   "Acme",
		PositionTitle: "Engineer",
		StartDate:     "2025-01-01",
		IsCurrent:     true,
		Technologies:  []string{},
		Achievements:  []string{},
	})
	if err != nil {
		t.Fatalf("Failed to add experience: %v", err)
	}

	grown := s.Data().Experiences
	if len(grown) != 4 {
		t.Fatalf("Expected 4 experiences after add, got %d", len(grown))
	}
	if grown[3].CompanyName != "Acme" {
		t.Errorf("Expected last entry 'Acme', got '%s'", grown[3].CompanyName)
	}

	err = s.DeleteExperience(id)
	if err != nil {
		t.Fatalf("Failed to delete experience: %v", err)
	}

	final := s.Data().Experiences
	if len(final) != 3 {
		t.Fatalf("Expected 3 experiences after delete, got %d", len(final))
	}
	if !reflect.DeepEqual(final, original) {
		t.Error("Expected original entries unchanged and in original order")
	}
}

func TestObserversNotifiedBeforeReturn(t *testing.T) {
	s, _ := newTestStore(t)

	var observed []portfolio.Data
	s.Subscribe(func(data portfolio.Data) {
		observed = append(observed, data)
	})

	err := s.UpdatePersonalInfo(Patch{"tagline": "observed"})
	if err != nil {
		t.Fatalf("Failed to update personal info: %v", err)
	}

	if len(observed) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(observed))
	}
	if observed[0].PersonalInfo.Tagline != "observed" {
		t.Error("Expected observer to see the post-mutation value")
	}
}

func TestUpdateEducationWholesale(t *testing.T) {
	s, _ := newTestStore(t)

	replacement := []portfolio.Education{
		{ID: 10, InstitutionName: "MIT", DegreeType: "Master of Science", FieldOfStudy: "EECS", StartDate: "2021-09-01", Coursework: []string{"Distributed Systems"}},
		{ID: 11, InstitutionName: "Stanford", DegreeType: "Certificate", FieldOfStudy: "ML", StartDate: "2023-01-01", Coursework: []string{}},
	}

	err := s.UpdateEducation(replacement)
	if err != nil {
		t.Fatalf("Failed to update education: %v", err)
	}

	if !reflect.DeepEqual(s.Data().Education, replacement) {
		t.Error("Expected education collection to be replaced wholesale")
	}
}

func TestReplaceCollections(t *testing.T) {
	s, _ := newTestStore(t)

	skills := []portfolio.Skill{{ID: 1, SkillName: "Go", ProficiencyLevel: portfolio.ProficiencyAdvanced, Category: "Backend", YearsExperience: 3}}
	err := s.ReplaceSkills(skills)
	if err != nil {
		t.Fatalf("Failed to replace skills: %v", err)
	}
	if !reflect.DeepEqual(s.Data().Skills, skills) {
		t.Error("Expected skills to be replaced wholesale")
	}

	err = s.ReplaceExperiences(nil)
	if err != nil {
		t.Fatalf("Failed to replace experiences: %v", err)
	}
	if len(s.Data().Experiences) != 0 {
		t.Error("Expected experiences to be cleared")
	}

	err = s.ReplaceProjects(nil)
	if err != nil {
		t.Fatalf("Failed to replace projects: %v", err)
	}
	if len(s.Data().Projects) != 0 {
		t.Error("Expected projects to be cleared")
	}
}

func TestUpdateSettings(t *testing.T) {
	s, _ := newTestStore(t)

	err := s.UpdateSettings(Patch{"showEmail": false, "maintenanceMode": true})
	if err != nil {
		t.Fatalf("Failed to update settings: %v", err)
	}

	settings := s.Data().Settings
	if settings.ShowEmail {
		t.Error("Expected showEmail false")
	}
	if !settings.MaintenanceMode {
		t.Error("Expected maintenanceMode true")
	}
	// Untouched settings keep their defaults.
	if !settings.ShowPhone || !settings.AllowDownloadResume || settings.Theme != "light" {
		t.Error("Expected unpatched settings to keep their values")
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.AddSkill(portfolio.Skill{SkillName: "Temporary"})
	if err != nil {
		t.Fatalf("Failed to add skill: %v", err)
	}

	err = s.Reset()
	if err != nil {
		t.Fatalf("Failed to reset: %v", err)
	}

	if !reflect.DeepEqual(s.Data(), portfolio.Default()) {
		t.Error("Expected reset to restore the default dataset exactly")
	}
}

func TestUnsavedOnWriteFailure(t *testing.T) {
	s, err := New(storage.New(failingFS{memfs.New()}, nil), nil)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	err = s.UpdatePersonalInfo(Patch{"email": "lost@example.com"})
	if err != nil {
		t.Fatalf("Expected mutation to succeed in memory, got %v", err)
	}

	// The in-memory edit sticks even though persistence failed.
	if got := s.Data().PersonalInfo.Email; got != "lost@example.com" {
		t.Errorf("Expected in-memory edit to survive a write failure, got '%s'", got)
	}
	if !s.Unsaved() {
		t.Error("Expected Unsaved to report the failed write")
	}
}

func TestDataReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t)

	data := s.Data()
	data.PersonalInfo.FullName = "Mutated Copy"
	data.Experiences[0].CompanyName = "Mutated Copy Inc."

	fresh := s.Data()
	if fresh.PersonalInfo.FullName == "Mutated Copy" {
		t.Error("Expected mutating a returned copy to leave the store untouched")
	}
	if fresh.Experiences[0].CompanyName == "Mutated Copy Inc." {
		t.Error("Expected nested slices of a returned copy to be detached from the store")
	}
}

// failingFS rejects every write, simulating a full storage medium.
type failingFS struct {
	billy.Filesystem
}

func (f failingFS) OpenFile(filename string, flag int, perm os.FileMode) (file billy.File, err error) {
	err = errors.New("storage medium rejected the write")
	return nil, err
}

func (f failingFS) Create(filename string) (file billy.File, err error) {
	err = errors.New("storage medium rejected the write")
	return nil, err
}

func writeSlot(fs billy.Filesystem, name, content string) (err error) {
	file, err := fs.Create(name)
	if err != nil {
		return err
	}
	_, err = file.Write([]byte(content))
	if err != nil {
		_ = file.Close()
		return err
	}
	err = file.Close()
	return err
}
