// Package store holds the canonical in-memory portfolio state and the admin
// session flag. It is the sole writer of both: consumers read the current
// value, invoke the mutation operations, and get notified after every
// successful mutation. Each mutation re-serializes the full snapshot through
// the storage adapter, in program order.
package store

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/huutaile/portfolio-admin/pkg/portfolio"
	"github.com/huutaile/portfolio-admin/pkg/storage"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Observer receives a copy of the portfolio data after each mutation.
// Observers run synchronously, in subscription order, before the mutation
// call returns.
type Observer func(portfolio.Data)

// Store is the single source of truth for portfolio content and the admin
// session. Create one per process with New and share it between consumers.
type Store struct {
	mu        sync.RWMutex
	data      portfolio.Data
	isAdmin   bool
	unsaved   bool
	adapter   *storage.Adapter
	node      *snowflake.Node
	observers []Observer
	logger    *zap.Logger
}

// New builds a Store and runs the initialization protocol: state starts at
// the built-in defaults, is wholesale-replaced by a persisted snapshot when
// one loads, and the admin flag is restored from its slot. A nil logger is
// replaced with a no-op logger.
func New(adapter *storage.Adapter, logger *zap.Logger) (s *Store, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Entity ids come from a snowflake node rather than wall-clock
	// milliseconds, so two adds in the same millisecond still get distinct
	// ids.
	node, err := snowflake.NewNode(1)
	if err != nil {
		err = errors.Wrap(err, "failed to create id generator")
		return nil, err
	}

	s = &Store{
		data:    portfolio.Default(),
		adapter: adapter,
		node:    node,
		logger:  logger,
	}

	if loaded, ok := adapter.Load(); ok {
		// Full replace, not a merge.
		s.data = *loaded
	}
	s.isAdmin = adapter.LoadAdminFlag()

	return s, err
}

// Data returns a deep copy of the current portfolio data.
func (s *Store) Data() (data portfolio.Data) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data = s.data.Clone()
	return data
}

// IsAdmin reports whether the admin session is active.
func (s *Store) IsAdmin() (isAdmin bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	isAdmin = s.isAdmin
	return isAdmin
}

// Unsaved reports whether the most recent persistence write failed. Edits
// stay available in memory; consumers should warn that changes may not
// survive a restart.
func (s *Store) Unsaved() (unsaved bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	unsaved = s.unsaved
	return unsaved
}

// Subscribe registers an observer for mutation notifications.
func (s *Store) Subscribe(observer Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

// mutate applies fn to the canonical value, persists the new snapshot, and
// notifies observers. The in-memory update is atomic with respect to readers;
// a failed persistence write is logged and flagged but never rolls back the
// in-memory state.
func (s *Store) mutate(fn func(data *portfolio.Data)) {
	s.mu.Lock()
	fn(&s.data)

	err := s.adapter.Save(s.data)
	if err != nil {
		s.unsaved = true
		s.logger.Warn("failed to persist snapshot, changes may not be saved", zap.Error(err))
	} else {
		s.unsaved = false
	}

	snapshot := s.data.Clone()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, observer := range observers {
		observer(snapshot)
	}
}

// UpdatePersonalInfo shallow-merges patch into the personal info. Field
// values are not validated; an empty string is accepted anywhere.
func (s *Store) UpdatePersonalInfo(patch Patch) (err error) {
	var merged portfolio.PersonalInfo
	var applyErr error
	s.mutate(func(data *portfolio.Data) {
		merged, applyErr = applyPatch(data.PersonalInfo, patch)
		if applyErr == nil {
			data.PersonalInfo = merged
		}
	})
	if applyErr != nil {
		err = errors.Wrap(applyErr, "failed to update personal info")
	}
	return err
}

// AddExperience appends an experience with a freshly minted id and returns
// the id.
func (s *Store) AddExperience(experience portfolio.Experience) (id int64, err error) {
	id = s.node.Generate().Int64()
	experience.ID = id
	s.mutate(func(data *portfolio.Data) {
		data.Experiences = append(data.Experiences, experience)
	})
	return id, err
}

// UpdateExperience shallow-merges patch onto the experience with the given
// id. An unknown id is a silent no-op.
func (s *Store) UpdateExperience(id int64, patch Patch) (err error) {
	var applyErr error
	s.mutate(func(data *portfolio.Data) {
		for i, experience := range data.Experiences {
			if experience.ID != id {
				continue
			}
			var merged portfolio.Experience
			merged, applyErr = applyPatch(experience, patch)
			if applyErr == nil {
				data.Experiences[i] = merged
			}
			return
		}
	})
	if applyErr != nil {
		err = errors.Wrapf(applyErr, "failed to update experience %d", id)
	}
	return err
}

// DeleteExperience removes the experience with the given id. An unknown id
// is a silent no-op; nothing else is touched.
func (s *Store) DeleteExperience(id int64) (err error) {
	s.mutate(func(data *portfolio.Data) {
		data.Experiences = deleteByID(data.Experiences, id, func(e portfolio.Experience) int64 { return e.ID })
	})
	return err
}

// ReplaceExperiences replaces the whole collection.
func (s *Store) ReplaceExperiences(experiences []portfolio.Experience) (err error) {
	s.mutate(func(data *portfolio.Data) {
		data.Experiences = experiences
	})
	return err
}

// AddProject appends a project with a freshly minted id and returns the id.
func (s *Store) AddProject(project portfolio.Project) (id int64, err error) {
	id = s.node.Generate().Int64()
	project.ID = id
	s.mutate(func(data *portfolio.Data) {
		data.Projects = append(data.Projects, project)
	})
	return id, err
}

// UpdateProject shallow-merges patch onto the project with the given id. An
// unknown id is a silent no-op.
func (s *Store) UpdateProject(id int64, patch Patch) (err error) {
	var applyErr error
	s.mutate(func(data *portfolio.Data) {
		for i, project := range data.Projects {
			if project.ID != id {
				continue
			}
			var merged portfolio.Project
			merged, applyErr = applyPatch(project, patch)
			if applyErr == nil {
				data.Projects[i] = merged
			}
			return
		}
	})
	if applyErr != nil {
		err = errors.Wrapf(applyErr, "failed to update project %d", id)
	}
	return err
}

// DeleteProject removes the project with the given id. An unknown id is a
// silent no-op.
func (s *Store) DeleteProject(id int64) (err error) {
	s.mutate(func(data *portfolio.Data) {
		data.Projects = deleteByID(data.Projects, id, func(p portfolio.Project) int64 { return p.ID })
	})
	return err
}

// ReplaceProjects replaces the whole collection.
func (s *Store) ReplaceProjects(projects []portfolio.Project) (err error) {
	s.mutate(func(data *portfolio.Data) {
		data.Projects = projects
	})
	return err
}

// AddSkill appends a skill with a freshly minted id and returns the id.
func (s *Store) AddSkill(skill portfolio.Skill) (id int64, err error) {
	id = s.node.Generate().Int64()
	skill.ID = id
	s.mutate(func(data *portfolio.Data) {
		data.Skills = append(data.Skills, skill)
	})
	return id, err
}

// UpdateSkill shallow-merges patch onto the skill with the given id. An
// unknown id is a silent no-op.
func (s *Store) UpdateSkill(id int64, patch Patch) (err error) {
	var applyErr error
	s.mutate(func(data *portfolio.Data) {
		for i, skill := range data.Skills {
			if skill.ID != id {
				continue
			}
			var merged portfolio.Skill
			merged, applyErr = applyPatch(skill, patch)
			if applyErr == nil {
				data.Skills[i] = merged
			}
			return
		}
	})
	if applyErr != nil {
		err = errors.Wrapf(applyErr, "failed to update skill %d", id)
	}
	return err
}

// DeleteSkill removes the skill with the given id. An unknown id is a
// silent no-op.
func (s *Store) DeleteSkill(id int64) (err error) {
	s.mutate(func(data *portfolio.Data) {
		data.Skills = deleteByID(data.Skills, id, func(sk portfolio.Skill) int64 { return sk.ID })
	})
	return err
}

// ReplaceSkills replaces the whole collection.
func (s *Store) ReplaceSkills(skills []portfolio.Skill) (err error) {
	s.mutate(func(data *portfolio.Data) {
		data.Skills = skills
	})
	return err
}

// UpdateEducation replaces the education collection wholesale. Education has
// no per-item mutation API; the collection is always written as a unit.
func (s *Store) UpdateEducation(education []portfolio.Education) (err error) {
	s.mutate(func(data *portfolio.Data) {
		data.Education = education
	})
	return err
}

// UpdateSettings shallow-merges patch into the display settings.
func (s *Store) UpdateSettings(patch Patch) (err error) {
	var applyErr error
	s.mutate(func(data *portfolio.Data) {
		var merged portfolio.Settings
		merged, applyErr = applyPatch(data.Settings, patch)
		if applyErr == nil {
			data.Settings = merged
		}
	})
	if applyErr != nil {
		err = errors.Wrap(applyErr, "failed to update settings")
	}
	return err
}

// Reset restores the built-in default dataset.
func (s *Store) Reset() (err error) {
	s.mutate(func(data *portfolio.Data) {
		*data = portfolio.Default()
	})
	return err
}

func deleteByID[T any](items []T, id int64, idOf func(T) int64) (kept []T) {
	kept = make([]T, 0, len(items))
	for _, item := range items {
		if idOf(item) == id {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}
