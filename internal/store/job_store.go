package store

import (
	"sync"
	"time"

	"github.com/justsurfingit/job-board/internal/models"
)

// JobStore is the ordered, append-only collection of postings.
// It lives only as long as the process.
type JobStore struct {
	mu     sync.RWMutex
	jobs   []models.Job
	lastID uint64
	clock  func() time.Time
}

// New builds a store holding seed in the given order. A nil clock means time.Now.
func New(clock func() time.Time, seed ...models.Job) *JobStore {
	if clock == nil {
		clock = time.Now
	}
	s := &JobStore{
		jobs:  make([]models.Job, 0, len(seed)),
		clock: clock,
	}
	for _, job := range seed {
		s.jobs = append(s.jobs, job)
		if job.ID > s.lastID {
			s.lastID = job.ID
		}
	}
	return s
}

// Append turns a draft into a posting, stamps it with a fresh ID and today's
// date and adds it to the end of the collection.
func (s *JobStore) Append(draft models.JobDraft) models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	job := models.Job{
		ID:          s.lastID,
		Title:       draft.Title,
		Company:     draft.Company,
		Location:    draft.Location,
		Salary:      draft.Salary,
		Description: draft.Description,
		Type:        draft.Type,
		Remote:      draft.Remote,
		PostedDate:  s.clock().Format(models.PostedDateLayout),
	}
	s.jobs = append(s.jobs, job)
	return job
}

// List returns a copy of every posting in insertion order.
func (s *JobStore) List() []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Job, len(s.jobs))
	copy(out, s.jobs)
	return out
}

func (s *JobStore) Get(id uint64) (models.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, job := range s.jobs {
		if job.ID == id {
			return job, true
		}
	}
	return models.Job{}, false
}

func (s *JobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}
