package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/justsurfingit/job-board/internal/apperrors"
	"github.com/justsurfingit/job-board/internal/dtos"
	"github.com/justsurfingit/job-board/internal/metrics"
	"github.com/justsurfingit/job-board/internal/models"
	"github.com/justsurfingit/job-board/internal/store"
	"go.uber.org/zap"
)

// ModalState is the job detail modal. Open is true exactly when Job is set.
type ModalState struct {
	Open bool        `json:"open"`
	Job  *models.Job `json:"job"`
}

// BoardService owns the job store plus the form drafts and modal selection
// that sit in front of it.
type BoardService struct {
	Store   *store.JobStore
	Logger  *zap.Logger
	Metrics *metrics.Metrics

	validate *validator.Validate

	mu       sync.Mutex
	draft    models.JobDraft
	search   models.SearchFilters
	selected *models.Job
}

func NewBoardService(s *store.JobStore, logger *zap.Logger, m *metrics.Metrics) *BoardService {
	v := validator.New()
	// report json names so errors line up with form input names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	m.JobsTotal.Set(float64(s.Len()))
	return &BoardService{
		Store:    s,
		Logger:   logger,
		Metrics:  m,
		validate: v,
	}
}

// SetDraftField merges one input change into the new-job draft.
// remote takes a bool, every other field a string.
func (b *BoardService) SetDraftField(name string, value any) (models.JobDraft, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	next := b.draft
	var err error
	switch name {
	case "title":
		next.Title, err = stringValue(name, value)
	case "company":
		next.Company, err = stringValue(name, value)
	case "location":
		next.Location, err = stringValue(name, value)
	case "salary":
		next.Salary, err = stringValue(name, value)
	case "description":
		next.Description, err = stringValue(name, value)
	case "type":
		var s string
		s, err = stringValue(name, value)
		next.Type = models.JobType(s)
	case "remote":
		next.Remote, err = boolValue(name, value)
	default:
		return b.draft, apperrors.New(apperrors.ErrCodeUnknownField,
			fmt.Sprintf("unknown draft field %q", name), name)
	}
	if err != nil {
		return b.draft, err
	}

	b.draft = next
	return b.draft, nil
}

// SetSearchField merges one input change into the search filters.
func (b *BoardService) SetSearchField(name string, value any) (models.SearchFilters, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	next := b.search
	var err error
	switch name {
	case "keyword":
		next.Keyword, err = stringValue(name, value)
	case "location":
		next.Location, err = stringValue(name, value)
	case "jobType":
		next.JobType, err = stringValue(name, value)
	case "remote":
		next.Remote, err = boolValue(name, value)
	default:
		return b.search, apperrors.New(apperrors.ErrCodeUnknownField,
			fmt.Sprintf("unknown search field %q", name), name)
	}
	if err != nil {
		return b.search, err
	}

	b.search = next
	return b.search, nil
}

func (b *BoardService) Draft() models.JobDraft {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.draft
}

func (b *BoardService) SearchFilters() models.SearchFilters {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.search
}

// Submit posts the current draft. Every field except remote must be non-empty;
// otherwise nothing changes and the missing fields are reported.
func (b *BoardService) Submit() (models.Job, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if missing := b.missingFields(b.draft); len(missing) > 0 {
		b.Metrics.DraftRejections.Inc()
		b.Logger.Warn("draft submission refused", zap.Strings("missing", missing))
		return models.Job{}, apperrors.New(apperrors.ErrCodeDraftIncomplete,
			"required fields are empty: "+strings.Join(missing, ", "), missing...)
	}

	job := b.Store.Append(b.draft)
	b.draft = models.JobDraft{}
	b.recordPosted(job, metrics.SourceDraft)
	return job, nil
}

// Post appends a job straight from an API request, leaving the draft alone.
func (b *BoardService) Post(req dtos.JobCreationRequest) (models.Job, error) {
	draft := req.Draft()
	if missing := b.missingFields(draft); len(missing) > 0 {
		return models.Job{}, apperrors.New(apperrors.ErrCodeInvalidRequest,
			"required fields are empty: "+strings.Join(missing, ", "), missing...)
	}

	job := b.Store.Append(draft)
	b.recordPosted(job, metrics.SourceAPI)
	return job, nil
}

// Select opens the modal on the job with the given id.
func (b *BoardService) Select(id uint64) (models.Job, error) {
	job, ok := b.Store.Get(id)
	if !ok {
		return models.Job{}, apperrors.New(apperrors.ErrCodeJobNotFound,
			fmt.Sprintf("job %d not found", id))
	}

	b.mu.Lock()
	b.selected = &job
	b.mu.Unlock()

	b.Metrics.SelectionsOpened.Inc()
	b.Logger.Info("job selected", zap.Uint64("job_id", id))
	return job, nil
}

// Close shuts the modal and clears the selection.
func (b *BoardService) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.selected = nil
}

func (b *BoardService) Modal() ModalState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.modalLocked()
}

func (b *BoardService) modalLocked() ModalState {
	if b.selected == nil {
		return ModalState{}
	}
	job := *b.selected
	return ModalState{Open: true, Job: &job}
}

// VisibleJobs is the list the board shows. Search filters do not narrow it.
func (b *BoardService) VisibleJobs() []models.Job {
	return b.Store.List()
}

func (b *BoardService) recordPosted(job models.Job, source string) {
	b.Metrics.JobsPosted.WithLabelValues(source).Inc()
	b.Metrics.JobsTotal.Set(float64(b.Store.Len()))
	b.Logger.Info("job posted",
		zap.Uint64("job_id", job.ID),
		zap.String("title", job.Title),
		zap.String("source", source),
	)
}

func (b *BoardService) missingFields(draft models.JobDraft) []string {
	err := b.validate.Struct(draft)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// only reachable on a non-struct argument
		return []string{err.Error()}
	}
	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return missing
}

func stringValue(name string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", apperrors.New(apperrors.ErrCodeInvalidFieldValue,
			fmt.Sprintf("field %q takes a string, got %T", name, value), name)
	}
	return s, nil
}

func boolValue(name string, value any) (bool, error) {
	v, ok := value.(bool)
	if !ok {
		return false, apperrors.New(apperrors.ErrCodeInvalidFieldValue,
			fmt.Sprintf("field %q takes a bool, got %T", name, value), name)
	}
	return v, nil
}
