package services

import (
	"github.com/justsurfingit/job-board/internal/models"
)

const summaryLength = 100

type BoardStats struct {
	JobsAvailable int `json:"jobsAvailable"`
	Locations     int `json:"locations"`
	Companies     int `json:"companies"`
}

// JobCard is the short form of a job shown in the list.
type JobCard struct {
	ID         uint64         `json:"id"`
	Title      string         `json:"title"`
	Company    string         `json:"company"`
	Location   string         `json:"location"`
	Salary     string         `json:"salary"`
	Type       models.JobType `json:"type"`
	Remote     bool           `json:"remote"`
	PostedDate string         `json:"postedDate"`
	Summary    string         `json:"summary"`
}

type FormOptions struct {
	PostJobTypes    []models.JobType `json:"postJobTypes"`
	SearchJobTypes  []models.JobType `json:"searchJobTypes"`
	SearchLocations []string         `json:"searchLocations"`
}

// BoardView is everything a client needs to draw the page.
type BoardView struct {
	Stats   BoardStats           `json:"stats"`
	Cards   []JobCard            `json:"cards"`
	Modal   ModalState           `json:"modal"`
	Draft   models.JobDraft      `json:"draft"`
	Search  models.SearchFilters `json:"search"`
	Options FormOptions          `json:"options"`
}

func (b *BoardService) View() BoardView {
	jobs := b.VisibleJobs()

	b.mu.Lock()
	modal := b.modalLocked()
	draft := b.draft
	search := b.search
	b.mu.Unlock()

	cards := make([]JobCard, 0, len(jobs))
	for _, job := range jobs {
		cards = append(cards, NewJobCard(job))
	}

	return BoardView{
		Stats:  statsFor(jobs),
		Cards:  cards,
		Modal:  modal,
		Draft:  draft,
		Search: search,
		Options: FormOptions{
			PostJobTypes:    append([]models.JobType(nil), models.PostJobTypes...),
			SearchJobTypes:  append([]models.JobType(nil), models.SearchJobTypes...),
			SearchLocations: append([]string(nil), models.SearchLocations...),
		},
	}
}

func NewJobCard(job models.Job) JobCard {
	return JobCard{
		ID:         job.ID,
		Title:      job.Title,
		Company:    job.Company,
		Location:   job.Location,
		Salary:     job.Salary,
		Type:       job.Type,
		Remote:     job.Remote,
		PostedDate: job.PostedDate,
		Summary:    Summarize(job.Description),
	}
}

// Summarize keeps the first 100 runes of a description and always appends "...".
func Summarize(description string) string {
	r := []rune(description)
	if len(r) > summaryLength {
		r = r[:summaryLength]
	}
	return string(r) + "..."
}

func statsFor(jobs []models.Job) BoardStats {
	locations := make(map[string]struct{})
	companies := make(map[string]struct{})
	for _, job := range jobs {
		locations[job.Location] = struct{}{}
		companies[job.Company] = struct{}{}
	}
	return BoardStats{
		JobsAvailable: len(jobs),
		Locations:     len(locations),
		Companies:     len(companies),
	}
}
