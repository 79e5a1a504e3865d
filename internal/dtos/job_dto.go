package dtos

import "github.com/justsurfingit/job-board/internal/models"

// JobCreationRequest is the body of POST /jobs, which appends without going through the draft.
type JobCreationRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Salary      string `json:"salary" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description" binding:"required"`

	// Optional Fields
	Remote bool `json:"remote"`
}

// Draft converts the request into the shape the store appends.
func (r JobCreationRequest) Draft() models.JobDraft {
	return models.JobDraft{
		Title:       r.Title,
		Company:     r.Company,
		Location:    r.Location,
		Salary:      r.Salary,
		Type:        models.JobType(r.Type),
		Remote:      r.Remote,
		Description: r.Description,
	}
}

// FieldUpdateRequest is one input change: {"name": "remote", "value": true}.
// Value stays untyped so checkbox fields can carry a bool.
type FieldUpdateRequest struct {
	Name  string `json:"name" binding:"required"`
	Value any    `json:"value"`
}

type SelectRequest struct {
	ID uint64 `json:"id" binding:"required"`
}

type ErrorResponse struct {
	Error  string   `json:"error"`
	Code   string   `json:"code,omitempty"`
	Fields []string `json:"fields,omitempty"`
}
