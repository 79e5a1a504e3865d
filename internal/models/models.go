package models

// JobType is the employment type offered by a posting.
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
)

// PostedDateLayout renders dates the way the board shows them, e.g. 1/15/2024.
const PostedDateLayout = "1/2/2006"

// Option sets offered by the two forms. Nothing outside the forms enforces them.
var (
	PostJobTypes    = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship}
	SearchJobTypes  = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeContract}
	SearchLocations = []string{"San Francisco, CA", "New York, NY", "Remote"}
)

type Job struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    string  `json:"location"`
	Salary      string  `json:"salary"`
	Description string  `json:"description"`
	Type        JobType `json:"type"`
	Remote      bool    `json:"remote"`
	PostedDate  string  `json:"postedDate"`
}

// JobDraft holds the uncommitted values of the "post a job" form.
// The zero value is the empty form.
type JobDraft struct {
	Title       string  `json:"title" validate:"required"`
	Company     string  `json:"company" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	Salary      string  `json:"salary" validate:"required"`
	Type        JobType `json:"type" validate:"required"`
	Remote      bool    `json:"remote"`
	Description string  `json:"description" validate:"required"`
}

// SearchFilters holds the search form values. Nothing reads them to narrow the job list.
type SearchFilters struct {
	Keyword  string `json:"keyword"`
	Location string `json:"location"`
	JobType  string `json:"jobType"`
	Remote   bool   `json:"remote"`
}

// SeedJobs returns a fresh copy of the postings present at startup.
func SeedJobs() []Job {
	return []Job{
		{
			ID:          1,
			Title:       "Senior Frontend Developer",
			Company:     "TechCorp Inc.",
			Location:    "San Francisco, CA",
			Salary:      "$120,000 - $160,000",
			Description: "Join our team to build cutting-edge React applications with modern technologies. We are looking for a highly motivated and experienced Senior Frontend Developer to join our growing team. You will be responsible for developing and maintaining our web applications, working closely with our design and backend teams.",
			Type:        JobTypeFullTime,
			Remote:      true,
			PostedDate:  "1/15/2024",
		},
		{
			ID:          2,
			Title:       "Product Manager",
			Company:     "Innovate Solutions",
			Location:    "New York, NY",
			Salary:      "$100,000 - $130,000",
			Description: "Lead product development from conception to launch. Define product strategy, roadmap, and specifications. Work with cross-functional teams to deliver exceptional products.",
			Type:        JobTypeFullTime,
			Remote:      false,
			PostedDate:  "1/20/2024",
		},
		{
			ID:          3,
			Title:       "UX Designer",
			Company:     "Creative Minds",
			Location:    "Remote",
			Salary:      "$90,000 - $110,000",
			Description: "Design intuitive and engaging user experiences for our web and mobile applications. Conduct user research, create wireframes, prototypes, and high-fidelity mockups.",
			Type:        JobTypeContract,
			Remote:      true,
			PostedDate:  "1/22/2024",
		},
	}
}
