package domain

import (
	"context"
	"errors"
	"io"
	"time"
)

// CandidateStatus is the hiring-workflow state of a candidate.
// The set is closed; anything else is rejected at the validation boundary.
type CandidateStatus string

const (
	StatusNew         CandidateStatus = "New"
	StatusScreening   CandidateStatus = "Screening"
	StatusInterviewed CandidateStatus = "Interviewed"
	StatusPass        CandidateStatus = "Pass"
	StatusFail        CandidateStatus = "Fail"
	StatusOnHold      CandidateStatus = "On Hold"
)

// Statuses lists every valid CandidateStatus, in workflow order.
var Statuses = []CandidateStatus{
	StatusNew, StatusScreening, StatusInterviewed, StatusPass, StatusFail, StatusOnHold,
}

// EducationLevel is the closed set of accepted education levels.
type EducationLevel string

const (
	EducationBachelor EducationLevel = "Bachelor"
	EducationMaster   EducationLevel = "Master"
	EducationPhD      EducationLevel = "PhD"
	EducationOther    EducationLevel = "Other"
)

var (
	// ErrNotFound signals that an id does not resolve to a candidate.
	ErrNotFound = errors.New("candidate not found")
	// ErrUploadFailed signals that the blob store rejected a resume upload.
	// No write happens when this is returned.
	ErrUploadFailed = errors.New("resume upload failed")
)

// Candidate is the single persisted entity of the system.
// ID and CreatedAt are assigned by the store and immutable afterwards.
type Candidate struct {
	ID string `json:"id"`

	// Profile
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	City  string `json:"city"`

	// Education
	Institute      string         `json:"institute"`
	EducationLevel EducationLevel `json:"educationLevel"`
	GraduationYear int            `json:"graduationYear"`

	// Professional
	CurrentPosition string `json:"currentPosition"`
	CurrentCompany  string `json:"currentCompany,omitempty"`
	ExperienceYears int    `json:"experienceYears"`
	NoticePeriod    string `json:"noticePeriod"`
	ReasonToSwitch  string `json:"reasonToSwitch"`
	AppliedPosition string `json:"appliedPosition"`

	// Compensation
	CurrentSalary          float64  `json:"currentSalary"`
	ExpectedSalary         float64  `json:"expectedSalary"`
	ExpectedSalaryPartTime *float64 `json:"expectedSalaryPartTime,omitempty"`

	// Attachments. The three resume fields are written together or not at all.
	ResumeFile     string `json:"resumeFile,omitempty"`
	ResumeFileName string `json:"resumeFileName,omitempty"`
	ResumeFileType string `json:"resumeFileType,omitempty"`
	LoomLink       string `json:"loomLink,omitempty"`

	// Hiring workflow
	Status             CandidateStatus `json:"status"`
	HrRemarks          string          `json:"hrRemarks,omitempty"`
	InterviewerRemarks string          `json:"interviewerRemarks,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ResumeRef is the durable reference produced by uploading a resume file.
type ResumeRef struct {
	URL      string
	FileName string
	FileType string
}

// CandidatePatch is a partial update. Nil fields are left untouched.
// Resume is grouped: when set, all three resume columns change together.
type CandidatePatch struct {
	Name  *string
	Email *string
	Phone *string
	City  *string

	Institute      *string
	EducationLevel *EducationLevel
	GraduationYear *int

	CurrentPosition *string
	CurrentCompany  *string
	ExperienceYears *int
	NoticePeriod    *string
	ReasonToSwitch  *string
	AppliedPosition *string

	CurrentSalary          *float64
	ExpectedSalary         *float64
	ExpectedSalaryPartTime *float64

	Resume   *ResumeRef
	LoomLink *string

	Status             *CandidateStatus
	HrRemarks          *string
	InterviewerRemarks *string
}

// UploadedFile describes a file received on a multipart request.
type UploadedFile struct {
	FileName    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// CandidateRepository is the persistence contract for the candidate
// collection. Unknown ids map to ErrNotFound; any other failure is a storage
// error the caller may surface but this layer never retries.
type CandidateRepository interface {
	Create(ctx context.Context, c *Candidate) error
	GetByID(ctx context.Context, id string) (*Candidate, error)
	Update(ctx context.Context, id string, patch *CandidatePatch) (*Candidate, error)
	Delete(ctx context.Context, id string) error

	// List applies the query's predicate, sort and page window over the
	// collection. positions is the distinct set of applied positions over the
	// ENTIRE collection, not the filtered subset.
	List(ctx context.Context, q ListQuery) (items []Candidate, total int64, positions []string, err error)
}

// CandidateUsecase is the application-level contract consumed by the HTTP
// delivery layer.
type CandidateUsecase interface {
	Create(ctx context.Context, input *CandidateInput, resume *UploadedFile) (*Candidate, error)
	GetByID(ctx context.Context, id string) (*Candidate, error)
	Update(ctx context.Context, id string, input *CandidateUpdateInput, resume *UploadedFile) (*Candidate, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q ListQuery) (*ListResult, error)
}
