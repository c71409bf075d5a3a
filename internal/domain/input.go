package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Multipart forms deliver numbers as strings, and JSON clients built from
// form-style field maps quote them the same way. looseInt and looseFloat
// accept both encodings so the two content types bind identically.
type looseInt int

func (n *looseInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid integer %q", s)
	}
	*n = looseInt(v)
	return nil
}

type looseFloat float64

func (f *looseFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*f = looseFloat(v)
	return nil
}

// CandidateInput is the create-mode payload. Every required field of the
// entity must be present and well-formed; optional fields pass through only
// when provided. Bound from multipart form fields or JSON, so numeric fields
// are coerced from their string form by the binder.
type CandidateInput struct {
	Name  string `json:"name" form:"name" validate:"required"`
	Email string `json:"email" form:"email" validate:"required,email"`
	Phone string `json:"phone" form:"phone" validate:"required,min=10"`
	City  string `json:"city" form:"city" validate:"required"`

	Institute      string         `json:"institute" form:"institute" validate:"required"`
	EducationLevel EducationLevel `json:"educationLevel" form:"educationLevel" validate:"required,oneof=Bachelor Master PhD Other"`
	GraduationYear int            `json:"graduationYear" form:"graduationYear" validate:"required,min=1900,max_current_year"`

	CurrentPosition string `json:"currentPosition" form:"currentPosition" validate:"required"`
	CurrentCompany  string `json:"currentCompany" form:"currentCompany"`
	ExperienceYears int    `json:"experienceYears" form:"experienceYears" validate:"min=0"`
	NoticePeriod    string `json:"noticePeriod" form:"noticePeriod" validate:"required"`
	ReasonToSwitch  string `json:"reasonToSwitch" form:"reasonToSwitch" validate:"required"`
	AppliedPosition string `json:"appliedPosition" form:"appliedPosition" validate:"required"`

	CurrentSalary          float64  `json:"currentSalary" form:"currentSalary" validate:"min=0"`
	ExpectedSalary         float64  `json:"expectedSalary" form:"expectedSalary" validate:"min=0"`
	ExpectedSalaryPartTime *float64 `json:"expectedSalaryPartTime" form:"expectedSalaryPartTime" validate:"omitempty,min=0"`

	LoomLink string `json:"loomLink" form:"loomLink" validate:"omitempty,url"`

	Status             CandidateStatus `json:"status" form:"status" validate:"omitempty,oneof=New Screening Interviewed Pass Fail 'On Hold'"`
	HrRemarks          string          `json:"hrRemarks" form:"hrRemarks"`
	InterviewerRemarks string          `json:"interviewerRemarks" form:"interviewerRemarks"`
}

// UnmarshalJSON binds the numeric fields through their loose forms so
// quoted values coerce the way form binding coerces them.
func (in *CandidateInput) UnmarshalJSON(data []byte) error {
	type alias CandidateInput
	aux := &struct {
		GraduationYear         looseInt    `json:"graduationYear"`
		ExperienceYears        looseInt    `json:"experienceYears"`
		CurrentSalary          looseFloat  `json:"currentSalary"`
		ExpectedSalary         looseFloat  `json:"expectedSalary"`
		ExpectedSalaryPartTime *looseFloat `json:"expectedSalaryPartTime"`
		*alias
	}{alias: (*alias)(in)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	in.GraduationYear = int(aux.GraduationYear)
	in.ExperienceYears = int(aux.ExperienceYears)
	in.CurrentSalary = float64(aux.CurrentSalary)
	in.ExpectedSalary = float64(aux.ExpectedSalary)
	if aux.ExpectedSalaryPartTime != nil {
		v := float64(*aux.ExpectedSalaryPartTime)
		in.ExpectedSalaryPartTime = &v
	}
	return nil
}

// ToCandidate builds the entity to persist, applying the New status default.
// Id and timestamps are left for the store.
func (in *CandidateInput) ToCandidate() *Candidate {
	status := in.Status
	if status == "" {
		status = StatusNew
	}
	return &Candidate{
		Name:                   in.Name,
		Email:                  in.Email,
		Phone:                  in.Phone,
		City:                   in.City,
		Institute:              in.Institute,
		EducationLevel:         in.EducationLevel,
		GraduationYear:         in.GraduationYear,
		CurrentPosition:        in.CurrentPosition,
		CurrentCompany:         in.CurrentCompany,
		ExperienceYears:        in.ExperienceYears,
		NoticePeriod:           in.NoticePeriod,
		ReasonToSwitch:         in.ReasonToSwitch,
		AppliedPosition:        in.AppliedPosition,
		CurrentSalary:          in.CurrentSalary,
		ExpectedSalary:         in.ExpectedSalary,
		ExpectedSalaryPartTime: in.ExpectedSalaryPartTime,
		LoomLink:               in.LoomLink,
		Status:                 status,
		HrRemarks:              in.HrRemarks,
		InterviewerRemarks:     in.InterviewerRemarks,
	}
}

// CandidateUpdateInput is the update-mode payload: every field is optional,
// but any field present must satisfy the same per-field rule as in create
// mode. Nil means "leave as is". Per-field rules are enforced by
// pkg/validation, which owns the shared rule table for both modes.
type CandidateUpdateInput struct {
	Name  *string `json:"name" form:"name"`
	Email *string `json:"email" form:"email"`
	Phone *string `json:"phone" form:"phone"`
	City  *string `json:"city" form:"city"`

	Institute      *string         `json:"institute" form:"institute"`
	EducationLevel *EducationLevel `json:"educationLevel" form:"educationLevel"`
	GraduationYear *int            `json:"graduationYear" form:"graduationYear"`

	CurrentPosition *string `json:"currentPosition" form:"currentPosition"`
	CurrentCompany  *string `json:"currentCompany" form:"currentCompany"`
	ExperienceYears *int    `json:"experienceYears" form:"experienceYears"`
	NoticePeriod    *string `json:"noticePeriod" form:"noticePeriod"`
	ReasonToSwitch  *string `json:"reasonToSwitch" form:"reasonToSwitch"`
	AppliedPosition *string `json:"appliedPosition" form:"appliedPosition"`

	CurrentSalary          *float64 `json:"currentSalary" form:"currentSalary"`
	ExpectedSalary         *float64 `json:"expectedSalary" form:"expectedSalary"`
	ExpectedSalaryPartTime *float64 `json:"expectedSalaryPartTime" form:"expectedSalaryPartTime"`

	LoomLink *string `json:"loomLink" form:"loomLink"`

	Status             *CandidateStatus `json:"status" form:"status"`
	HrRemarks          *string          `json:"hrRemarks" form:"hrRemarks"`
	InterviewerRemarks *string          `json:"interviewerRemarks" form:"interviewerRemarks"`
}

// UnmarshalJSON mirrors CandidateInput's loose numeric binding for the
// partial-update payload; absent fields stay nil.
func (in *CandidateUpdateInput) UnmarshalJSON(data []byte) error {
	type alias CandidateUpdateInput
	aux := &struct {
		GraduationYear         *looseInt   `json:"graduationYear"`
		ExperienceYears        *looseInt   `json:"experienceYears"`
		CurrentSalary          *looseFloat `json:"currentSalary"`
		ExpectedSalary         *looseFloat `json:"expectedSalary"`
		ExpectedSalaryPartTime *looseFloat `json:"expectedSalaryPartTime"`
		*alias
	}{alias: (*alias)(in)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	if aux.GraduationYear != nil {
		v := int(*aux.GraduationYear)
		in.GraduationYear = &v
	}
	if aux.ExperienceYears != nil {
		v := int(*aux.ExperienceYears)
		in.ExperienceYears = &v
	}
	if aux.CurrentSalary != nil {
		v := float64(*aux.CurrentSalary)
		in.CurrentSalary = &v
	}
	if aux.ExpectedSalary != nil {
		v := float64(*aux.ExpectedSalary)
		in.ExpectedSalary = &v
	}
	if aux.ExpectedSalaryPartTime != nil {
		v := float64(*aux.ExpectedSalaryPartTime)
		in.ExpectedSalaryPartTime = &v
	}
	return nil
}

// Coerce drops no-op values the frontend is known to send, currently only an
// empty loomLink, which means "absent", not a malformed URL.
func (in *CandidateUpdateInput) Coerce() {
	if in.LoomLink != nil && *in.LoomLink == "" {
		in.LoomLink = nil
	}
}

// ToPatch converts the input into a repository patch. The resume group is
// attached separately by the attachment merge step.
func (in *CandidateUpdateInput) ToPatch() *CandidatePatch {
	return &CandidatePatch{
		Name:                   in.Name,
		Email:                  in.Email,
		Phone:                  in.Phone,
		City:                   in.City,
		Institute:              in.Institute,
		EducationLevel:         in.EducationLevel,
		GraduationYear:         in.GraduationYear,
		CurrentPosition:        in.CurrentPosition,
		CurrentCompany:         in.CurrentCompany,
		ExperienceYears:        in.ExperienceYears,
		NoticePeriod:           in.NoticePeriod,
		ReasonToSwitch:         in.ReasonToSwitch,
		AppliedPosition:        in.AppliedPosition,
		CurrentSalary:          in.CurrentSalary,
		ExpectedSalary:         in.ExpectedSalary,
		ExpectedSalaryPartTime: in.ExpectedSalaryPartTime,
		LoomLink:               in.LoomLink,
		Status:                 in.Status,
		HrRemarks:              in.HrRemarks,
		InterviewerRemarks:     in.InterviewerRemarks,
	}
}
