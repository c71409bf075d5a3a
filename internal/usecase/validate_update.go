package usecase

import (
	"github.com/FarazAhsan11/candidate-management/internal/domain"
	"github.com/FarazAhsan11/candidate-management/pkg/validation"
)

// Per-field rules shared with create mode (the create struct tags carry the
// same strings). Update mode checks only the fields actually present, so a
// provided-but-invalid value fails while an absent field passes.
const (
	ruleName           = "required"
	ruleEmail          = "required,email"
	rulePhone          = "required,min=10"
	ruleEducationLevel = "required,oneof=Bachelor Master PhD Other"
	ruleGraduationYear = "required,min=1900,max_current_year"
	ruleNonNegative    = "min=0"
	ruleLoomLink       = "omitempty,url"
	ruleStatus         = "required,oneof=New Screening Interviewed Pass Fail 'On Hold'"
)

// validateUpdate enforces partial-patch semantics: every field optional, any
// present field held to its create-mode rule.
func (u *candidateUsecase) validateUpdate(in *domain.CandidateUpdateInput) []validation.FieldIssue {
	var issues []validation.FieldIssue

	check := func(path string, value any, rule string) {
		if issue := validation.CheckField(u.validate, path, value, rule); issue != nil {
			issues = append(issues, *issue)
		}
	}

	if in.Name != nil {
		check("name", *in.Name, ruleName)
	}
	if in.Email != nil {
		check("email", *in.Email, ruleEmail)
	}
	if in.Phone != nil {
		check("phone", *in.Phone, rulePhone)
	}
	if in.City != nil {
		check("city", *in.City, ruleName)
	}
	if in.Institute != nil {
		check("institute", *in.Institute, ruleName)
	}
	if in.EducationLevel != nil {
		check("educationLevel", string(*in.EducationLevel), ruleEducationLevel)
	}
	if in.GraduationYear != nil {
		check("graduationYear", *in.GraduationYear, ruleGraduationYear)
	}
	if in.CurrentPosition != nil {
		check("currentPosition", *in.CurrentPosition, ruleName)
	}
	if in.ExperienceYears != nil {
		check("experienceYears", *in.ExperienceYears, ruleNonNegative)
	}
	if in.NoticePeriod != nil {
		check("noticePeriod", *in.NoticePeriod, ruleName)
	}
	if in.ReasonToSwitch != nil {
		check("reasonToSwitch", *in.ReasonToSwitch, ruleName)
	}
	if in.AppliedPosition != nil {
		check("appliedPosition", *in.AppliedPosition, ruleName)
	}
	if in.CurrentSalary != nil {
		check("currentSalary", *in.CurrentSalary, ruleNonNegative)
	}
	if in.ExpectedSalary != nil {
		check("expectedSalary", *in.ExpectedSalary, ruleNonNegative)
	}
	if in.ExpectedSalaryPartTime != nil {
		check("expectedSalaryPartTime", *in.ExpectedSalaryPartTime, ruleNonNegative)
	}
	if in.LoomLink != nil {
		check("loomLink", *in.LoomLink, ruleLoomLink)
	}
	if in.Status != nil {
		check("status", string(*in.Status), ruleStatus)
	}

	return issues
}
