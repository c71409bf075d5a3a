package postgres

import (
	"fmt"
	"strings"

	"github.com/FarazAhsan11/candidate-management/internal/domain"
)

// buildUpdateSet builds the SET clause for a partial update. Only present
// patch fields become assignments; updated_at always refreshes, so an empty
// patch is still a valid (touch-only) update.
func buildUpdateSet(patch *domain.CandidatePatch) (string, []any) {
	var assignments []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch != nil {
		if patch.Name != nil {
			add("name", *patch.Name)
		}
		if patch.Email != nil {
			add("email", *patch.Email)
		}
		if patch.Phone != nil {
			add("phone", *patch.Phone)
		}
		if patch.City != nil {
			add("city", *patch.City)
		}
		if patch.Institute != nil {
			add("institute", *patch.Institute)
		}
		if patch.EducationLevel != nil {
			add("education_level", *patch.EducationLevel)
		}
		if patch.GraduationYear != nil {
			add("graduation_year", *patch.GraduationYear)
		}
		if patch.CurrentPosition != nil {
			add("current_position", *patch.CurrentPosition)
		}
		if patch.CurrentCompany != nil {
			add("current_company", *patch.CurrentCompany)
		}
		if patch.ExperienceYears != nil {
			add("experience_years", *patch.ExperienceYears)
		}
		if patch.NoticePeriod != nil {
			add("notice_period", *patch.NoticePeriod)
		}
		if patch.ReasonToSwitch != nil {
			add("reason_to_switch", *patch.ReasonToSwitch)
		}
		if patch.AppliedPosition != nil {
			add("applied_position", *patch.AppliedPosition)
		}
		if patch.CurrentSalary != nil {
			add("current_salary", *patch.CurrentSalary)
		}
		if patch.ExpectedSalary != nil {
			add("expected_salary", *patch.ExpectedSalary)
		}
		if patch.ExpectedSalaryPartTime != nil {
			add("expected_salary_part_time", *patch.ExpectedSalaryPartTime)
		}
		if patch.Resume != nil {
			// The three resume columns always move together.
			add("resume_file", patch.Resume.URL)
			add("resume_file_name", patch.Resume.FileName)
			add("resume_file_type", patch.Resume.FileType)
		}
		if patch.LoomLink != nil {
			add("loom_link", *patch.LoomLink)
		}
		if patch.Status != nil {
			add("status", *patch.Status)
		}
		if patch.HrRemarks != nil {
			add("hr_remarks", *patch.HrRemarks)
		}
		if patch.InterviewerRemarks != nil {
			add("interviewer_remarks", *patch.InterviewerRemarks)
		}
	}

	assignments = append(assignments, "updated_at = NOW()")
	return strings.Join(assignments, ", "), args
}
