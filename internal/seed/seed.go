package seed

import (
	"context"
	"fmt"

	"github.com/FarazAhsan11/candidate-management/internal/domain"
)

func ptr[T any](v T) *T { return &v }

var samples = []domain.Candidate{
	{
		Name: "Ayesha Khan", Email: "ayesha.khan@example.com", Phone: "03001234567", City: "Lahore",
		Institute: "FAST NUCES", EducationLevel: domain.EducationBachelor, GraduationYear: 2021,
		CurrentPosition: "Frontend Developer", CurrentCompany: "Systems Ltd", ExperienceYears: 2,
		NoticePeriod: "1 month", ReasonToSwitch: "Looking for growth opportunities",
		AppliedPosition: "React Developer",
		CurrentSalary:   120000, ExpectedSalary: 180000,
		Status: domain.StatusNew,
	},
	{
		Name: "Bilal Ahmed", Email: "bilal.ahmed@example.com", Phone: "03219876543", City: "Karachi",
		Institute: "NED University", EducationLevel: domain.EducationMaster, GraduationYear: 2018,
		CurrentPosition: "Backend Engineer", CurrentCompany: "10Pearls", ExperienceYears: 5,
		NoticePeriod: "2 months", ReasonToSwitch: "Remote-first team preferred",
		AppliedPosition: "Backend Developer",
		CurrentSalary:   250000, ExpectedSalary: 350000, ExpectedSalaryPartTime: ptr(200000.0),
		Status: domain.StatusScreening, HrRemarks: "Strong CV, schedule technical round",
	},
	{
		Name: "Sara Malik", Email: "sara.malik@example.com", Phone: "03331112233", City: "Islamabad",
		Institute: "COMSATS", EducationLevel: domain.EducationBachelor, GraduationYear: 2015,
		CurrentPosition: "Engineering Lead", CurrentCompany: "Techlogix", ExperienceYears: 8,
		NoticePeriod: "3 months", ReasonToSwitch: "Wants a product-focused role",
		AppliedPosition: "React Developer",
		CurrentSalary:   450000, ExpectedSalary: 550000,
		LoomLink: "https://www.loom.com/share/sara-intro",
		Status:   domain.StatusInterviewed, InterviewerRemarks: "Excellent system design round",
	},
	{
		Name: "Hamza Riaz", Email: "hamza.riaz@example.com", Phone: "03455556677", City: "Rawalpindi",
		Institute: "Air University", EducationLevel: domain.EducationOther, GraduationYear: 2023,
		CurrentPosition: "Junior Developer", ExperienceYears: 0,
		NoticePeriod: "Immediate", ReasonToSwitch: "First full-time switch",
		AppliedPosition: "Backend Developer",
		CurrentSalary:   60000, ExpectedSalary: 90000,
		Status: domain.StatusOnHold,
	},
}

// Candidates inserts the sample records for local development.
func Candidates(ctx context.Context, repo domain.CandidateRepository) error {
	for i := range samples {
		c := samples[i]
		if err := repo.Create(ctx, &c); err != nil {
			return fmt.Errorf("seed candidate %q: %w", c.Name, err)
		}
	}
	return nil
}
