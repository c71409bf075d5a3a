package validation_test

import (
	"testing"
	"time"

	"github.com/FarazAhsan11/candidate-management/internal/domain"
	"github.com/FarazAhsan11/candidate-management/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateInput() *domain.CandidateInput {
	return &domain.CandidateInput{
		Name:            "Ada Lovelace",
		Email:           "ada@example.com",
		Phone:           "0812345678",
		City:            "London",
		Institute:       "Cambridge",
		EducationLevel:  domain.EducationMaster,
		GraduationYear:  2018,
		CurrentPosition: "Engineer",
		ExperienceYears: 4,
		NoticePeriod:    "1 month",
		ReasonToSwitch:  "Growth",
		AppliedPosition: "Backend Engineer",
		CurrentSalary:   5000,
		ExpectedSalary:  7000,
	}
}

func TestCreateModeValidation(t *testing.T) {
	v := validation.New()

	t.Run("Should accept a complete payload", func(t *testing.T) {
		assert.NoError(t, v.Struct(validCreateInput()))
	})

	t.Run("Should report missing fields by their json path", func(t *testing.T) {
		in := validCreateInput()
		in.Email = ""
		in.City = ""

		err := v.Struct(in)
		require.Error(t, err)

		issues := validation.Issues(err)
		paths := make([]string, 0, len(issues))
		for _, issue := range issues {
			paths = append(paths, issue.Path)
		}
		assert.Contains(t, paths, "email")
		assert.Contains(t, paths, "city")
	})

	t.Run("Should reject a malformed email", func(t *testing.T) {
		in := validCreateInput()
		in.Email = "not-an-email"

		issues := validation.Issues(v.Struct(in))
		require.Len(t, issues, 1)
		assert.Equal(t, "email", issues[0].Path)
		assert.Equal(t, "email must be a valid email address", issues[0].Message)
	})

	t.Run("Should reject a short phone number", func(t *testing.T) {
		in := validCreateInput()
		in.Phone = "12345"

		issues := validation.Issues(v.Struct(in))
		require.Len(t, issues, 1)
		assert.Equal(t, "phone", issues[0].Path)
		assert.Equal(t, "phone must be at least 10 characters", issues[0].Message)
	})

	t.Run("Should reject a graduation year in the future", func(t *testing.T) {
		in := validCreateInput()
		in.GraduationYear = time.Now().Year() + 1

		issues := validation.Issues(v.Struct(in))
		require.Len(t, issues, 1)
		assert.Equal(t, "graduationYear", issues[0].Path)
		assert.Equal(t, "graduationYear must not exceed the current year", issues[0].Message)
	})

	t.Run("Should accept the current year", func(t *testing.T) {
		in := validCreateInput()
		in.GraduationYear = time.Now().Year()
		assert.NoError(t, v.Struct(in))
	})

	t.Run("Should reject an unknown education level", func(t *testing.T) {
		in := validCreateInput()
		in.EducationLevel = "Diploma"

		issues := validation.Issues(v.Struct(in))
		require.Len(t, issues, 1)
		assert.Equal(t, "educationLevel", issues[0].Path)
	})

	t.Run("Should accept the On Hold status", func(t *testing.T) {
		in := validCreateInput()
		in.Status = domain.StatusOnHold
		assert.NoError(t, v.Struct(in))
	})

	t.Run("Should reject an unknown status with a readable option list", func(t *testing.T) {
		in := validCreateInput()
		in.Status = "Hired"

		issues := validation.Issues(v.Struct(in))
		require.Len(t, issues, 1)
		assert.Equal(t, "status", issues[0].Path)
		assert.Contains(t, issues[0].Message, "On Hold")
		assert.NotContains(t, issues[0].Message, "'")
	})

	t.Run("Should reject a negative expected salary", func(t *testing.T) {
		in := validCreateInput()
		in.ExpectedSalary = -1

		issues := validation.Issues(v.Struct(in))
		require.Len(t, issues, 1)
		assert.Equal(t, "expectedSalary", issues[0].Path)
	})

	t.Run("Should accept an absent part-time salary", func(t *testing.T) {
		in := validCreateInput()
		in.ExpectedSalaryPartTime = nil
		assert.NoError(t, v.Struct(in))
	})
}

func TestIssuesOnNonValidationError(t *testing.T) {
	issues := validation.Issues(assert.AnError)
	require.Len(t, issues, 1)
	assert.Empty(t, issues[0].Path)
	assert.Equal(t, "invalid request data", issues[0].Message)
}

func TestCheckField(t *testing.T) {
	v := validation.New()

	t.Run("Should pass a valid value", func(t *testing.T) {
		assert.Nil(t, validation.CheckField(v, "email", "ada@example.com", "required,email"))
	})

	t.Run("Should report the issue under the given path", func(t *testing.T) {
		issue := validation.CheckField(v, "email", "nope", "required,email")
		require.NotNil(t, issue)
		assert.Equal(t, "email", issue.Path)
		assert.Equal(t, "email must be a valid email address", issue.Message)
	})

	t.Run("Should fail a present-but-empty required value", func(t *testing.T) {
		issue := validation.CheckField(v, "name", "", "required")
		require.NotNil(t, issue)
		assert.Equal(t, "name is required", issue.Message)
	})

	t.Run("Should honor quoted oneof options", func(t *testing.T) {
		rule := "required,oneof=New Screening Interviewed Pass Fail 'On Hold'"
		assert.Nil(t, validation.CheckField(v, "status", "On Hold", rule))

		issue := validation.CheckField(v, "status", "Hold", rule)
		require.NotNil(t, issue)
		assert.Contains(t, issue.Message, "New, Screening, Interviewed, Pass, Fail, On Hold")
	})
}
