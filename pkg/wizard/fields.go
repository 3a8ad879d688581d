package wizard

import "github.com/oksasatya/wil-portal/pkg/client"

// StepFields lists the wire field names collected on each step.
var StepFields = map[Step][]string{
	StepPersonal:   {"firstName", "lastName", "email", "phone", "studentId"},
	StepProgram:    {"program", "preferredStartDate", "duration"},
	StepAcademic:   {"major", "year", "gpa", "expectedGraduation"},
	StepMotivation: {"previousExperience", "motivation", "skills", "careerGoals"},
}

func fieldPtr(a *client.Application, field string) *string {
	switch field {
	case "firstName":
		return &a.FirstName
	case "lastName":
		return &a.LastName
	case "email":
		return &a.Email
	case "phone":
		return &a.Phone
	case "studentId":
		return &a.StudentID
	case "program":
		return &a.Program
	case "preferredStartDate":
		return &a.PreferredStartDate
	case "duration":
		return &a.Duration
	case "major":
		return &a.Major
	case "year":
		return &a.Year
	case "gpa":
		return &a.GPA
	case "expectedGraduation":
		return &a.ExpectedGraduation
	case "previousExperience":
		return &a.PreviousExperience
	case "motivation":
		return &a.Motivation
	case "skills":
		return &a.Skills
	case "careerGoals":
		return &a.CareerGoals
	}
	return nil
}
