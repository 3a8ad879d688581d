package entity

import "time"

// Application is a submitted application draft, flattened the way the wizard
// sends it. Only the five identity and program fields are mandatory.
type Application struct {
	// Personal information
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Phone     string `json:"phone"`
	StudentID string `json:"studentId" validate:"required"`

	// Program selection
	Program            string `json:"program" validate:"required"`
	PreferredStartDate string `json:"preferredStartDate"`
	Duration           string `json:"duration"`

	// Academic information
	Major              string `json:"major"`
	Year               string `json:"year"`
	GPA                string `json:"gpa"`
	ExpectedGraduation string `json:"expectedGraduation"`

	// Experience and motivation
	PreviousExperience string `json:"previousExperience"`
	Motivation         string `json:"motivation"`
	Skills             string `json:"skills"`
	CareerGoals        string `json:"careerGoals"`
}

// ApplicationReceipt acknowledges an accepted application.
type ApplicationReceipt struct {
	ApplicationID string
	SubmittedAt   time.Time
}

// ContactMessage is a contact form submission.
type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// ContactReceipt acknowledges an accepted contact message.
type ContactReceipt struct {
	ID         string
	ReceivedAt time.Time
}
