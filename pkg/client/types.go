package client

import "time"

// User is the public user record returned by the API. It never carries a
// password or hash.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	StudentID string `json:"studentId,omitempty"`
	Major     string `json:"major,omitempty"`
	Year      string `json:"year,omitempty"`
	GPA       string `json:"gpa,omitempty"`
	Company   string `json:"company,omitempty"`
}

type Program struct {
	ID           string `json:"id"`
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Duration     string `json:"duration"`
	Requirements string `json:"requirements"`
	Benefits     string `json:"benefits"`
}

// Application is the flattened application draft sent to POST /applications.
type Application struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	StudentID string `json:"studentId"`

	Program            string `json:"program"`
	PreferredStartDate string `json:"preferredStartDate"`
	Duration           string `json:"duration"`

	Major              string `json:"major"`
	Year               string `json:"year"`
	GPA                string `json:"gpa"`
	ExpectedGraduation string `json:"expectedGraduation"`

	PreviousExperience string `json:"previousExperience"`
	Motivation         string `json:"motivation"`
	Skills             string `json:"skills"`
	CareerGoals        string `json:"careerGoals"`
}

type ApplicationReceipt struct {
	Message       string    `json:"message"`
	ApplicationID string    `json:"applicationId"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type ProgramStats struct {
	Applications int `json:"applications"`
	Placements   int `json:"placements"`
}

type Stats struct {
	TotalApplications    int                     `json:"totalApplications"`
	ActivePrograms       int                     `json:"activePrograms"`
	PartnerCompanies     int                     `json:"partnerCompanies"`
	SuccessfulPlacements int                     `json:"successfulPlacements"`
	ProgramStats         map[string]ProgramStats `json:"programStats"`
}

type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    float64   `json:"uptime"`
	Message   string    `json:"message"`
	Version   string    `json:"version"`
}
