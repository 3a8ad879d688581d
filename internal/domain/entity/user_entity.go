package entity

// Role is fixed at seeding time and never changes afterwards.
type Role string

const (
	RoleStudent  Role = "student"
	RoleEmployer Role = "employer"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

// Profile holds role-dependent optional attributes.
type Profile struct {
	StudentID string
	Major     string
	Year      string
	GPA       string
	Company   string
}

// User is a credential store record.
// Passwords are stored as bcrypt hashes in PasswordHash
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	Name         string
	Profile      Profile
}

// PublicUser is the client-facing projection of a User. It has no password
// field so it can be serialized anywhere.
type PublicUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	Name      string `json:"name"`
	StudentID string `json:"studentId,omitempty"`
	Major     string `json:"major,omitempty"`
	Year      string `json:"year,omitempty"`
	GPA       string `json:"gpa,omitempty"`
	Company   string `json:"company,omitempty"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		Name:      u.Name,
		StudentID: u.Profile.StudentID,
		Major:     u.Profile.Major,
		Year:      u.Profile.Year,
		GPA:       u.Profile.GPA,
		Company:   u.Profile.Company,
	}
}
