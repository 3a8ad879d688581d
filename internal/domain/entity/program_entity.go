package entity

// Program describes one of the fixed work-integrated-learning tracks.
type Program struct {
	ID           string `json:"id"`
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Duration     string `json:"duration"`
	Requirements string `json:"requirements"`
	Benefits     string `json:"benefits"`
}
