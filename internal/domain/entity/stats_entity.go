package entity

type ProgramStats struct {
	Applications int `json:"applications"`
	Placements   int `json:"placements"`
}

// Stats is the placement summary shown on the marketing pages.
type Stats struct {
	TotalApplications    int                     `json:"totalApplications"`
	ActivePrograms       int                     `json:"activePrograms"`
	PartnerCompanies     int                     `json:"partnerCompanies"`
	SuccessfulPlacements int                     `json:"successfulPlacements"`
	ProgramStats         map[string]ProgramStats `json:"programStats"`
}
