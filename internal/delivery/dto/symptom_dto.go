package dto

// Request DTOs

type AnalyzeSymptomsRequest struct {
	Symptoms string `json:"symptoms" validate:"required,min=3,max=2000"`
}

// Response DTOs

type AnalyzeSymptomsResponse struct {
	Conditions []string `json:"conditions"`
	// Source is "model" when the analysis came from the AI collaborator
	// and "fallback" when the static list was served.
	Source string `json:"source"`
}
