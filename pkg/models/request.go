package models

// ParseResumeRequest is the payload for the extraction entry point
type ParseResumeRequest struct {
	ResumeText string `json:"resume_text" validate:"required,notblank"`
}

// CompareRequest is the payload for the comparison entry point. Role
// changes the prompt framing on the AI path but not the response schema.
type CompareRequest struct {
	ResumeText     string `json:"resume_text" validate:"required,notblank"`
	JobDescription string `json:"job_description" validate:"required,notblank"`
	Role           string `json:"role,omitempty" validate:"omitempty,oneof=job_seeker recruiter"`
	JobTitle       string `json:"job_title,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`
}
