package api

// SubmitRequest is the body of POST /submit. The image arrives base64
// encoded, raw or as a data URL. Quality names the content category.
type SubmitRequest struct {
	ImageBase64   string `json:"imageBase64"`
	Scale         int    `json:"scale"`
	Quality       string `json:"quality"`
	Plan          string `json:"plan"`
	UserID        string `json:"userId"`
	QualityMode   string `json:"qualityMode"`
	SelectedModel string `json:"selectedModel"`
}

// CallbackRequest is the provider's completion webhook body.
type CallbackRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Output any    `json:"output"`
	Error  string `json:"error"`
}

// ResumeRequest is the body of POST /resume.
type ResumeRequest struct {
	JobID string `json:"jobId"`
}

// StitchRequest is the body of POST /stitch.
type StitchRequest struct {
	JobID string `json:"jobId"`
}
