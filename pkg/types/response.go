package types

// DataEnvelope is the single-resource success payload.
type DataEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ListEnvelope is the collection success payload with pagination metadata.
type ListEnvelope struct {
	Success    bool `json:"success"`
	Count      int  `json:"count"`
	Total      int  `json:"total,omitempty"`
	Page       int  `json:"page,omitempty"`
	TotalPages int  `json:"totalPages,omitempty"`
	Data       any  `json:"data"`
}

// ErrorEnvelope is the uniform failure payload.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}
