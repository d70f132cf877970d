package openai

// ModelDescriptor is one entry of the provider's model-listing response.
type ModelDescriptor struct {
	ID      string `json:"id"`
	Object  string `json:"object,omitempty"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by,omitempty"`
}

// modelsResponse is the envelope returned by GET /v1/models.
type modelsResponse struct {
	Object string            `json:"object"`
	Data   []ModelDescriptor `json:"data"`
}

// apiErrorResponse is the provider's error envelope.
type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}
