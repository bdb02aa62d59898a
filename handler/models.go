package handler

import "net/http"

// Upstream describes a third-party API the proxy forwards to.
type Upstream struct {
	// Name labels logs and metrics.
	Name string
	URL  string
	// CredentialVars are checked in order; the first non-empty one wins. The
	// first name is the one reported when none is set.
	CredentialVars []string
	// Authorize attaches the credential to the outbound headers.
	Authorize func(h http.Header, credential string)
}

// ImageGeneration is the Gemini image-generation endpoint.
var ImageGeneration = Upstream{
	Name:           "image",
	URL:            "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash-image-preview:generateContent",
	CredentialVars: []string{"GOOGLE_AI_STUDIO_API_KEY", "GOOGLE_AI_API_KEY"},
	Authorize: func(h http.Header, credential string) {
		h.Set("x-goog-api-key", credential)
	},
}

// ChatCompletion is the OpenAI chat-completions endpoint.
var ChatCompletion = Upstream{
	Name:           "chat",
	URL:            "https://api.openai.com/v1/chat/completions",
	CredentialVars: []string{"OPENAI_API_KEY"},
	Authorize: func(h http.Header, credential string) {
		h.Set("Authorization", "Bearer "+credential)
	},
}

// errorResponse is the body of every proxy-generated error.
type errorResponse struct {
	Error string `json:"error"`
}
