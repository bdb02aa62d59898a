// Package api holds the Vercel serverless functions. Each exported
// http.HandlerFunc is deployed as its own route under /api.
package api

import (
	"net/http"

	"github.com/koheiarai-crypto/ai-proxy/backend"
	"github.com/koheiarai-crypto/ai-proxy/handler"
)

var geminiProxy = handler.NewProxy(handler.ImageGeneration, backend.NewBackendClient(), nil)

// Gemini forwards image-generation requests, served at /api/gemini.
func Gemini(w http.ResponseWriter, r *http.Request) {
	geminiProxy.ServeHTTP(w, r)
}
