package api

import (
	"net/http"

	"github.com/koheiarai-crypto/ai-proxy/backend"
	"github.com/koheiarai-crypto/ai-proxy/handler"
)

var openaiProxy = handler.NewProxy(handler.ChatCompletion, backend.NewBackendClient(), nil)

// OpenAI forwards chat-completion requests, served at /api/openai.
func OpenAI(w http.ResponseWriter, r *http.Request) {
	openaiProxy.ServeHTTP(w, r)
}
