package main

import (
	"github.com/koheiarai-crypto/ai-proxy/backend"
	"github.com/koheiarai-crypto/ai-proxy/config"
	"github.com/koheiarai-crypto/ai-proxy/handler"
	"github.com/koheiarai-crypto/ai-proxy/lambda"
	"github.com/koheiarai-crypto/ai-proxy/logging"

	awslambda "github.com/aws/aws-lambda-go/lambda"
)

var proxy *handler.Proxy

func init() {
	config.LoadEnv()
	logging.InitLogger(logging.ParseLevel(config.GetEnv("AI_PROXY_LOG_LEVEL", "info")), "json")
	proxy = handler.NewProxy(handler.ChatCompletion, backend.NewBackendClient(), nil)
}

// Lambda entrypoint for the chat-completion proxy behind API Gateway.
func main() {
	awslambda.Start(lambda.Adapt(proxy))
}
