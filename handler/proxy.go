package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/koheiarai-crypto/ai-proxy/backend"
	"github.com/koheiarai-crypto/ai-proxy/config"
	"github.com/koheiarai-crypto/ai-proxy/metrics"
)

// Relay is an upstream response as it will be sent back to the caller.
type Relay struct {
	StatusCode int
	Body       []byte
}

// Proxy forwards POST bodies to a single Upstream with a server-held
// credential and relays the response unchanged.
type Proxy struct {
	upstream Upstream
	backend  *backend.Client
	metrics  *metrics.Recorder
}

// NewProxy creates a Proxy for upstream. rec may be nil.
func NewProxy(upstream Upstream, client *backend.Client, rec *metrics.Recorder) *Proxy {
	return &Proxy{
		upstream: upstream,
		backend:  client,
		metrics:  rec,
	}
}

// ServeHTTP implements the http.Handler interface for Proxy.
func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	relay, err := p.Do(r)
	if err != nil {
		var perr *Error
		if !errors.As(err, &perr) {
			perr = errProxy(err)
		}
		p.metrics.RecordFailure(p.upstream.Name, perr.Kind.String())
		logAndReturnError(w, r, p.upstream.Name, perr)
		return
	}

	elapsed := time.Since(start)
	p.metrics.RecordRelay(p.upstream.Name, relay.StatusCode, elapsed)
	writeJSON(w, relay.StatusCode, relay.Body)
	logRequest(r, p.upstream.Name, relay.StatusCode, elapsed)
}

// Do runs one proxied call. Upstream error statuses are returned as a Relay,
// not an error; every returned error is an *Error.
func (p *Proxy) Do(r *http.Request) (*Relay, error) {
	if r.Method != http.MethodPost {
		return nil, errMethod()
	}

	credential, ok := config.Credential(p.upstream.CredentialVars...)
	if !ok {
		return nil, errMissingCredential(p.upstream.CredentialVars[0])
	}

	var raw []byte
	if r.Body != nil {
		var err error
		raw, err = io.ReadAll(r.Body)
		if err != nil {
			return nil, errProxy(fmt.Errorf("reading request body: %w", err))
		}
	}

	payload, err := normalizePayload(raw)
	if err != nil {
		return nil, errProxy(err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	p.upstream.Authorize(headers, credential)

	resp, err := p.backend.Forward(r.Context(), http.MethodPost, p.upstream.URL, headers, bytes.NewReader(payload))
	if err != nil {
		return nil, errProxy(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errProxy(fmt.Errorf("reading upstream response: %w", err))
	}

	log.Debugf("Upstream %s answered %d (%d bytes)", p.upstream.Name, resp.StatusCode, len(body))
	return &Relay{StatusCode: resp.StatusCode, Body: body}, nil
}
