package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/koheiarai-crypto/ai-proxy/logging"
	"github.com/sirupsen/logrus"
)

var log = logging.GetLogger()

func logRequest(req *http.Request, upstream string, status int, elapsed time.Duration) {
	log.WithFields(logrus.Fields{
		"upstream": upstream,
		"status":   status,
		"elapsed":  elapsed.String(),
	}).Infof("%s -- %s -- %s", req.RemoteAddr, req.Method, req.URL.Path)
}

func logAndReturnError(w http.ResponseWriter, req *http.Request, upstream string, perr *Error) {
	entry := log.WithFields(logrus.Fields{
		"upstream": upstream,
		"kind":     perr.Kind.String(),
		"status":   perr.Status,
	})
	if perr.Kind == KindMethod {
		entry.Warnf("%s -- %s -- %s: %s", req.RemoteAddr, req.Method, req.URL.Path, perr.Message)
	} else {
		entry.Errorf("%s -- %s -- %s: %s", req.RemoteAddr, req.Method, req.URL.Path, perr.Message)
	}
	writeJSON(w, perr.Status, encodeError(perr.Message))
}

// encodeError renders {"error": msg} without HTML escaping.
func encodeError(msg string) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(errorResponse{Error: msg}); err != nil {
		return []byte(`{"error":"internal error"}`)
	}
	return bytes.TrimRight(buf.Bytes(), "\n")
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Debugf("Failed to write response: %v", err)
	}
}
