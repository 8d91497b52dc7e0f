package api

import (
	"encoding/json"
	"net/http"

	"github.com/corpintel/corpintel/internal/intel"
	"github.com/corpintel/corpintel/internal/logging"
)

// analyzeRequest is the analyze endpoint's request body.
type analyzeRequest struct {
	Company  string `json:"company"`
	Website  string `json:"website,omitempty"`
	Question string `json:"question"`
}

func (r analyzeRequest) toIntel() intel.Request {
	return intel.Request{Company: r.Company, Website: r.Website, Question: r.Question}
}

// handleAnalyze runs the research pipeline for one request and streams its
// events as Server-Sent Events, one `data:` line per event. The stream ends
// when the pipeline emits its terminal event or the client disconnects.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeInvalidRequest, "request body is not valid JSON: "+err.Error())
		return
	}

	intelReq := req.toIntel()
	if err := intelReq.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeInvalidRequest, err.Error())
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "streaming unsupported by connection")
		return
	}

	s.logger.InfoWithFields("analyze stream opened",
		logging.Field("company", intelReq.Company),
		logging.Field("remote", r.RemoteAddr),
	)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	// Client disconnect cancels r.Context() and with it the pipeline run.
	for event := range s.pipeline.Handle(r.Context(), intelReq) {
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("failed to marshal stream event: %v", err)
			continue
		}
		if _, err := w.Write(append(append([]byte("data: "), payload...), '\n', '\n')); err != nil {
			s.logger.Warn("client went away mid-stream: %v", err)
			return
		}
		flusher.Flush()
	}
}
