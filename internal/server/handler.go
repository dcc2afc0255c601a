package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

// missingLocationMessage is returned whenever the request carries no usable
// location, including bodies that fail to decode at all.
const missingLocationMessage = "Please provide a location in the request body."

type forecastRequest struct {
	Location string `json:"location"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleForecast serves POST /forecast. Requests without a location are
// rejected before the pipeline runs, so no model call is made for them.
func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	var req forecastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, missingLocationMessage)
		return
	}

	location := strings.TrimSpace(req.Location)
	if location == "" {
		writeError(w, http.StatusBadRequest, missingLocationMessage)
		return
	}

	f, err := s.forecaster.Generate(r.Context(), location)
	if err != nil {
		log.Printf("[server] request %s: forecast for %q failed: %v", requestID(r), location, err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"result": f})
}

// handleHealth serves GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[server] writing response failed: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
