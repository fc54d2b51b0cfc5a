package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/jsonrepair-go/jsonrepair/internal/history"
)

const maxRequestBody = 1 << 20 // 1MB

func (s *Server) handleRepair(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	text := string(body)

	dryRun, _ := strconv.ParseBool(r.URL.Query().Get("dry_run"))

	ctx := r.Context()

	if s.Cache != nil {
		if cached, ok, _ := s.Cache.Get(ctx, text); ok {
			writeJSON(w, http.StatusOK, cached)
			return
		}
	}

	report := s.Engine.Parse(text, dryRun)

	if s.Cache != nil && !dryRun {
		_ = s.Cache.Set(ctx, text, report, 10*time.Minute)
	}
	if s.History != nil && !dryRun {
		_ = s.History.Save(ctx, report)
	}

	status := http.StatusOK
	if !report.Success {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, report)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	if s.History == nil {
		http.Error(w, "history not configured", http.StatusNotImplemented)
		return
	}

	id := chi.URLParam(r, "id")
	report, err := s.History.FindByReportID(r.Context(), id)
	if err != nil {
		if err == history.ErrNotFound {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

var streamUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handleStream repairs the first text message it receives and streams back
// one frame per recorded modification, followed by the final report — a
// progress view over an otherwise synchronous Parse call.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := streamUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	_, msg, err := conn.ReadMessage()
	if err != nil {
		return
	}

	report := s.Engine.Parse(string(msg))

	for _, mod := range report.Modifications {
		frame, _ := json.Marshal(map[string]string{
			"event": "rule_applied",
			"rule":  mod.RuleName,
			"diff":  mod.DiffPreview,
		})
		if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			return
		}
	}

	final, _ := json.Marshal(map[string]interface{}{
		"event":  "done",
		"report": report,
	})
	_ = conn.WriteMessage(websocket.TextMessage, final)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
