package handlers

import (
	"net/http"

	"github.com/mvictorr/datacrazy-cpf/internal/audit"
)

// LogsHandler serve o histórico de atividades e as estatísticas do painel.
type LogsHandler struct {
	Log *audit.Log
}

func NewLogsHandler(activityLog *audit.Log) *LogsHandler {
	return &LogsHandler{Log: activityLog}
}

func (h *LogsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"logs":    h.Log.Recent(50),
	})
}

func (h *LogsHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	h.Log.Clear()
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Logs limpos!",
	})
}

func (h *LogsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Log.Stats())
}
