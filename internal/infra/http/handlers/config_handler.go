package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mvictorr/datacrazy-cpf/internal/audit"
	"github.com/mvictorr/datacrazy-cpf/internal/config"
)

// ConfigHandler expõe o store para o painel. As credenciais nunca voltam
// inteiras: o GET e o POST respondem com a versão mascarada.
type ConfigHandler struct {
	Store *config.Store
	Audit *audit.Log
}

func NewConfigHandler(store *config.Store, activityLog *audit.Log) *ConfigHandler {
	return &ConfigHandler{Store: store, Audit: activityLog}
}

func (h *ConfigHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.Get().Masked())
}

func (h *ConfigHandler) HandleSet(w http.ResponseWriter, r *http.Request) {
	var update config.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	result := h.Store.Set(update)
	h.Audit.Add(audit.TipoConfig, "", audit.StatusSucesso, "Configurações atualizadas", "", "")

	writeJSON(w, http.StatusOK, result.Masked())
}
