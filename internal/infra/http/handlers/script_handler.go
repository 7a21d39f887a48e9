package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mvictorr/datacrazy-cpf/internal/usecase"
)

type ScriptHandler struct{}

func NewScriptHandler() *ScriptHandler {
	return &ScriptHandler{}
}

// Handle gera o snippet pronto para colar na ação "Executar JavaScript" do
// DataCrazy, apontando para a URL onde este serviço está publicado.
func (h *ScriptHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input struct {
		BaseURL string `json:"base_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	script, err := usecase.GenerateAutomationScript(input.BaseURL)
	if err != nil {
		if domainErr, ok := err.(*usecase.DomainError); ok {
			writeErrorResponse(w, http.StatusBadRequest, domainErr.Code, domainErr.Message)
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL", "erro interno")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"script":  script,
	})
}
