package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mvictorr/datacrazy-cpf/internal/usecase"
)

type ConsultaExecutor interface {
	Execute(ctx context.Context, input usecase.ConsultarCPFInput) (usecase.ConsultarCPFOutput, error)
}

// ConsultaHandler é a consulta direta do painel (teste de credencial),
// sem passar pelo fluxo do webhook.
type ConsultaHandler struct {
	Consulta ConsultaExecutor
}

func NewConsultaHandler(consulta ConsultaExecutor) *ConsultaHandler {
	return &ConsultaHandler{Consulta: consulta}
}

func (h *ConsultaHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.ConsultarCPFInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.Consulta.Execute(r.Context(), input)
	if err != nil {
		if domainErr, ok := err.(*usecase.DomainError); ok {
			writeErrorResponse(w, http.StatusBadRequest, domainErr.Code, domainErr.Message)
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL", "erro interno")
		return
	}

	writeJSON(w, http.StatusOK, output)
}
