package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/mvictorr/datacrazy-cpf/internal/infra/http/middleware"
	"github.com/mvictorr/datacrazy-cpf/internal/usecase"
)

type WebhookProcessor interface {
	Execute(ctx context.Context, input usecase.WebhookInput) usecase.WebhookOutput
}

type WebhookHandler struct {
	Processor WebhookProcessor
}

func NewWebhookHandler(processor WebhookProcessor) *WebhookHandler {
	return &WebhookHandler{Processor: processor}
}

// Handle sempre responde 200: a automação do CRM só olha o campo success do
// corpo, nunca o status HTTP.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.WebhookInput
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			log.Printf("⚠️ Webhook com corpo inválido: %v", err)
		}
	}

	output := h.Processor.Execute(r.Context(), input)

	if output.Success {
		middleware.RecordConsulta("sucesso")
	} else {
		middleware.RecordConsulta("erro")
	}
	if output.Success && output.ConversationID != "" {
		if output.MensagemEnviada {
			middleware.RecordCrmMessage("enviada")
		} else {
			middleware.RecordCrmMessage("falha")
		}
	}

	writeJSON(w, http.StatusOK, output)
}
