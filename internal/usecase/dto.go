package usecase

import "github.com/mvictorr/datacrazy-cpf/internal/entity"

// WebhookInput é o payload da automação do DataCrazy. Todos os campos são
// opcionais: o CPF pode vir no campo próprio, embutido na mensagem ou ser
// buscado na conversa.
type WebhookInput struct {
	ConversationID string `json:"conversationId"`
	LeadPhone      string `json:"leadPhone"`
	Phone          string `json:"phone"`
	LeadName       string `json:"leadName"`
	Mensagem       string `json:"mensagem"`
	CPF            string `json:"cpf"`
}

// WebhookOutput sempre volta com HTTP 200; falha é sinalizada por success,
// porque a automação do CRM só inspeciona o corpo. Os campos identificadores
// do payload de entrada são ecoados de volta.
type WebhookOutput struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	CPFMascarado    string `json:"cpf_mascarado"`
	MensagemEnviada bool   `json:"mensagem_enviada"`
	ConversationID  string `json:"conversationId,omitempty"`
	LeadPhone       string `json:"leadPhone,omitempty"`
	Phone           string `json:"phone,omitempty"`
	LeadName        string `json:"leadName,omitempty"`
}

type ConsultarCPFInput struct {
	CPF string `json:"cpf"`
}

type ConsultarCPFOutput struct {
	Success           bool              `json:"success"`
	CPF               string            `json:"cpf,omitempty"`
	Dados             *entity.CpfRecord `json:"dados,omitempty"`
	MensagemFormatada string            `json:"mensagem_formatada,omitempty"`
	Error             string            `json:"error,omitempty"`
}
