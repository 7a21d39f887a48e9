package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/mvictorr/datacrazy-cpf/internal/audit"
	"github.com/mvictorr/datacrazy-cpf/internal/cpf"
	"github.com/mvictorr/datacrazy-cpf/internal/entity"
	"github.com/mvictorr/datacrazy-cpf/internal/message"
)

const (
	msgCPFNaoEncontrado = "CPF não encontrado nas mensagens"
	msgErroInterno      = "Não foi possível processar a solicitação no momento."
)

// ProcessWebhookUseCase orquestra o fluxo do webhook: extrai o CPF do
// payload, consulta o provedor, renderiza o template e devolve a resposta
// pronta para o CRM repassar ao lead via WhatsApp.
type ProcessWebhookUseCase struct {
	Config ConfigProvider
	CPF    CpfGateway
	CRM    CrmGateway
	Audit  ActivityLogger
}

func NewProcessWebhookUseCase(
	configProvider ConfigProvider,
	cpfGateway CpfGateway,
	crmGateway CrmGateway,
	activityLog ActivityLogger,
) *ProcessWebhookUseCase {
	return &ProcessWebhookUseCase{
		Config: configProvider,
		CPF:    cpfGateway,
		CRM:    crmGateway,
		Audit:  activityLog,
	}
}

// Execute nunca retorna erro: qualquer falha vira success=false no corpo.
// Um pânico inesperado (template quebrado, por exemplo) é recuperado aqui e
// não derruba o processo.
func (uc *ProcessWebhookUseCase) Execute(ctx context.Context, input WebhookInput) (out WebhookOutput) {
	out = WebhookOutput{
		ConversationID: input.ConversationID,
		LeadPhone:      input.LeadPhone,
		Phone:          input.Phone,
		LeadName:       input.LeadName,
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Pânico no processamento do webhook: %v", r)
			out.Success = false
			out.Message = msgErroInterno
		}
	}()

	cfg := uc.Config.Get()

	// 1. Extrair o candidato a CPF
	candidato := uc.extrairCPF(ctx, input, cfg.CRMAPIKey)
	if candidato == "" {
		uc.Audit.Add(audit.TipoWebhook, "", audit.StatusErro, msgCPFNaoEncontrado, input.LeadPhone, input.LeadName)
		out.Message = msgCPFNaoEncontrado
		return out
	}

	// 2. Consultar. Com token vazio não há tentativa de rede; a falha é
	// local e a resposta segue o mesmo caminho do template.
	if cfg.CPFAPIToken == "" {
		log.Println("⚠️ CPF_API_TOKEN não configurado")
		uc.Audit.Add(audit.TipoWebhook, candidato, audit.StatusErro, "CPF_API_TOKEN não configurado", input.LeadPhone, input.LeadName)
		return uc.falha(out, candidato, cfg.MessageTemplate, cfg.FormatoCPF)
	}

	record, err := uc.CPF.Lookup(ctx, candidato, cfg.CPFAPIToken)
	if err != nil {
		// O detalhe do provedor fica no log; o lead recebe só a mensagem
		// genérica do operador.
		log.Printf("❌ Consulta de CPF falhou: %v", err)
		uc.Audit.Add(audit.TipoWebhook, candidato, audit.StatusErro, err.Error(), input.LeadPhone, input.LeadName)
		return uc.falha(out, candidato, cfg.MessageTemplate, cfg.FormatoCPF)
	}

	// 3. Renderizar
	out.Message = message.Render(cfg.MessageTemplate, *record, cfg.FormatoCPF)
	out.CPFMascarado = cpf.Mask(record.CPF, cfg.FormatoCPF)

	// 4. Entregar na conversa, quando possível. Falha aqui não derruba o
	// success: a automação ainda pode enviar a mensagem por conta própria.
	status := audit.StatusSucesso
	if input.ConversationID != "" && cfg.CRMAPIKey != "" {
		if err := uc.CRM.SendMessage(ctx, input.ConversationID, out.Message, cfg.CRMAPIKey); err != nil {
			log.Printf("⚠️ Mensagem não enviada na conversa %s: %v", input.ConversationID, err)
			status = audit.StatusParcial
		} else {
			out.MensagemEnviada = true
		}
	}

	uc.Audit.Add(audit.TipoWebhook, record.CPF, status, fmt.Sprintf("Titular: %s", record.Nome), input.LeadPhone, input.LeadName)

	// 5. Responder
	out.Success = true
	return out
}

// extrairCPF tenta, nessa ordem: o campo cpf do payload, a mensagem direta
// e, por fim, as mensagens da conversa no CRM (mais recentes primeiro).
func (uc *ProcessWebhookUseCase) extrairCPF(ctx context.Context, input WebhookInput, crmAPIKey string) string {
	if input.CPF != "" {
		return cpf.OnlyDigits(input.CPF)
	}

	if found := cpf.Extract(input.Mensagem); found != "" {
		return found
	}

	if input.ConversationID == "" {
		return ""
	}
	if crmAPIKey == "" {
		log.Println("⚠️ CRM_API_KEY não configurada, pulando busca na conversa")
		return ""
	}

	mensagens, err := uc.CRM.FetchLeadMessages(ctx, input.ConversationID, crmAPIKey)
	if err != nil {
		log.Printf("❌ Erro ao buscar mensagens da conversa %s: %v", input.ConversationID, err)
		return ""
	}

	for _, m := range mensagens {
		if found := cpf.Extract(m.Body); found != "" {
			return found
		}
	}

	return ""
}

// falha monta a resposta de erro renderizando o template com o record
// zerado: o operador é quem escreve o texto de "CPF não encontrado". A
// máscara ainda é calculada quando chegaram 11 dígitos.
func (uc *ProcessWebhookUseCase) falha(out WebhookOutput, candidato, template, formato string) WebhookOutput {
	record := entity.CpfRecord{}
	if len(candidato) == 11 {
		record.CPF = candidato
	}
	out.Success = false
	out.Message = message.Render(template, record, formato)
	out.CPFMascarado = cpf.Mask(record.CPF, formato)
	return out
}
