package usecase

import (
	"context"
	"log"

	"github.com/mvictorr/datacrazy-cpf/internal/audit"
	"github.com/mvictorr/datacrazy-cpf/internal/cpf"
	"github.com/mvictorr/datacrazy-cpf/internal/message"
)

// ConsultarCPFUseCase é a consulta direta usada pelo painel para testar a
// credencial: mesmo gateway do webhook, sem passar pelo template do lead.
type ConsultarCPFUseCase struct {
	Config ConfigProvider
	CPF    CpfGateway
	Audit  ActivityLogger
}

func NewConsultarCPFUseCase(configProvider ConfigProvider, cpfGateway CpfGateway, activityLog ActivityLogger) *ConsultarCPFUseCase {
	return &ConsultarCPFUseCase{
		Config: configProvider,
		CPF:    cpfGateway,
		Audit:  activityLog,
	}
}

// Execute retorna erro apenas para entrada inválida (o handler responde
// 400); falha de consulta vira success=false no corpo, com status 200.
func (uc *ConsultarCPFUseCase) Execute(ctx context.Context, input ConsultarCPFInput) (ConsultarCPFOutput, error) {
	digits := cpf.OnlyDigits(input.CPF)
	if len(digits) != 11 {
		return ConsultarCPFOutput{}, &DomainError{
			Code:    CodeInvalidCPFFormat,
			Message: "CPF deve ter 11 dígitos",
		}
	}

	cfg := uc.Config.Get()
	if cfg.CPFAPIToken == "" {
		uc.Audit.Add(audit.TipoTeste, digits, audit.StatusErro, "CPF_API_TOKEN não configurado", "", "")
		return ConsultarCPFOutput{
			Success: false,
			CPF:     digits,
			Error:   "cpf_api_token não configurado",
		}, nil
	}

	record, err := uc.CPF.Lookup(ctx, digits, cfg.CPFAPIToken)
	if err != nil {
		log.Printf("❌ Consulta direta falhou: %v", err)
		uc.Audit.Add(audit.TipoTeste, digits, audit.StatusErro, "Consulta direta", "", "")
		return ConsultarCPFOutput{
			Success: false,
			CPF:     digits,
			Error:   "não foi possível consultar o CPF",
		}, nil
	}

	uc.Audit.Add(audit.TipoTeste, digits, audit.StatusSucesso, "Consulta direta", "", "")

	return ConsultarCPFOutput{
		Success:           true,
		CPF:               digits,
		Dados:             record,
		MensagemFormatada: message.Render(cfg.MessageTemplate, *record, cfg.FormatoCPF),
	}, nil
}
