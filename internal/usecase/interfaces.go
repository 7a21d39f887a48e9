package usecase

import (
	"context"

	"github.com/mvictorr/datacrazy-cpf/internal/config"
	"github.com/mvictorr/datacrazy-cpf/internal/entity"
	"github.com/mvictorr/datacrazy-cpf/internal/infra/integration/datacrazy"
)

// ConfigProvider entrega o snapshot atual da configuração. Injetado em vez
// de global para os testes montarem o estado que quiserem.
type ConfigProvider interface {
	Get() config.Config
}

type CpfGateway interface {
	Lookup(ctx context.Context, cpfDigits, token string) (*entity.CpfRecord, error)
}

type CrmGateway interface {
	FetchLeadMessages(ctx context.Context, conversationID, apiKey string) ([]datacrazy.Message, error)
	SendMessage(ctx context.Context, conversationID, body, apiKey string) error
}

type ActivityLogger interface {
	Add(tipo, cpf, status, detalhes, leadPhone, leadName string)
}
