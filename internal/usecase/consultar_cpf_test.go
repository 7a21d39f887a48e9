package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mvictorr/datacrazy-cpf/internal/audit"
	"github.com/mvictorr/datacrazy-cpf/internal/config"
)

func TestConsultarCPFSucesso(t *testing.T) {
	mockCpf := new(MockCpfGateway)
	mockCpf.On("Lookup", mock.Anything, "12345678901", "token-cpf").Return(mariaRecord, nil)

	uc := NewConsultarCPFUseCase(newStore("Olá {nome}"), mockCpf, audit.NewLog())

	out, err := uc.Execute(context.Background(), ConsultarCPFInput{CPF: "123.456.789-01"})

	assert.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "12345678901", out.CPF)
	assert.Equal(t, "Maria Silva", out.Dados.Nome)
	assert.Equal(t, "Olá Maria Silva", out.MensagemFormatada)
}

func TestConsultarCPFEntradaInvalida(t *testing.T) {
	mockCpf := new(MockCpfGateway)
	uc := NewConsultarCPFUseCase(newStore("{nome}"), mockCpf, audit.NewLog())

	_, err := uc.Execute(context.Background(), ConsultarCPFInput{CPF: "123"})

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
	domainErr := err.(*DomainError)
	assert.Equal(t, CodeInvalidCPFFormat, domainErr.Code)
	mockCpf.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything, mock.Anything)
}

func TestConsultarCPFTokenVazio(t *testing.T) {
	mockCpf := new(MockCpfGateway)
	store := config.NewStore(config.Config{})
	uc := NewConsultarCPFUseCase(store, mockCpf, audit.NewLog())

	out, err := uc.Execute(context.Background(), ConsultarCPFInput{CPF: "12345678901"})

	assert.NoError(t, err)
	assert.False(t, out.Success)
	assert.NotEmpty(t, out.Error)
	mockCpf.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything, mock.Anything)
}

func TestConsultarCPFFalhaNaConsulta(t *testing.T) {
	mockCpf := new(MockCpfGateway)
	mockCpf.On("Lookup", mock.Anything, "12345678901", "token-cpf").Return(nil, errors.New("status 500"))

	uc := NewConsultarCPFUseCase(newStore("{nome}"), mockCpf, audit.NewLog())

	out, err := uc.Execute(context.Background(), ConsultarCPFInput{CPF: "12345678901"})

	assert.NoError(t, err)
	assert.False(t, out.Success)
	assert.Nil(t, out.Dados)
	// detalhe técnico não vaza no corpo
	assert.NotContains(t, out.Error, "500")
}
