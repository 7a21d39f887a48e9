package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mvictorr/datacrazy-cpf/internal/entity"
	"github.com/mvictorr/datacrazy-cpf/internal/usecase"
)

// MockConsultaExecutor
type MockConsultaExecutor struct {
	mock.Mock
}

func (m *MockConsultaExecutor) Execute(ctx context.Context, input usecase.ConsultarCPFInput) (usecase.ConsultarCPFOutput, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(usecase.ConsultarCPFOutput), args.Error(1)
}

func TestConsultaHandlerSucesso(t *testing.T) {
	mockExec := new(MockConsultaExecutor)
	mockExec.On("Execute", mock.Anything, usecase.ConsultarCPFInput{CPF: "12345678901"}).Return(usecase.ConsultarCPFOutput{
		Success: true,
		CPF:     "12345678901",
		Dados:   &entity.CpfRecord{CPF: "12345678901", Nome: "Maria Silva"},
	}, nil)

	handler := NewConsultaHandler(mockExec)

	req := httptest.NewRequest("POST", "/api/consultar-cpf", bytes.NewReader([]byte(`{"cpf":"12345678901"}`)))
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Maria Silva")
}

func TestConsultaHandlerCPFInvalidoRetorna400(t *testing.T) {
	mockExec := new(MockConsultaExecutor)
	mockExec.On("Execute", mock.Anything, mock.Anything).Return(usecase.ConsultarCPFOutput{}, &usecase.DomainError{
		Code:    usecase.CodeInvalidCPFFormat,
		Message: "CPF deve ter 11 dígitos",
	})

	handler := NewConsultaHandler(mockExec)

	req := httptest.NewRequest("POST", "/api/consultar-cpf", bytes.NewReader([]byte(`{"cpf":"123"}`)))
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), usecase.CodeInvalidCPFFormat)
}

func TestConsultaHandlerJSONInvalido(t *testing.T) {
	handler := NewConsultaHandler(new(MockConsultaExecutor))

	req := httptest.NewRequest("POST", "/api/consultar-cpf", bytes.NewReader([]byte(`nada`)))
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
