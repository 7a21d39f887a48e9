package cpfbrasil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupSucessoCamposMaiusculos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cpf/12345678901", r.URL.Path)
		assert.Equal(t, "token-teste", r.Header.Get("X-API-Key"))
		w.Write([]byte(`{"success":true,"data":{"NOME":"Maria Silva","NASC":"01/01/1990","SEXO":"F","NOME_MAE":"Joana Silva"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	record, err := client.Lookup(context.Background(), "12345678901", "token-teste")

	assert.NoError(t, err)
	assert.Equal(t, "12345678901", record.CPF)
	assert.Equal(t, "Maria Silva", record.Nome)
	assert.Equal(t, "01/01/1990", record.Nascimento)
	assert.Equal(t, "F", record.Sexo)
	assert.Equal(t, "Joana Silva", record.NomeMae)
}

func TestLookupSucessoCamposMinusculos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"nome":"José Santos","nascimento":"10/10/1980"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	record, err := client.Lookup(context.Background(), "12345678901", "tok")

	assert.NoError(t, err)
	assert.Equal(t, "José Santos", record.Nome)
	// campo ausente vira vazio, nunca quebra o renderizador
	assert.Equal(t, "", record.Sexo)
	assert.Equal(t, "", record.NomeMae)
}

func TestLookupCPFInvalidoNaoChamaRede(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Lookup(context.Background(), "123456789", "tok")
	assert.ErrorIs(t, err, ErrInvalidCPF)

	_, err = client.Lookup(context.Background(), "123456789012", "tok")
	assert.ErrorIs(t, err, ErrInvalidCPF)

	assert.Equal(t, int32(0), calls.Load())
}

func TestLookupTokenVazioNaoChamaRede(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Lookup(context.Background(), "12345678901", "")

	assert.ErrorIs(t, err, ErrMissingToken)
	assert.Equal(t, int32(0), calls.Load())
}

func TestLookupStatusNao200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token inválido"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Lookup(context.Background(), "12345678901", "tok")

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "token inválido", apiErr.Message)
}

func TestLookupSuccessFalse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"CPF não localizado"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Lookup(context.Background(), "12345678901", "tok")

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "CPF não localizado", apiErr.Message)
}

func TestLookupRespostaMalformada(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>erro</html>`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Lookup(context.Background(), "12345678901", "tok")

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
}

func TestLookupProvedorFora(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // derruba antes da chamada

	client := NewClient(server.URL)
	_, err := client.Lookup(context.Background(), "12345678901", "tok")

	assert.Error(t, err)
}
