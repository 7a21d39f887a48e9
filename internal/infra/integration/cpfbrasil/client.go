package cpfbrasil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mvictorr/datacrazy-cpf/internal/entity"
)

const DefaultBaseURL = "https://api.cpf-brasil.org"

var (
	// ErrInvalidCPF: entrada com menos (ou mais) de 11 dígitos. Nenhuma
	// chamada de rede acontece nesse caso.
	ErrInvalidCPF = errors.New("cpf deve ter 11 dígitos")

	// ErrMissingToken: CPF_API_TOKEN não configurado. Nunca discamos com
	// token vazio.
	ErrMissingToken = errors.New("cpf_api_token não configurado")
)

// APIError carrega o status/mensagem do provedor quando a consulta falha.
// O detalhe vai para o log, nunca para a mensagem do lead.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api cpf-brasil (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api cpf-brasil (status %d)", e.StatusCode)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Lookup consulta os dados do titular na api.cpf-brasil.org. O token vem por
// parâmetro porque a credencial pode mudar em runtime pelo painel. Uma única
// tentativa: falhou, o erro sobe na hora.
func (c *Client) Lookup(ctx context.Context, cpfDigits, token string) (*entity.CpfRecord, error) {
	if len(cpfDigits) != 11 {
		return nil, ErrInvalidCPF
	}
	if token == "" {
		return nil, ErrMissingToken
	}

	url := fmt.Sprintf("%s/cpf/%s", c.baseURL, cpfDigits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-Key", token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request cpf-brasil: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro lendo resposta cpf-brasil: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: extractMessage(body)}
	}

	var response lookupResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "resposta inválida do provedor"}
	}

	if !response.Success {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: response.Message}
	}

	return response.Data.toRecord(cpfDigits), nil
}

func extractMessage(body []byte) string {
	var errBody struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &errBody) != nil {
		return ""
	}
	if errBody.Message != "" {
		return errBody.Message
	}
	return errBody.Error
}
