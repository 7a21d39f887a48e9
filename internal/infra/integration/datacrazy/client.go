package datacrazy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"
)

const DefaultBaseURL = "https://api.g1.datacrazy.io"

// ErrMissingAPIKey: CRM_API_KEY não configurada. Nunca discamos sem
// credencial.
var ErrMissingAPIKey = errors.New("crm_api_key não configurada")

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

// FetchLeadMessages busca as mensagens recebidas do lead em uma conversa,
// mais recentes primeiro. A chave vem por parâmetro porque pode mudar em
// runtime pelo painel.
func (c *Client) FetchLeadMessages(ctx context.Context, conversationID, apiKey string) ([]Message, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	url := fmt.Sprintf("%s/api/v1/conversations/%s/messages", c.baseURL, conversationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar mensagens: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro lendo resposta do CRM: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("erro ao buscar mensagens (status %d)", resp.StatusCode)
	}

	messages, err := decodeMessages(body)
	if err != nil {
		return nil, err
	}

	// Só interessam as mensagens enviadas pelo lead, da mais nova para a
	// mais antiga.
	received := make([]Message, 0, len(messages))
	for _, m := range messages {
		if m.Received {
			received = append(received, m)
		}
	}
	sort.SliceStable(received, func(i, j int) bool {
		return received[i].CreatedAt > received[j].CreatedAt
	})

	return received, nil
}

// SendMessage publica a resposta na conversa do lead (o CRM entrega via
// WhatsApp).
func (c *Client) SendMessage(ctx context.Context, conversationID, body, apiKey string) error {
	if apiKey == "" {
		return ErrMissingAPIKey
	}

	payload, err := json.Marshal(sendMessageRequest{Body: body})
	if err != nil {
		return fmt.Errorf("erro ao marshal mensagem: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/conversations/%s/messages", c.baseURL, conversationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	c.setHeaders(req, apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao enviar mensagem: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("erro ao enviar mensagem (status %d): %s", resp.StatusCode, string(respBody))
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request, apiKey string) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", apiKey))
	req.Header.Set("Content-Type", "application/json")
}

// O CRM ora devolve um array puro, ora envelopa em {"messages": [...]}, ora
// em {"data": [...]}. Aceitamos os três.
func decodeMessages(body []byte) ([]Message, error) {
	var direct []Message
	if err := json.Unmarshal(body, &direct); err == nil {
		return direct, nil
	}

	var wrapped messagesResponse
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("resposta inesperada do CRM: %w", err)
	}
	if wrapped.Messages != nil {
		return wrapped.Messages, nil
	}
	return wrapped.Data, nil
}
