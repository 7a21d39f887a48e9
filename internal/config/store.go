package config

import (
	"os"
	"sync"

	"github.com/mvictorr/datacrazy-cpf/internal/cpf"
)

// DefaultTemplate é a mensagem padrão enviada ao lead. Os placeholders
// {chave} são substituídos pelo renderizador.
const DefaultTemplate = `Olá! Encontrei os dados do CPF consultado:

CPF: {cpf_mascarado}
Nome: {nome}
Nascimento: {nascimento}
Sexo: {sexo}
Mãe: {nome_mae}

Caso precise de mais informações, estou à disposição.`

// Config do serviço. Vive apenas em memória; em produção as credenciais
// chegam por variável de ambiente ou pelo painel (/api/config).
type Config struct {
	CRMAPIKey       string `json:"crm_api_key"`
	CPFAPIToken     string `json:"cpf_api_token"`
	MessageTemplate string `json:"message_template"`
	SecretKey       string `json:"secret_key,omitempty"`
	FormatoCPF      string `json:"formato_cpf"`
}

// Update é um merge parcial: campos nil ficam como estão.
type Update struct {
	CRMAPIKey       *string `json:"crm_api_key"`
	CPFAPIToken     *string `json:"cpf_api_token"`
	MessageTemplate *string `json:"message_template"`
	SecretKey       *string `json:"secret_key"`
	FormatoCPF      *string `json:"formato_cpf"`
}

// Store guarda a única instância de Config do processo. Get/Set são
// serializados pelo mutex: um Set nunca observa escrita parcial de outro.
type Store struct {
	mu  sync.RWMutex
	cfg Config
}

func NewStore(cfg Config) *Store {
	if cfg.FormatoCPF == "" {
		cfg.FormatoCPF = cpf.FormatoMascarado
	}
	if cfg.MessageTemplate == "" {
		cfg.MessageTemplate = DefaultTemplate
	}
	return &Store{cfg: cfg}
}

// NewStoreFromEnv semeia as credenciais a partir do ambiente. Nada é
// persistido em disco.
func NewStoreFromEnv() *Store {
	return NewStore(Config{
		CRMAPIKey:   os.Getenv("CRM_API_KEY"),
		CPFAPIToken: os.Getenv("CPF_API_TOKEN"),
		SecretKey:   os.Getenv("SECRET_KEY"),
	})
}

func (s *Store) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

func (s *Store) Set(u Update) Config {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.CRMAPIKey != nil {
		s.cfg.CRMAPIKey = *u.CRMAPIKey
	}
	if u.CPFAPIToken != nil {
		s.cfg.CPFAPIToken = *u.CPFAPIToken
	}
	if u.MessageTemplate != nil {
		s.cfg.MessageTemplate = *u.MessageTemplate
	}
	if u.SecretKey != nil {
		s.cfg.SecretKey = *u.SecretKey
	}
	if u.FormatoCPF != nil {
		s.cfg.FormatoCPF = *u.FormatoCPF
	}

	return s.cfg
}

// Masked devolve uma cópia com as credenciais ofuscadas para exibição no
// painel: *** + últimos 10 caracteres, ou vazio quando a chave é curta.
func (c Config) Masked() Config {
	c.CRMAPIKey = maskCredential(c.CRMAPIKey)
	c.CPFAPIToken = maskCredential(c.CPFAPIToken)
	c.SecretKey = ""
	return c
}

func maskCredential(s string) string {
	if len(s) > 10 {
		return "***" + s[len(s)-10:]
	}
	return ""
}
