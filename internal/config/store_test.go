package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestNewStoreDefaults(t *testing.T) {
	store := NewStore(Config{})
	cfg := store.Get()

	assert.Equal(t, DefaultTemplate, cfg.MessageTemplate)
	assert.Equal(t, "mascarado", cfg.FormatoCPF)
	assert.Empty(t, cfg.CRMAPIKey)
}

func TestSetMergeParcial(t *testing.T) {
	store := NewStore(Config{
		CRMAPIKey:   "crm-key-original",
		CPFAPIToken: "token-original",
	})

	result := store.Set(Update{MessageTemplate: strPtr("X")})

	assert.Equal(t, "X", result.MessageTemplate)
	// campos não informados permanecem intactos
	assert.Equal(t, "crm-key-original", result.CRMAPIKey)
	assert.Equal(t, "token-original", result.CPFAPIToken)

	assert.Equal(t, "X", store.Get().MessageTemplate)
}

func TestSetAceitaStringVazia(t *testing.T) {
	store := NewStore(Config{CRMAPIKey: "algo"})

	result := store.Set(Update{CRMAPIKey: strPtr("")})

	assert.Equal(t, "", result.CRMAPIKey)
}

func TestSetConcorrente(t *testing.T) {
	store := NewStore(Config{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.Set(Update{CRMAPIKey: strPtr("a"), CPFAPIToken: strPtr("a")})
		}()
		go func() {
			defer wg.Done()
			store.Set(Update{CRMAPIKey: strPtr("b"), CPFAPIToken: strPtr("b")})
		}()
	}
	wg.Wait()

	// last-writer-wins, mas nunca um merge rasgado entre os dois Sets
	cfg := store.Get()
	assert.Equal(t, cfg.CRMAPIKey, cfg.CPFAPIToken)
}

func TestMasked(t *testing.T) {
	cfg := Config{
		CRMAPIKey:   "sk-datacrazy-1234567890",
		CPFAPIToken: "curta",
		SecretKey:   "admin123",
	}

	masked := cfg.Masked()

	assert.Equal(t, "***1234567890", masked.CRMAPIKey)
	assert.Equal(t, "", masked.CPFAPIToken)
	assert.Equal(t, "", masked.SecretKey)
}
