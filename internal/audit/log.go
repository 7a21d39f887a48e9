// Package audit mantém o histórico recente de atividades exibido no painel.
// Tudo em memória: reiniciou o processo, zerou o histórico.
package audit

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mvictorr/datacrazy-cpf/internal/cpf"
)

const maxEntries = 100

// Tipos de atividade registrados.
const (
	TipoWebhook  = "WEBHOOK"
	TipoConsulta = "CONSULTA"
	TipoConfig   = "CONFIG"
	TipoTeste    = "TESTE"
)

const (
	StatusSucesso = "Sucesso"
	StatusParcial = "Parcial"
	StatusErro    = "Erro"
)

type Entry struct {
	ID        string `json:"id"`
	Data      string `json:"data"`
	Tipo      string `json:"tipo"`
	CPF       string `json:"cpf"` // sempre abreviado, nunca o número completo
	Status    string `json:"status"`
	Detalhes  string `json:"detalhes"`
	LeadPhone string `json:"lead_phone"`
	LeadName  string `json:"lead_name"`
}

type Stats struct {
	TotalConsultas int    `json:"total_consultas"`
	MsgEnviadas    int    `json:"msg_enviadas"`
	TaxaSucesso    string `json:"taxa_sucesso"`
}

// Log guarda as entradas mais recentes primeiro, limitado a maxEntries.
type Log struct {
	mu      sync.Mutex
	entries []Entry
	now     func() time.Time
}

func NewLog() *Log {
	return &Log{now: time.Now}
}

func (l *Log) Add(tipo, cpfRaw, status, detalhes, leadPhone, leadName string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if leadPhone == "" {
		leadPhone = "-"
	}
	if leadName == "" {
		leadName = "-"
	}

	entry := Entry{
		ID:        uuid.New().String(),
		Data:      l.now().Format("02/01/2006 15:04:05"),
		Tipo:      tipo,
		CPF:       cpf.Short(cpfRaw),
		Status:    status,
		Detalhes:  detalhes,
		LeadPhone: leadPhone,
		LeadName:  leadName,
	}

	l.entries = append([]Entry{entry}, l.entries...)
	if len(l.entries) > maxEntries {
		l.entries = l.entries[:maxEntries]
	}
}

// Recent devolve até n entradas, das mais novas para as mais antigas.
func (l *Log) Recent(n int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]Entry, n)
	copy(out, l.entries[:n])
	return out
}

func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

func (l *Log) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := len(l.entries)
	sucesso := 0
	for _, e := range l.entries {
		if e.Status == StatusSucesso {
			sucesso++
		}
	}

	taxa := "100%"
	if total > 0 {
		taxa = fmt.Sprintf("%.0f%%", float64(sucesso)/float64(total)*100)
	}

	return Stats{
		TotalConsultas: total,
		MsgEnviadas:    sucesso,
		TaxaSucesso:    taxa,
	}
}
