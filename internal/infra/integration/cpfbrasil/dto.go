package cpfbrasil

import "github.com/mvictorr/datacrazy-cpf/internal/entity"

// --- RESPONSE: o que a api.cpf-brasil.org devolve ---
type lookupResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    recordPayload `json:"data"`
}

// O provedor ora manda os campos em caixa alta (NOME, NASC), ora em
// minúsculo. Aceitamos os dois e coalescemos na conversão.
type recordPayload struct {
	Nome   string `json:"NOME"`
	NomeLC string `json:"nome"`
	Nasc   string `json:"NASC"`
	NascLC string `json:"nascimento"`
	Sexo   string `json:"SEXO"`
	SexoLC string `json:"sexo"`
	Mae    string `json:"NOME_MAE"`
	MaeLC  string `json:"nome_mae"`
}

func coalesce(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// toRecord converte o payload do provedor no record interno. Campo ausente
// vira string vazia, nunca nil chegando no renderizador.
func (p recordPayload) toRecord(cpfDigits string) *entity.CpfRecord {
	return &entity.CpfRecord{
		CPF:        cpfDigits,
		Nome:       coalesce(p.Nome, p.NomeLC),
		Nascimento: coalesce(p.Nasc, p.NascLC),
		Sexo:       coalesce(p.Sexo, p.SexoLC),
		NomeMae:    coalesce(p.Mae, p.MaeLC),
	}
}
