package entity

// Entidade: CpfRecord
// Dados do titular retornados pela API de CPF. Imutável após a consulta;
// vive apenas durante a requisição que o criou.
type CpfRecord struct {
	CPF        string `json:"cpf"` // 11 dígitos, sem pontuação
	Nome       string `json:"nome"`
	Nascimento string `json:"nascimento"`
	Sexo       string `json:"sexo"`
	NomeMae    string `json:"nome_mae"`
}
