// Package message monta a resposta enviada ao lead a partir do template
// configurado pelo operador no painel.
package message

import (
	"strings"

	"github.com/mvictorr/datacrazy-cpf/internal/cpf"
	"github.com/mvictorr/datacrazy-cpf/internal/entity"
)

// Placeholders reconhecidos no template. Conjunto fechado de propósito:
// a substituição é total e auditável, sem reflection sobre o record.
var contextKeys = []struct {
	key   string
	value func(r entity.CpfRecord, formato string) string
}{
	{"cpf_mascarado", func(r entity.CpfRecord, formato string) string { return cpf.Mask(r.CPF, formato) }},
	{"cpf", func(r entity.CpfRecord, _ string) string { return cpf.Format(r.CPF) }},
	{"nome", func(r entity.CpfRecord, _ string) string { return r.Nome }},
	{"nascimento", func(r entity.CpfRecord, _ string) string { return r.Nascimento }},
	{"sexo", func(r entity.CpfRecord, _ string) string { return r.Sexo }},
	{"nome_mae", func(r entity.CpfRecord, _ string) string { return r.NomeMae }},
}

// Render substitui cada {chave} reconhecida do template pelo valor do
// record. Placeholders desconhecidos ficam intactos — o template é texto
// livre do operador, não é erro referenciar uma chave que não existe.
// Nenhum escape é aplicado: o destino final é o canal de WhatsApp do CRM.
func Render(template string, record entity.CpfRecord, formato string) string {
	pairs := make([]string, 0, len(contextKeys)*2)
	for _, ck := range contextKeys {
		pairs = append(pairs, "{"+ck.key+"}", ck.value(record, formato))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
