package cpf

import (
	"regexp"
	"strings"
)

// Formatos de exibição aceitos pelo painel.
const (
	FormatoMascarado = "mascarado"
	FormatoCompleto  = "completo"
	FormatoParcial   = "parcial"
)

var (
	nonDigits       = regexp.MustCompile(`\D`)
	formattedCPF    = regexp.MustCompile(`\d{3}[\.\s]?\d{3}[\.\s]?\d{3}[\-\.\s]?\d{2}`)
	elevenDigitsRun = regexp.MustCompile(`\d{11}`)
)

// OnlyDigits remove tudo que não for dígito.
func OnlyDigits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// Extract procura um CPF em texto livre (mensagem do lead). Primeiro tenta o
// padrão formatado (123.456.789-01), depois qualquer sequência de 11 dígitos
// no texto limpo. Retorna "" quando não encontra.
func Extract(texto string) string {
	if texto == "" {
		return ""
	}

	if m := formattedCPF.FindString(texto); m != "" {
		digits := OnlyDigits(m)
		if len(digits) == 11 {
			return digits
		}
	}

	limpo := strings.NewReplacer(" ", "", ".", "", "-", "", "/", "").Replace(texto)
	if m := elevenDigitsRun.FindString(limpo); m != "" {
		return m
	}

	if m := elevenDigitsRun.FindString(OnlyDigits(texto)); m != "" {
		return m
	}

	return ""
}

// Format devolve o CPF no agrupamento padrão XXX.XXX.XXX-XX.
func Format(cpf string) string {
	if len(cpf) != 11 {
		return cpf
	}
	return cpf[:3] + "." + cpf[3:6] + "." + cpf[6:9] + "-" + cpf[9:]
}

// Mask formata o CPF no formato de exibição escolhido. A regra canônica do
// formato mascarado mantém os 3 primeiros dígitos, os dígitos 8-9 antes do
// traço e os 2 finais: 12345678901 -> 123.***.**89-01.
func Mask(cpf, formato string) string {
	if len(cpf) != 11 {
		return ""
	}

	switch formato {
	case FormatoCompleto:
		return Format(cpf)
	case FormatoParcial:
		return "***" + cpf[3:9] + "**"
	default: // mascarado
		return cpf[:3] + ".***.**" + cpf[7:9] + "-" + cpf[9:]
	}
}

// Short abrevia o CPF para o log de atividades (123***01). Nunca expõe o
// número completo.
func Short(cpf string) string {
	if len(cpf) < 5 {
		return "-"
	}
	return cpf[:3] + "***" + cpf[len(cpf)-2:]
}
