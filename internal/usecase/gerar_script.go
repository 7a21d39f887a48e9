package usecase

import (
	"fmt"
	"strings"
)

// Snippet colado na ação "Executar JavaScript" do DataCrazy. Lê o contexto
// da sessão, chama nosso webhook e loga a resposta; quem decide enviar a
// mensagem é a própria automação, olhando o campo success do corpo.
const scriptTemplate = `(async () => {
    const conversationId = await session.getValue('conversationId');
    const leadPhone = await session.getValue('leadPhone');
    const leadName = await session.getValue('leadName');

    let mensagem = null;
    try { mensagem = await session.getValue('lastMessage.body'); } catch (e) {}
    if (!mensagem) {
        try {
            const lm = await session.getValue('lastMessage');
            if (lm) mensagem = lm.body || lm.text || lm;
        } catch (e) {}
    }

    if (!conversationId) return;

    const response = await fetch('%s/api/webhook/datacrazy', {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify({ conversationId, leadPhone, leadName, mensagem })
    });

    const data = await response.json();
    console.log('Resposta:', JSON.stringify(data));
})();`

// GenerateAutomationScript embute a URL base no snippet. Só exige URL não
// vazia: quem cola o script é o operador e a URL nunca é dereferenciada
// aqui.
func GenerateAutomationScript(baseURL string) (string, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return "", &DomainError{
			Code:    CodeMissingBaseURL,
			Message: "base_url é obrigatória",
		}
	}
	return fmt.Sprintf(scriptTemplate, baseURL), nil
}
