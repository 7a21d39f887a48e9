package datacrazy

// Message é uma mensagem de conversa no DataCrazy. Received marca as que o
// lead mandou (as nossas próprias voltam como false).
type Message struct {
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
	Received  bool   `json:"received"`
}

type messagesResponse struct {
	Messages []Message `json:"messages"`
	Data     []Message `json:"data"`
}

type sendMessageRequest struct {
	Body string `json:"body"`
}
