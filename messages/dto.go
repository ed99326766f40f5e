package messages

// SendMessageRequest is the payload for sending a message. Image carries
// a base64 data URI which is uploaded to the asset store before the
// message is persisted.
type SendMessageRequest struct {
	Text  string `json:"text,omitempty"`
	Image string `json:"image,omitempty"`
}

// MessageEnvelope wraps a single message in the standard success body.
type MessageEnvelope struct {
	Status  string   `json:"status"`
	Message *Message `json:"message"`
}

// MessagesEnvelope wraps a conversation in the standard success body.
type MessagesEnvelope struct {
	Status   string    `json:"status"`
	Messages []Message `json:"messages"`
}
