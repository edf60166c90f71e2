package models

// ContactRequest is the contact form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// ContactResponse acknowledges a relayed contact message.
type ContactResponse struct {
	Message string `json:"message"`
}
