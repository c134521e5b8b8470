package domain

// SignupRequest represents a signup request.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the session token returned by signup and login.
type AuthResponse struct {
	Token string `json:"token"`
}

// ChatRequest represents a chat message from the client. ConversationID is
// empty on the first message of a new conversation.
type ChatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversationId,omitempty"`
}

// ChatResponse wraps the updated conversation after a successful round.
type ChatResponse struct {
	Chat *Conversation `json:"chat"`
}

// ListChatsResponse represents the response for listing conversations.
type ListChatsResponse struct {
	Chats []Conversation `json:"chats"`
}

// ErrorResponse is the JSON body returned for every error status.
type ErrorResponse struct {
	Error string `json:"error"`
}
