package dto

type AddMessageRequest struct {
	SenderID   string `json:"senderId"`
	SenderType string `json:"senderType"`
	Content    string `json:"content"`
}
