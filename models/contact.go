package models

import "time"

// ContactMessage is a contact-form submission awaiting admin review.
type ContactMessage struct {
	MessageID string    `json:"id" bson:"messageId"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Subject   string    `json:"subject" bson:"subject"`
	Message   string    `json:"message" bson:"message"`
	IsRead    bool      `json:"isRead" bson:"isRead"`
	IsReplied bool      `json:"isReplied" bson:"isReplied"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
