package models

import "time"

// NewsletterSubscriber represents a newsletter subscription
type NewsletterSubscriber struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	SubscribedAt time.Time `json:"subscribed_at" db:"subscribed_at"`
}

// SubscribeRequest is the payload for subscribing to the newsletter
type SubscribeRequest struct {
	Email string `json:"email"`
}

// MessageResponse is a plain acknowledgement body
type MessageResponse struct {
	Message string `json:"message"`
}
