package models

import "time"

// NotificationType identifies the email template to render
type NotificationType string

const (
	NotificationOrderConfirmation NotificationType = "order_confirmation"
	NotificationCustomOrder       NotificationType = "custom_order_received"
)

// Notification is the message published to the notification topic
type Notification struct {
	ID        string            `json:"id"`
	Type      NotificationType  `json:"type"`
	Recipient string            `json:"recipient"`
	Data      map[string]string `json:"data"`
	CreatedAt time.Time         `json:"created_at"`
}

// Email is a rendered notification ready to send
type Email struct {
	From    string
	To      string
	Subject string
	Body    string
}
