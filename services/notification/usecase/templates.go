package usecase

import (
	"text/template"

	"github.com/piresc/urbanthreads/internal/pkg/models"
)

type emailTemplate struct {
	subject *template.Template
	body    *template.Template
}

func mustTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Option("missingkey=zero").Parse(text))
}

var emailTemplates = map[models.NotificationType]emailTemplate{
	models.NotificationOrderConfirmation: {
		subject: mustTemplate("order_confirmation_subject", "Order Confirmation - {{.store_name}}"),
		body: mustTemplate("order_confirmation", `Order Confirmation - {{.store_name}}

Order ID: {{.order_id}}
Customer Email: {{.customer_email}}
Total: ${{.total}}
Status: {{.status}}
Order Date: {{.created_at}}
{{- if .items}}

Items:
{{.items}}
{{- end}}

Thank you for your order!
`),
	},
	models.NotificationCustomOrder: {
		subject: mustTemplate("custom_order_received_subject", "New Custom T-Shirt Order Received!"),
		body: mustTemplate("custom_order_received", `New Custom T-Shirt Order Received!

Order ID: {{.order_id}}
Customer Email: {{.customer_email}}
Custom Text: {{or .custom_text "None"}}
Description: {{or .description "None"}}
Design File: {{or .file_name "None"}}
Order Date: {{.created_at}}

Please contact the customer within 24 hours with a quote.
`),
	},
}
