package constants

// NSQ topics and channels
const (
	TopicNotifications = "store.notifications"
	ChannelEmail       = "email"
)

// Notification data keys
const (
	DataOrderID       = "order_id"
	DataCustomerEmail = "customer_email"
	DataTotal         = "total"
	DataStatus        = "status"
	DataCreatedAt     = "created_at"
	DataItems         = "items"
	DataCustomText    = "custom_text"
	DataDescription   = "description"
	DataFileName      = "file_name"
)
