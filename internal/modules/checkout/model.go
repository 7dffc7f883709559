package checkout

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem is one cart line snapshotted into an order.
type OrderItem struct {
	Name      string `json:"name" bson:"name"`
	UnitPrice int64  `json:"unit_price" bson:"unit_price"`
	Quantity  int64  `json:"quantity" bson:"quantity"`
	LineTotal int64  `json:"line_total" bson:"line_total"`
}

// Order is the record handed off to the sink at checkout. The storefront
// keeps no local history of past orders.
type Order struct {
	ID             uuid.UUID   `json:"id" bson:"id"`
	SheetID        string      `json:"sheet_id" bson:"sheet_id"`
	ProfileName    string      `json:"profile_name" bson:"profile_name"`
	WhatsAppNumber string      `json:"whatsapp_number" bson:"whatsapp_number"`
	Items          []OrderItem `json:"items" bson:"items"`
	Total          int64       `json:"total" bson:"total"`
	CreatedAt      time.Time   `json:"created_at" bson:"created_at"`
}

// Result is what a checkout returns. The WhatsApp handoff and the sink write
// are independent steps: the deep link is always produced, and a sink failure
// is reported without rolling the handoff back.
type Result struct {
	Order       *Order `json:"order"`
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
	Persisted   bool   `json:"persisted"`
	SinkRef     string `json:"sink_ref,omitempty"`
	PersistErr  string `json:"persist_error,omitempty"`
}
