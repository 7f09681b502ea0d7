package domain

import "time"

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// PaymentStatus is the state of the payment attached to an order.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusApproved  PaymentStatus = "approved"
	PaymentStatusRejected  PaymentStatus = "rejected"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// ShippingType identifies a delivery method.
type ShippingType string

const (
	ShippingChilexpress  ShippingType = "chilexpress"
	ShippingCorreosChile ShippingType = "correos_chile"
	ShippingStarken      ShippingType = "starken"
	ShippingStorePickup  ShippingType = "retiro_tienda"
)

// ShippingOption is a delivery method offered at checkout, sourced from
// the backend and selected (not owned) by the checkout flow.
type ShippingOption struct {
	Type          ShippingType `json:"type"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	EstimatedDays int          `json:"estimatedDays"`
	Price         int64        `json:"price"`
	Enabled       bool         `json:"enabled"`
}

// OrderItem is one purchased line of an order.
type OrderItem struct {
	ID              string `json:"id"`
	ProductID       string `json:"productId"`
	ProductName     string `json:"productName"`
	UnitPrice       int64  `json:"unitPrice"`
	Quantity        int    `json:"quantity"`
	Subtotal        int64  `json:"subtotal"`
	IsEmbroidered   bool   `json:"isEmbroidered,omitempty"`
	EmbroideryName  string `json:"embroideryName,omitempty"`
	EmbroideryPrice int64  `json:"embroideryPrice,omitempty"`
}

// Order is a persisted order, owned by the backend.
type Order struct {
	ID              string        `json:"id"`
	OrderNumber     string        `json:"orderNumber"`
	CustomerName    string        `json:"customerName"`
	CustomerEmail   string        `json:"customerEmail"`
	CustomerPhone   string        `json:"customerPhone"`
	ShippingAddress string        `json:"shippingAddress,omitempty"`
	ShippingType    ShippingType  `json:"shippingType,omitempty"`
	TrackingNumber  string        `json:"trackingNumber,omitempty"`
	Subtotal        int64         `json:"subtotal"`
	Discount        int64         `json:"discount"`
	Total           int64         `json:"total"`
	Status          OrderStatus   `json:"status"`
	PaymentMethod   string        `json:"paymentMethod"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	WebpayToken     string        `json:"webpayToken,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	Items           []OrderItem   `json:"items,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}
