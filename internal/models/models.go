package models

import (
	"time"
)

type Product struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice,omitempty"` // 0 means no discount
	Image         string    `json:"image"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"reviewCount"`
	CategoryID    int       `json:"categoryId"`
	Category      string    `json:"category"`
	Brand         string    `json:"brand"`
	InStock       bool      `json:"inStock"`
	StockCount    int       `json:"stockCount"`
	Description   string    `json:"description"`
	Features      []string  `json:"features,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	Weight        string    `json:"weight,omitempty"`
	Origin        string    `json:"origin,omitempty"`
	SKU           string    `json:"sku,omitempty"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Category struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Icon         string    `json:"icon"`
	Color        string    `json:"color"`
	Description  string    `json:"description,omitempty"`
	ProductCount int       `json:"productCount"` // derived, not stored
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CartItem is a denormalized snapshot of a product taken at add-to-cart time.
type CartItem struct {
	ProductID   int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image"`
	InStock     bool    `json:"inStock"`
	MaxQuantity int     `json:"maxQuantity,omitempty"` // stock cap recorded at add time
}

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusOutForDelivery OrderStatus = "out-for-delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the fixed status enumeration.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Address struct {
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Instructions string `json:"instructions,omitempty"`
}

type Order struct {
	ID              string      `json:"id"`
	Ref             string      `json:"ref"` // public "ORD-..." reference
	UserID          string      `json:"userId,omitempty"`
	Items           []CartItem  `json:"items"`
	Subtotal        float64     `json:"subtotal"`
	Tax             float64     `json:"tax"`
	DeliveryFee     float64     `json:"deliveryFee"`
	Discount        float64     `json:"discount"`
	Total           float64     `json:"total"`
	DeliveryAddress Address     `json:"deliveryAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	DeliveryOption  string      `json:"deliveryOption"`
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

type PaymentStatus string

const (
	PaymentStatusRequiresConfirmation PaymentStatus = "requires_confirmation"
	PaymentStatusSucceeded            PaymentStatus = "succeeded"
	PaymentStatusFailed               PaymentStatus = "failed"
)

// PaymentIntent mirrors the gateway's intent object.
type PaymentIntent struct {
	ID           string        `json:"id"`
	ClientSecret string        `json:"clientSecret"`
	Amount       float64       `json:"amount"`
	Currency     string        `json:"currency"`
	Status       PaymentStatus `json:"status"`
}

// PaymentConfirmation is the gateway's answer to a confirm call.
type PaymentConfirmation struct {
	ID             string        `json:"id"`
	Status         PaymentStatus `json:"status"`
	AmountReceived float64       `json:"amountReceived"`
	Currency       string        `json:"currency"`
}

// Payment is the recorded back-office view of a settled payment.
type Payment struct {
	ID        string        `json:"id"`
	OrderID   string        `json:"orderId"`
	IntentID  string        `json:"intentId"`
	Amount    float64       `json:"amount"`
	Currency  string        `json:"currency"`
	Status    PaymentStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"` // "admin" or "customer"
	Password  string    `json:"-"`    // bcrypt hash
	CreatedAt time.Time `json:"createdAt"`
}
