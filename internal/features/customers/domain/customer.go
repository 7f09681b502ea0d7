package domain

import "time"

// Customer is a registered store customer, owned by the backend.
type Customer struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	Region    string    `json:"region,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Session binds a browser session to a customer: the backend-issued token
// plus a cached profile. Both are best-effort state; a corrupt or stale
// session degrades to logged-out.
type Session struct {
	Token    string   `json:"token"`
	Customer Customer `json:"customer"`
}

// Registration is the input for creating a customer account.
type Registration struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Address         string `json:"address,omitempty"`
	City            string `json:"city,omitempty"`
	Region          string `json:"region,omitempty"`
}
