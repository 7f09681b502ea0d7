package domain

// Product is a sellable item from the store catalog.
// The catalog is owned by the backend; this service only reads it.
type Product struct {
	// ID is the unique product identifier.
	ID string `json:"id"`
	// Name is the display name.
	Name string `json:"name"`
	// Description is the optional long description.
	Description string `json:"description,omitempty"`
	// Price is the unit price in CLP.
	Price int64 `json:"price"`
	// Image is the product image URL.
	Image string `json:"image,omitempty"`
	// Slug is the URL-friendly identifier.
	Slug string `json:"slug"`
	// Stock is the number of units available. Never negative.
	Stock int `json:"stock"`
	// IsActive indicates whether the product is visible in the store.
	IsActive bool `json:"isActive"`
	// IsFeatured indicates whether the product appears on the home page.
	IsFeatured bool `json:"isFeatured"`
	// CategoryID references the product's category.
	CategoryID string `json:"categoryId"`
	// Size is the garment size, when applicable.
	Size string `json:"size,omitempty"`
	// Color is the garment color, when applicable.
	Color string `json:"color,omitempty"`
	// CanBeEmbroidered indicates whether personalization is offered.
	CanBeEmbroidered bool `json:"canBeEmbroidered,omitempty"`
	// EmbroideryPrice is the per-unit surcharge for embroidery.
	// Only meaningful when CanBeEmbroidered is true.
	EmbroideryPrice int64 `json:"embroideryPrice,omitempty"`
}

// Category groups products in the catalog.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"isActive"`
	Products    []Product `json:"products,omitempty"`
}
