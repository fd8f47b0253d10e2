package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// Color es opcional; si va vacío el use case asigna uno de la paleta.
type CreateProductRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	Percentage decimal.Decimal `json:"percentage" validate:"required"`
	Color      string          `json:"color,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id.
type UpdateProductRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	Percentage decimal.Decimal `json:"percentage" validate:"required"`
	Color      string          `json:"color,omitempty"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"`
	Color      string          `json:"color"`
	IsDefault  bool            `json:"is_default"`
	CreatedAt  time.Time       `json:"created_at"`
}

// CreateClientRequest body para POST /api/clients.
type CreateClientRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// UpdateClientRequest body para PUT /api/clients/:id.
type UpdateClientRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ImportClientsResponse resultado de la importación CSV de clientes.
type ImportClientsResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// CreateSellerRequest body para POST /api/sellers.
type CreateSellerRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty"`
	IsDefault bool   `json:"is_default,omitempty"`
}

// UpdateSellerRequest body para PUT /api/sellers/:id.
type UpdateSellerRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Phone string `json:"phone,omitempty"`
}

// SellerResponse vendedor en respuestas.
type SellerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}
