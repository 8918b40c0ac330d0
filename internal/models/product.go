package models

// Product representa un artículo del catálogo
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"min=0"`
	Image       string  `json:"image" validate:"required,url"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock" validate:"min=0"`
}

// ProductInput son los campos aceptados al crear un producto.
// Stock es puntero para distinguir "omitido" (default 10) de cero.
type ProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"min=0"`
	Image       string  `json:"image" validate:"required,url"`
	Category    string  `json:"category"`
	Stock       *int    `json:"stock" validate:"omitempty,min=0"`
}

// ProductUpdate representa los campos actualizables de un producto
type ProductUpdate struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string  `json:"description,omitempty" validate:"omitempty,min=1"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	Image       *string  `json:"image,omitempty" validate:"omitempty,url"`
	Category    *string  `json:"category,omitempty"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,min=0"`
}
