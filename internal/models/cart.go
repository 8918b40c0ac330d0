package models

// CartItem es una línea del carrito de sesión
type CartItem struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

// CartAddRequest agrega unidades de un producto al carrito
type CartAddRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CartUpdateRequest cambia la cantidad de una línea.
// Quantity es puntero: cero y negativos son válidos y eliminan la línea.
type CartUpdateRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}
