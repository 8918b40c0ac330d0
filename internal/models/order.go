package models

// Order es un pedido confirmado, inmutable una vez creado
type Order struct {
	ID           string     `json:"id"`
	CustomerName string     `json:"customerName"`
	Email        string     `json:"email"`
	Address      string     `json:"address"`
	Items        []CartItem `json:"items"`
	Total        float64    `json:"total"`
	CreatedAt    string     `json:"createdAt"`
}

// OrderInput son los campos aceptados en el checkout.
// El total lo envía el cliente y se guarda tal cual.
type OrderInput struct {
	CustomerName string     `json:"customerName" validate:"required"`
	Email        string     `json:"email" validate:"required,email"`
	Address      string     `json:"address" validate:"required"`
	Items        []CartItem `json:"items" validate:"required,dive"`
	Total        float64    `json:"total"`
}

// LoginRequest son las credenciales del panel de administración
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
