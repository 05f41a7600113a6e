package domain

// CreateCheckoutSessionRequest es el payload de /api/create-checkout-session.
// TotalPrice viene del front solo como referencia: el total se recalcula
// siempre del lado del servidor contra el catálogo.
type CreateCheckoutSessionRequest struct {
	Plan                string  `json:"plan"`
	SelectedFeaturesIds []int   `json:"selectedFeaturesIds"`
	Email               string  `json:"email"`
	Name                string  `json:"name"`
	TotalPrice          float64 `json:"totalPrice"`
}

type CreateCheckoutSessionResponse struct {
	ID string `json:"id"`
}
