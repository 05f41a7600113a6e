package payments

import (
	"context"
	"fmt"

	"github.com/Maryncell/iabot-landing-page/internal/application"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

// Client envuelve la creación de sesiones de Stripe Checkout. La clave
// se valida al construir el cliente, así un deploy sin credenciales
// falla al arrancar y no en el primer pago.
type Client struct {
	successURL string
	cancelURL  string
}

func NewClient(apiKey, successURL, cancelURL string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY no configurada")
	}

	stripe.Key = apiKey

	return &Client{
		successURL: successURL,
		cancelURL:  cancelURL,
	}, nil
}

// CreateSession crea una sesión de checkout hospedado y devuelve su ID,
// con el que el front redirige al visitante a la página de pago.
func (c *Client) CreateSession(ctx context.Context, customerEmail string, items []application.CheckoutItem) (string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String("usd"),
				UnitAmount: stripe.Int64(item.PrecioCentavos),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Nombre),
				},
			},
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(customerEmail),
		SuccessURL:    stripe.String(c.successURL),
		CancelURL:     stripe.String(c.cancelURL),
		LineItems:     lineItems,
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("error creando checkout session: %w", err)
	}

	return sess.ID, nil
}
