package types

import "time"

// Medicine represents a pharmacy catalog item
type Medicine struct {
	ID                   int     `json:"id"`
	Name                 string  `json:"name"`
	Price                float64 `json:"price"`
	Category             string  `json:"category"`
	RequiresPrescription bool    `json:"requires_prescription"`
	Description          string  `json:"description,omitempty"`
	Usage                string  `json:"usage,omitempty"`
	SideEffects          string  `json:"side_effects,omitempty"`
	Storage              string  `json:"storage,omitempty"`
}

// CartItem is a cart line: a medicine with quantity >= 1. Lines never persist
// at quantity zero; they are removed instead.
type CartItem struct {
	Medicine
	Quantity int `json:"quantity"`
}

// Order is the immutable snapshot produced at checkout.
type Order struct {
	ID       string     `json:"id"`
	Items    []CartItem `json:"items"`
	Total    float64    `json:"total"`
	PlacedAt time.Time  `json:"placed_at"`
}

// CardDetails carries the payment form fields for the simulated checkout.
type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}
