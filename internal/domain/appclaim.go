package domain

import "time"

// AppClaim es la definición maestra de un tipo de claim disponible
// para las aplicaciones cliente.
type AppClaim struct {
	ID          string    `json:"id"`
	ClaimType   string    `json:"claim_type"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
