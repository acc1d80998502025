package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateContactRequest struct {
	Name    string  `json:"name"    validate:"required,min=1,max=120"`
	Email   string  `json:"email"   validate:"required,email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Role    *string `json:"role"`
	Type    string  `json:"type"    validate:"required,oneof=SUPPLIER MANUFACTURER CUSTOMER OTHER"`
	Notes   *string `json:"notes"`
}

type UpdateContactRequest struct {
	Name    *string `json:"name"  validate:"omitempty,min=1,max=120"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Role    *string `json:"role"`
	Type    *string `json:"type"  validate:"omitempty,oneof=SUPPLIER MANUFACTURER CUSTOMER OTHER"`
	Notes   *string `json:"notes"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ContactResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`
	Role    *string `json:"role,omitempty"`
	Type    string  `json:"type"`
	Notes   *string `json:"notes,omitempty"`
}
