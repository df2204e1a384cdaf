package dto

// ─── Request DTO ─────────────────────────────────────────────────────────────

// SubmissionRequest is the public registration form. Required fields must
// block the submission before any network call is made; everything else is
// optional and stored/emailed only when present.
type SubmissionRequest struct {
	BusinessName string `form:"business_name" validate:"required,min=2,max=120"`
	ContactName  string `form:"representative_name" validate:"required,min=2,max=120"`
	CategoryID   string `form:"category" validate:"required,uuid"`
	Email        string `form:"email" validate:"required,email"`
	Phone        string `form:"phone" validate:"omitempty,max=30"`
	Whatsapp     string `form:"whatsapp" validate:"omitempty,max=30"`
	Address      string `form:"address" validate:"omitempty,max=200"`
	Description  string `form:"description" validate:"omitempty,max=1000"`
	Hours        string `form:"hours" validate:"omitempty,max=120"`
}

// ─── Response DTO ────────────────────────────────────────────────────────────

// SubmissionResponse tells the form what happened. NotificationSent=false is
// a soft warning only: the submission itself is already stored.
type SubmissionResponse struct {
	Detail           string `json:"detail"`
	NotificationSent bool   `json:"notification_sent"`
}
