package dto

import "github.com/google/uuid"

// ─── Filter / Pagination ─────────────────────────────────────────────────────

// BusinessFilter carries the raw listing parameters from the query string.
// Page stays a string here: any garbage value coerces to page 1 downstream
// instead of failing the bind. Page size is fixed server-side and not
// user-controllable.
type BusinessFilter struct {
	Category string `form:"category"`
	Q        string `form:"q"`
	Page     string `form:"page"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type BusinessSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
}

type BusinessListResponse struct {
	Data       []BusinessSummary `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
	// Active filters echoed back so clients can rebuild page links.
	Category string `json:"category,omitempty"`
	Q        string `json:"q,omitempty"`
}

type CategoryRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type SocialLinks struct {
	Website   string `json:"website,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

type MapInfo struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	EmbedURL string  `json:"embed_url"`
	MapsURL  string  `json:"maps_url"`
}

// BusinessDetailResponse is the render-ready projection of one business:
// resolved image URL, normalized contact fields, validated optional shapes.
type BusinessDetailResponse struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Slug        string       `json:"slug"`
	Description string       `json:"description"`
	Address     string       `json:"address"`
	Hours       string       `json:"hours"`
	Phone       string       `json:"phone,omitempty"`
	WhatsAppURL string       `json:"whatsapp_url,omitempty"`
	ImageURL    string       `json:"image_url"`
	Services    []string     `json:"services,omitempty"`
	Socials     SocialLinks  `json:"socials"`
	Category    *CategoryRef `json:"category,omitempty"`
	Map         *MapInfo     `json:"map,omitempty"`
}
