package queries

import (
	"time"

	"github.com/google/uuid"
)

// ListOptions carries the generic filter[field]=v / search[field]=v /
// sort[field]=1|-1 / page / limit query grammar. Field names are validated
// against per-store allowlists in the read stores, never interpolated raw.
type ListOptions struct {
	Filters  map[string]string
	Searches map[string]string
	Sort     []SortKey
	Page     int
	Limit    int
}

type SortKey struct {
	Field string
	Desc  bool
}

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Normalize clamps paging values to sane bounds.
func (o *ListOptions) Normalize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit <= 0 {
		o.Limit = DefaultPageLimit
	}
	if o.Limit > MaxPageLimit {
		o.Limit = MaxPageLimit
	}
}

func (o ListOptions) Offset() int {
	return (o.Page - 1) * o.Limit
}

// ListDetails is the count summary returned next to every listing.
type ListDetails struct {
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

func NewListDetails(total int64, opts ListOptions) ListDetails {
	pages := int(total) / opts.Limit
	if int(total)%opts.Limit != 0 {
		pages++
	}
	if pages == 0 {
		pages = 1
	}
	return ListDetails{
		Total: total,
		Pages: pages,
		Page:  opts.Page,
		Limit: opts.Limit,
	}
}

// Read models (DTO for read side)
type CarView struct {
	ID               uuid.UUID `json:"id"`
	PlateNumber      string    `json:"plate_number"`
	Brand            string    `json:"brand"`
	Model            string    `json:"model"`
	Year             int       `json:"year"`
	Color            string    `json:"color"`
	PricePerDayCents int64     `json:"price_per_day_cents"`
	IsAvailable      bool      `json:"is_available"`
	CreatedByEmail   string    `json:"created_by_email"`
	UpdatedByEmail   string    `json:"updated_by_email"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ReservationView struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	UserEmail      string    `json:"user_email"`
	UserName       string    `json:"user_name"`
	CarID          uuid.UUID `json:"car_id"`
	CarPlateNumber string    `json:"car_plate_number"`
	CarBrand       string    `json:"car_brand"`
	CarModel       string    `json:"car_model"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	AmountCents    int64     `json:"amount_cents"`
	CreatedByEmail string    `json:"created_by_email"`
	UpdatedByEmail string    `json:"updated_by_email"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	IsActive     bool       `json:"is_active"`
	PasswordHash string     `json:"-"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}
