package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Source is the canonical market a vehicle comes from.
type Source string

const (
	SourceKorea Source = "korea"
	SourceChina Source = "china"
	SourceDubai Source = "dubai"
)

// Sources lists every market with a sync pipeline, in scheduling order.
var Sources = []Source{SourceKorea, SourceChina, SourceDubai}

func ParseSource(s string) (Source, error) {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case SourceKorea:
		return SourceKorea, nil
	case SourceChina:
		return SourceChina, nil
	case SourceDubai:
		return SourceDubai, nil
	}
	return "", ErrUnknownSource
}

type AuctionStatus string

const (
	AuctionOngoing  AuctionStatus = "ongoing"
	AuctionUpcoming AuctionStatus = "upcoming"
	AuctionSold     AuctionStatus = "sold"
	AuctionEnded    AuctionStatus = "ended"
)

// InventoryStatus is the sale state of a vehicle in our own inventory.
type InventoryStatus string

const (
	StatusAvailable   InventoryStatus = "available"
	StatusReserved    InventoryStatus = "reserved"
	StatusSold        InventoryStatus = "sold"
	StatusUnavailable InventoryStatus = "unavailable"
)

// Vehicle is the canonical, source-agnostic inventory record.
// Pointer fields are optional: nil means "not supplied by the upstream".
type Vehicle struct {
	ID              int64           `json:"id"`
	Source          Source          `json:"source" validate:"required"`
	SourceID        string          `json:"source_id" validate:"required"`
	SourceURL       *string         `json:"source_url,omitempty"`
	Platform        string          `json:"platform"`
	Make            string          `json:"make" validate:"required"`
	Model           string          `json:"model" validate:"required"`
	Year            int             `json:"year" validate:"gte=1900,lte=2100"`
	Mileage         *int            `json:"mileage,omitempty"`
	EngineCC        *int            `json:"engine_cc,omitempty"`
	Transmission    *string         `json:"transmission,omitempty"`
	FuelType        *string         `json:"fuel_type,omitempty"`
	Color           *string         `json:"color,omitempty"`
	BodyType        *string         `json:"body_type,omitempty"`
	DriveType       *string         `json:"drive_type,omitempty"`
	Grade           *string         `json:"grade,omitempty"`
	StartPriceUSD   *int64          `json:"start_price_usd,omitempty"`
	CurrentPriceUSD *int64          `json:"current_price_usd,omitempty"`
	BuyNowPriceUSD  *int64          `json:"buy_now_price_usd,omitempty"`
	Images          ImageList       `json:"images"`
	AuctionStatus   AuctionStatus   `json:"auction_status"`
	Status          InventoryStatus `json:"status"`
	IsVisible       bool            `json:"is_visible"`
	ViewCount       int             `json:"view_count"`
	FavoriteCount   int             `json:"favorite_count"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// FirstImage returns the cover image or "" when the vehicle has none.
func (v *Vehicle) FirstImage() string {
	if len(v.Images) == 0 {
		return ""
	}
	return v.Images[0]
}

// PriceUpdate is a price-only change delivered by an incremental feed.
type PriceUpdate struct {
	Source          Source `json:"source"`
	SourceID        string `json:"source_id"`
	CurrentPriceUSD int64  `json:"current_price_usd"`
}

// ImageList is an ordered list of image URLs. Upstreams deliver images either
// as a JSON array or as a JSON-encoded string holding an array; both decode
// here. Anything else decodes to an empty list and never fails.
type ImageList []string

func (l *ImageList) UnmarshalJSON(data []byte) error {
	*l = ParseImages(data)
	return nil
}

// ParseImages decodes an array-or-string image payload.
func ParseImages(data []byte) ImageList {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return ImageList{}
	}

	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal([]byte(trimmed), &inner); err != nil {
			return ImageList{}
		}
		return ParseImages([]byte(inner))
	}

	if trimmed[0] != '[' {
		return ImageList{}
	}

	var raw []any
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return ImageList{}
	}

	images := make(ImageList, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		images = append(images, s)
	}
	return images
}
