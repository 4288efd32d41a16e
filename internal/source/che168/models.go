package che168

import (
	"vehicle_sync/internal/domain"
	"vehicle_sync/internal/source"
)

// Offer is the vehicle payload of the che168 feed. Price is in CNY and
// displacement in litres.
type Offer struct {
	InnerID          string           `json:"inner_id"`
	URL              string           `json:"url"`
	Mark             string           `json:"mark"`
	Model            string           `json:"model"`
	Title            string           `json:"title"`
	Year             source.Number    `json:"year"`
	Color            string           `json:"color"`
	Price            source.Number    `json:"price"`
	KmAge            source.Number    `json:"km_age"`
	EngineType       string           `json:"engine_type"`
	TransmissionType string           `json:"transmission_type"`
	BodyType         string           `json:"body_type"`
	DriveType        string           `json:"drive_type"`
	Displacement     source.Number    `json:"displacement"`
	Images           domain.ImageList `json:"images"`
}
