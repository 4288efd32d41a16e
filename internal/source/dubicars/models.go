package dubicars

import (
	"vehicle_sync/internal/domain"
	"vehicle_sync/internal/source"
)

// Offer is the vehicle payload of the Dubicars feed. Every field arrives as a
// string, prices are in AED with "-1" meaning "price on request", and images
// is a JSON-encoded array.
type Offer struct {
	InnerID          string           `json:"inner_id"`
	URL              string           `json:"url"`
	Mark             string           `json:"mark"`
	Model            string           `json:"model"`
	Configuration    string           `json:"configuration"`
	Year             source.Number    `json:"year"`
	Price            source.Number    `json:"price"`
	KmAge            source.Number    `json:"km_age"`
	Color            string           `json:"color"`
	EngineType       string           `json:"engine_type"`
	BodyType         string           `json:"body_type"`
	TransmissionType string           `json:"transmission_type"`
	DriveType        string           `json:"drive_type"`
	Displacement     source.Number    `json:"displacement"`
	Images           domain.ImageList `json:"images"`
}
