package encar

import (
	"vehicle_sync/internal/domain"
	"vehicle_sync/internal/source"
)

// Offer is the vehicle payload of the Encar feed. Price is in units of
// 10,000 KRW and displacement is a string in cc.
type Offer struct {
	InnerID          string           `json:"inner_id"`
	URL              string           `json:"url"`
	Mark             string           `json:"mark"`
	Model            string           `json:"model"`
	Generation       string           `json:"generation"`
	Configuration    string           `json:"configuration"`
	Complectation    string           `json:"complectation"`
	Year             source.Number    `json:"year"`
	Color            string           `json:"color"`
	Price            source.Number    `json:"price"`
	KmAge            source.Number    `json:"km_age"`
	EngineType       string           `json:"engine_type"`
	TransmissionType string           `json:"transmission_type"`
	BodyType         string           `json:"body_type"`
	Displacement     source.Number    `json:"displacement"`
	Images           domain.ImageList `json:"images"`
}
