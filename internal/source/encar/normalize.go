package encar

import (
	"encoding/json"
	"fmt"

	"vehicle_sync/internal/domain"
	"vehicle_sync/internal/source"
	"vehicle_sync/internal/validator"
)

const (
	Platform = "encar"

	// krwPerUnit converts the feed's price unit to won.
	krwPerUnit = 10000
	krwToUSD   = 0.00075
)

var transmissions = map[string]string{
	"Automatic":      "automatic",
	"Manual":         "manual",
	"Semi-Automatic": "automatic",
	"CVT":            "cvt",
	"Other":          "automatic",
}

var fuelTypes = map[string]string{
	"Gasoline":          "petrol",
	"Diesel":            "diesel",
	"Electric":          "electric",
	"Hybrid (Gasoline)": "hybrid",
	"Hybrid (Diesel)":   "hybrid",
	"Hydrogen":          "electric",
	"LPG":               "lpg",
	"CNG":               "lpg",
	"Gasoline + LPG":    "lpg",
	"Gasoline + CNG":    "lpg",
	"LPG + Electric":    "hybrid",
	"Other":             "petrol",
}

var bodyTypes = map[string]string{
	"SUV":            "suv",
	"Sedan":          "sedan",
	"Hatchback":      "hatchback",
	"Minivan":        "minivan",
	"Pickup Truck":   "pickup",
	"Coupe/Roadster": "coupe",
	"Microbus":       "van",
	"RV":             "other",
	"Other":          "other",
}

type Normalizer struct {
	validator *validator.Validator
}

func NewNormalizer(v *validator.Validator) *Normalizer {
	return &Normalizer{validator: v}
}

func (n *Normalizer) SourceID(innerID string) string {
	return "encar_" + innerID
}

func (n *Normalizer) Normalize(innerID string, payload json.RawMessage) (*domain.Vehicle, error) {
	var offer Offer
	if err := json.Unmarshal(payload, &offer); err != nil {
		return nil, fmt.Errorf("%w: decode encar offer %s: %v", domain.ErrInvalidRecord, innerID, err)
	}
	if offer.InnerID == "" {
		offer.InnerID = innerID
	}

	price := source.USD(offer.Price, krwPerUnit*krwToUSD)

	v := &domain.Vehicle{
		Source:          domain.SourceKorea,
		SourceID:        n.SourceID(offer.InnerID),
		SourceURL:       source.OptionalString(offer.URL),
		Platform:        Platform,
		Make:            offer.Mark,
		Model:           offer.Model,
		Year:            offer.Year.Int(),
		Mileage:         offer.KmAge.PositiveIntPtr(),
		EngineCC:        offer.Displacement.PositiveIntPtr(),
		Transmission:    source.Translate(transmissions, offer.TransmissionType, "automatic"),
		FuelType:        source.Translate(fuelTypes, offer.EngineType, "petrol"),
		Color:           source.OptionalString(offer.Color),
		BodyType:        source.Translate(bodyTypes, offer.BodyType, "other"),
		Grade:           source.OptionalString(source.FirstNonEmpty(offer.Complectation, offer.Configuration)),
		StartPriceUSD:   price,
		CurrentPriceUSD: price,
		Images:          offer.Images,
		AuctionStatus:   domain.AuctionOngoing,
	}

	if err := n.validator.ValidateStruct(v); err != nil {
		return nil, fmt.Errorf("%w: encar offer %s: %v", domain.ErrInvalidRecord, offer.InnerID, err)
	}
	return v, nil
}

func (n *Normalizer) NormalizePriceChange(innerID string, payload json.RawMessage) (*domain.PriceUpdate, bool) {
	price, ok := source.DecodePriceChange(payload)
	if !ok {
		return nil, false
	}
	usd := source.USD(price, krwPerUnit*krwToUSD)
	if usd == nil {
		return nil, false
	}
	return &domain.PriceUpdate{
		Source:          domain.SourceKorea,
		SourceID:        n.SourceID(innerID),
		CurrentPriceUSD: *usd,
	}, true
}
