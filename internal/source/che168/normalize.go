package che168

import (
	"encoding/json"
	"fmt"
	"math"

	"vehicle_sync/internal/domain"
	"vehicle_sync/internal/source"
	"vehicle_sync/internal/validator"
)

const (
	Platform = "che168"

	cnyToUSD = 0.138
)

var transmissions = map[string]string{
	"Automatic": "automatic",
	"Manual":    "manual",
}

var fuelTypes = map[string]string{
	"Gasoline":                   "petrol",
	"Diesel":                     "diesel",
	"Electric":                   "electric",
	"Hybrid":                     "hybrid",
	"Plug-in Hybrid":             "hybrid",
	"Range Extender":             "electric",
	"Hydrogen Fuel Cell":         "electric",
	"Gasoline + 48V Mild Hybrid": "hybrid",
	"Gasoline + 24V Mild Hybrid": "hybrid",
	"Gasoline + CNG":             "lpg",
	"CNG":                        "lpg",
	"Other":                      "petrol",
}

var bodyTypes = map[string]string{
	"Crossover/SUV":  "suv",
	"SUV":            "suv",
	"Sedan":          "sedan",
	"Hatchback":      "hatchback",
	"Minivan":        "minivan",
	"Pickup":         "pickup",
	"Coupe/Roadster": "coupe",
	"Sports Car":     "coupe",
	"Microvan":       "van",
	"Van":            "van",
	"Light Truck":    "pickup",
	"Mini":           "hatchback",
	"Other":          "other",
}

var driveTypes = map[string]string{
	"FWD":              "fwd",
	"RWD":              "rwd",
	"AWD":              "awd",
	"RWD (dual-motor)": "rwd",
	"AWD (dual-motor)": "awd",
	"AWD (tri-motor)":  "awd",
	"AWD (quad-motor)": "awd",
	"RWD (mid-engine)": "rwd",
	"Other":            "fwd",
}

type Normalizer struct {
	validator *validator.Validator
}

func NewNormalizer(v *validator.Validator) *Normalizer {
	return &Normalizer{validator: v}
}

func (n *Normalizer) SourceID(innerID string) string {
	return "che168_" + innerID
}

func (n *Normalizer) Normalize(innerID string, payload json.RawMessage) (*domain.Vehicle, error) {
	var offer Offer
	if err := json.Unmarshal(payload, &offer); err != nil {
		return nil, fmt.Errorf("%w: decode che168 offer %s: %v", domain.ErrInvalidRecord, innerID, err)
	}
	if offer.InnerID == "" {
		offer.InnerID = innerID
	}

	price := source.USD(offer.Price, cnyToUSD)

	v := &domain.Vehicle{
		Source:          domain.SourceChina,
		SourceID:        n.SourceID(offer.InnerID),
		SourceURL:       source.OptionalString(offer.URL),
		Platform:        Platform,
		Make:            offer.Mark,
		Model:           offer.Model,
		Year:            offer.Year.Int(),
		Mileage:         offer.KmAge.PositiveIntPtr(),
		EngineCC:        litresToCC(offer.Displacement),
		Transmission:    source.Translate(transmissions, offer.TransmissionType, "automatic"),
		FuelType:        source.Translate(fuelTypes, offer.EngineType, "petrol"),
		Color:           source.OptionalString(offer.Color),
		BodyType:        source.Translate(bodyTypes, offer.BodyType, "other"),
		DriveType:       source.Translate(driveTypes, offer.DriveType, ""),
		Grade:           source.OptionalString(offer.Title),
		StartPriceUSD:   price,
		CurrentPriceUSD: price,
		Images:          offer.Images,
		AuctionStatus:   domain.AuctionOngoing,
	}

	if err := n.validator.ValidateStruct(v); err != nil {
		return nil, fmt.Errorf("%w: che168 offer %s: %v", domain.ErrInvalidRecord, offer.InnerID, err)
	}
	return v, nil
}

func (n *Normalizer) NormalizePriceChange(innerID string, payload json.RawMessage) (*domain.PriceUpdate, bool) {
	price, ok := source.DecodePriceChange(payload)
	if !ok {
		return nil, false
	}
	usd := source.USD(price, cnyToUSD)
	if usd == nil {
		return nil, false
	}
	return &domain.PriceUpdate{
		Source:          domain.SourceChina,
		SourceID:        n.SourceID(innerID),
		CurrentPriceUSD: *usd,
	}, true
}

func litresToCC(litres source.Number) *int {
	if !litres.Valid || litres.Value <= 0 {
		return nil
	}
	cc := int(math.Round(litres.Value * 1000))
	return &cc
}
