package dubicars

import (
	"encoding/json"
	"fmt"
	"math"

	"vehicle_sync/internal/domain"
	"vehicle_sync/internal/source"
	"vehicle_sync/internal/validator"
)

const (
	Platform = "dubicars"

	aedToUSD = 0.27

	// Displacements below this are litres, anything else is already cc.
	litreThreshold = 100
)

var transmissions = map[string]string{
	"Automatic": "automatic",
	"Manual":    "manual",
	"CVT":       "cvt",
}

var fuelTypes = map[string]string{
	"Petrol":         "petrol",
	"Diesel":         "diesel",
	"Electric":       "electric",
	"Hybrid":         "hybrid",
	"Plug-in Hybrid": "hybrid",
	"LPG":            "lpg",
	"CNG":            "lpg",
	"Other":          "petrol",
}

var bodyTypes = map[string]string{
	"SUV/Crossover": "suv",
	"SUV":           "suv",
	"Crossover":     "suv",
	"Sedan":         "sedan",
	"Hatchback":     "hatchback",
	"Coupe":         "coupe",
	"Convertible":   "convertible",
	"Wagon":         "wagon",
	"Van":           "van",
	"Minivan":       "van",
	"Pick Up Truck": "pickup",
	"Pickup":        "pickup",
	"Sports Car":    "coupe",
	"Luxury":        "sedan",
	"Other":         "other",
}

var driveTypes = map[string]string{
	"Front Wheel Drive": "fwd",
	"Rear Wheel Drive":  "rwd",
	"All Wheel Drive":   "awd",
	"4WD":               "4wd",
	"Four Wheel Drive":  "4wd",
	"AWD":               "awd",
	"FWD":               "fwd",
	"RWD":               "rwd",
}

type Normalizer struct {
	validator *validator.Validator
}

func NewNormalizer(v *validator.Validator) *Normalizer {
	return &Normalizer{validator: v}
}

func (n *Normalizer) SourceID(innerID string) string {
	return "dubicars_" + innerID
}

func (n *Normalizer) Normalize(innerID string, payload json.RawMessage) (*domain.Vehicle, error) {
	var offer Offer
	if err := json.Unmarshal(payload, &offer); err != nil {
		return nil, fmt.Errorf("%w: decode dubicars offer %s: %v", domain.ErrInvalidRecord, innerID, err)
	}
	if offer.InnerID == "" {
		offer.InnerID = innerID
	}

	price := source.USD(offer.Price, aedToUSD)

	v := &domain.Vehicle{
		Source:          domain.SourceDubai,
		SourceID:        n.SourceID(offer.InnerID),
		SourceURL:       source.OptionalString(offer.URL),
		Platform:        Platform,
		Make:            offer.Mark,
		Model:           offer.Model,
		Year:            offer.Year.Int(),
		Mileage:         offer.KmAge.PositiveIntPtr(),
		EngineCC:        displacementCC(offer.Displacement),
		Transmission:    source.Translate(transmissions, offer.TransmissionType, "automatic"),
		FuelType:        source.Translate(fuelTypes, offer.EngineType, "petrol"),
		Color:           source.OptionalString(offer.Color),
		BodyType:        source.Translate(bodyTypes, offer.BodyType, "other"),
		DriveType:       source.Translate(driveTypes, offer.DriveType, ""),
		Grade:           source.OptionalString(offer.Configuration),
		StartPriceUSD:   price,
		CurrentPriceUSD: price,
		Images:          offer.Images,
		AuctionStatus:   domain.AuctionOngoing,
	}

	if err := n.validator.ValidateStruct(v); err != nil {
		return nil, fmt.Errorf("%w: dubicars offer %s: %v", domain.ErrInvalidRecord, offer.InnerID, err)
	}
	return v, nil
}

func (n *Normalizer) NormalizePriceChange(innerID string, payload json.RawMessage) (*domain.PriceUpdate, bool) {
	price, ok := source.DecodePriceChange(payload)
	if !ok {
		return nil, false
	}
	usd := source.USD(price, aedToUSD)
	if usd == nil {
		return nil, false
	}
	return &domain.PriceUpdate{
		Source:          domain.SourceDubai,
		SourceID:        n.SourceID(innerID),
		CurrentPriceUSD: *usd,
	}, true
}

func displacementCC(d source.Number) *int {
	if !d.Valid || d.Value <= 0 {
		return nil
	}
	if d.Value < litreThreshold {
		cc := int(math.Round(d.Value * 1000))
		return &cc
	}
	cc := int(math.Round(d.Value))
	return &cc
}
