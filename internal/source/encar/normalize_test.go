package encar

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle_sync/internal/domain"
	"vehicle_sync/internal/validator"
)

const sampleOffer = `{
	"id": 1,
	"inner_id": "38123456",
	"url": "https://fem.encar.com/cars/detail/38123456",
	"mark": "Hyundai",
	"model": "Grandeur",
	"configuration": "IG",
	"complectation": "3.0 Exclusive",
	"year": 2019,
	"color": "White",
	"price": 2350,
	"km_age": 45000,
	"engine_type": "Hybrid (Gasoline)",
	"transmission_type": "Semi-Automatic",
	"body_type": "Sedan",
	"displacement": "2999",
	"images": ["https://ci.encar.com/1.jpg", "https://ci.encar.com/2.jpg"]
}`

func TestNormalize_FullOffer(t *testing.T) {
	n := NewNormalizer(validator.New())

	v, err := n.Normalize("38123456", json.RawMessage(sampleOffer))
	require.NoError(t, err)

	assert.Equal(t, domain.SourceKorea, v.Source)
	assert.Equal(t, "encar_38123456", v.SourceID)
	assert.Equal(t, "encar", v.Platform)
	assert.Equal(t, "Hyundai", v.Make)
	assert.Equal(t, 2019, v.Year)
	assert.Equal(t, 45000, *v.Mileage)
	assert.Equal(t, 2999, *v.EngineCC)
	assert.Equal(t, "automatic", *v.Transmission)
	assert.Equal(t, "hybrid", *v.FuelType)
	assert.Equal(t, "sedan", *v.BodyType)
	assert.Equal(t, "3.0 Exclusive", *v.Grade)
	// 2350 * 10000 KRW * 0.00075
	assert.Equal(t, int64(17625), *v.CurrentPriceUSD)
	assert.Equal(t, *v.CurrentPriceUSD, *v.StartPriceUSD)
	assert.Equal(t, domain.ImageList{"https://ci.encar.com/1.jpg", "https://ci.encar.com/2.jpg"}, v.Images)
	assert.Equal(t, domain.AuctionOngoing, v.AuctionStatus)
}

func TestNormalize_UnknownVocabularyFallsBack(t *testing.T) {
	n := NewNormalizer(validator.New())

	v, err := n.Normalize("1", json.RawMessage(`{
		"mark": "Kia", "model": "Ray", "year": 2021,
		"engine_type": "Steam", "transmission_type": "Lever", "body_type": "Spaceship",
		"configuration": "Base", "images": "not json"
	}`))
	require.NoError(t, err)

	assert.Equal(t, "encar_1", v.SourceID)
	assert.Equal(t, "petrol", *v.FuelType)
	assert.Equal(t, "automatic", *v.Transmission)
	assert.Equal(t, "other", *v.BodyType)
	assert.Equal(t, "Base", *v.Grade)
	assert.Empty(t, v.Images)
	assert.Nil(t, v.CurrentPriceUSD)
	assert.Nil(t, v.EngineCC)
}

func TestNormalize_RejectsMissingMandatoryFields(t *testing.T) {
	n := NewNormalizer(validator.New())

	for name, payload := range map[string]string{
		"no make":  `{"model": "K5", "year": 2020}`,
		"no model": `{"mark": "Kia", "year": 2020}`,
		"no year":  `{"mark": "Kia", "model": "K5"}`,
		"not json": `[1, 2`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := n.Normalize("9", json.RawMessage(payload))
			assert.ErrorIs(t, err, domain.ErrInvalidRecord)
		})
	}
}

func TestNormalizePriceChange(t *testing.T) {
	n := NewNormalizer(validator.New())

	update, ok := n.NormalizePriceChange("55", json.RawMessage(`{"new_price": 1000, "new_price_won": 10000000}`))
	require.True(t, ok)
	assert.Equal(t, "encar_55", update.SourceID)
	assert.Equal(t, int64(7500), update.CurrentPriceUSD)

	_, ok = n.NormalizePriceChange("55", json.RawMessage(sampleOffer))
	assert.False(t, ok)
}
