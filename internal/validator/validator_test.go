package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vehicle_sync/internal/domain"
)

func TestValidateStruct(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		vehicle domain.Vehicle
		wantErr bool
	}{
		{
			name:    "complete record",
			vehicle: domain.Vehicle{Source: domain.SourceKorea, SourceID: "encar_1", Make: "Kia", Model: "K5", Year: 2020},
		},
		{
			name:    "missing make",
			vehicle: domain.Vehicle{Source: domain.SourceKorea, SourceID: "encar_1", Model: "K5", Year: 2020},
			wantErr: true,
		},
		{
			name:    "zero year",
			vehicle: domain.Vehicle{Source: domain.SourceKorea, SourceID: "encar_1", Make: "Kia", Model: "K5"},
			wantErr: true,
		},
		{
			name:    "missing source id",
			vehicle: domain.Vehicle{Source: domain.SourceKorea, Make: "Kia", Model: "K5", Year: 2020},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.vehicle)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
