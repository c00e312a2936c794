package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeYAML(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		check   func(t *testing.T, r *MissionRecord)
		wantErr bool
	}{
		{
			name:  "empty input keeps defaults",
			input: "",
			check: func(t *testing.T, r *MissionRecord) {
				assert.Equal(t, Number("4"), r.TotalAircraft)
				assert.Len(t, r.Aircraft, 1)
			},
		},
		{
			name:  "null number clears default",
			input: "totalAircraft: ~\n",
			check: func(t *testing.T, r *MissionRecord) {
				assert.True(t, r.TotalAircraft.IsBlank())
			},
		},
		{
			name:  "null keyword clears default",
			input: "totalAircraft: null\nmissionNumber: CN-1\n",
			check: func(t *testing.T, r *MissionRecord) {
				assert.True(t, r.TotalAircraft.IsBlank())
				assert.Equal(t, "CN-1", r.MissionNumber)
			},
		},
		{
			name:  "null number inside a roster entry",
			input: "aircraft:\n  - callSign: VIPER 01\n    fuelLoad:\n",
			check: func(t *testing.T, r *MissionRecord) {
				require.Len(t, r.Aircraft, 1)
				assert.Equal(t, "VIPER 01", r.Aircraft[0].CallSign)
				assert.True(t, r.Aircraft[0].FuelLoad.IsBlank())
			},
		},
		{
			name:  "null list clears roster",
			input: "tankers: ~\n",
			check: func(t *testing.T, r *MissionRecord) {
				assert.Empty(t, r.Tankers)
			},
		},
		{
			name:  "quoted numbers stay text",
			input: "totalAircraft: \"2\"\nbingoFuel: low\n",
			check: func(t *testing.T, r *MissionRecord) {
				assert.Equal(t, Number("2"), r.TotalAircraft)
				assert.Equal(t, Number("low"), r.BingoFuel)
			},
		},
		{
			name:    "unknown key",
			input:   "missionNumbr: CN-1\n",
			wantErr: true,
		},
		{
			name:    "unknown key in roster entry",
			input:   "aircraft:\n  - tailNo: AF 90-0001\n",
			wantErr: true,
		},
		{
			name:    "malformed",
			input:   "aircraft: [\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewMissionRecord()

			err := DecodeYAML(strings.NewReader(tt.input), r)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, r)
		})
	}
}

func TestDecodeYAML_MatchesJSONNull(t *testing.T) {
	fromYAML := NewMissionRecord()
	require.NoError(t, DecodeYAML(strings.NewReader("totalAircraft: ~\n"), fromYAML))

	fromJSON := NewMissionRecord()
	require.NoError(t, json.Unmarshal([]byte(`{"totalAircraft": null}`), fromJSON))

	assert.Equal(t, fromJSON.TotalAircraft, fromYAML.TotalAircraft)
}
