package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"coronet_planner/internal/catalog"
	"coronet_planner/internal/models"
)

func TestValidator_Aircraft(t *testing.T) {
	v := New(nil, Options{})
	path := Root.Index("aircraft", 3)

	tests := []struct {
		name      string
		aircraft  models.Aircraft
		wantPaths []Path
	}{
		{
			name: "complete",
			aircraft: models.Aircraft{
				TailNumber: "AF 90-0001", AircraftType: "F-16C", CallSign: "VIPER 01",
				PilotName: "Capt Smith", Configuration: "CAP", FuelLoad: "7000",
			},
		},
		{
			name:     "blank entry",
			aircraft: models.Aircraft{FuelLoad: "0"},
			wantPaths: []Path{
				"aircraft[3].tailNumber",
				"aircraft[3].aircraftType",
				"aircraft[3].callSign",
				"aircraft[3].pilotName",
				"aircraft[3].configuration",
			},
		},
		{
			name: "bad fuel and configuration",
			aircraft: models.Aircraft{
				TailNumber: "AF 90-0001", AircraftType: "F-16C", CallSign: "VIPER 01",
				PilotName: "Capt Smith", Configuration: "FERRY", FuelLoad: "full",
			},
			wantPaths: []Path{"aircraft[3].configuration", "aircraft[3].fuelLoad"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Aircraft(tt.aircraft, path)

			got := make([]Path, len(errs))
			for i, e := range errs {
				got[i] = e.Path
			}
			assert.ElementsMatch(t, tt.wantPaths, got)
		})
	}
}

func TestValidator_Tanker(t *testing.T) {
	v := New(nil, Options{})

	errs := v.Tanker(models.Tanker{
		CallSign: "SHELL 01", AircraftType: "KC-135R", OffloadCapacity: "-5",
		ARTrack: "AR-201", OnStationTime: "0830", OffStationTime: "1030",
	}, Root.Index("tankers", 0))

	assert.Len(t, errs, 1)
	assert.True(t, errs.Has("tankers[0].offloadCapacity"))

	errs = v.Tanker(models.Tanker{
		CallSign: "SHELL 01", AircraftType: "F-15C", OffloadCapacity: "0",
		ARTrack: "AR-201", OnStationTime: "0830", OffStationTime: "1030",
	}, Root.Index("tankers", 0))

	assert.Equal(t, Errors{{Path: "tankers[0].aircraftType", Kind: KindEnum, Message: "Unknown tanker type"}}, errs)
}

func TestValidator_Waypoint(t *testing.T) {
	v := New(nil, Options{})

	errs := v.Waypoint(models.Waypoint{Name: "ALPHA", Coordinates: "N36 W120", Altitude: "0", Type: "departure"}, Root.Index("waypoints", 0))
	assert.Empty(t, errs)

	errs = v.Waypoint(models.Waypoint{Altitude: "-100", Type: ""}, Root.Index("waypoints", 1))
	assert.True(t, errs.Has("waypoints[1].name"))
	assert.True(t, errs.Has("waypoints[1].coordinates"))
	assert.True(t, errs.Has("waypoints[1].altitude"))
	assert.True(t, errs.Has("waypoints[1].type"))
}

func TestValidator_CustomCatalog(t *testing.T) {
	opts := append(catalog.DefaultOptions(), models.CatalogOption{
		Kind: string(catalog.AircraftType), Value: "F-15EX", Label: "F-15EX Eagle II", Position: 9,
	})
	cat, err := catalog.New(opts)
	assert.NoError(t, err)

	a := models.Aircraft{
		TailNumber: "AF 20-0001", AircraftType: "F-15EX", CallSign: "RAZOR 01",
		PilotName: "Maj Lee", Configuration: "STRIKE", FuelLoad: "13000",
	}

	assert.Empty(t, New(cat, Options{}).Aircraft(a, Root.Index("aircraft", 0)))
	assert.True(t, New(nil, Options{}).Aircraft(a, Root.Index("aircraft", 0)).Has("aircraft[0].aircraftType"))
}
