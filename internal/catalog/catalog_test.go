package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coronet_planner/internal/models"
)

func TestDefault(t *testing.T) {
	c := Default()

	for _, k := range Kinds {
		assert.NotEmpty(t, c.Options(k), "kind %s", k)
	}

	tests := []struct {
		kind  Kind
		value string
		want  bool
	}{
		{AircraftType, "F-15C", true},
		{AircraftType, "A-10C", true},
		{AircraftType, "KC-135R", false},
		{TankerType, "KC-46A", true},
		{Configuration, "SEAD", true},
		{Rank, "LTCOL", true},
		{Rank, "GEN", false},
		{Classification, "TOP SECRET", true},
		{Classification, "unclassified", false},
		{WaypointType, "refuel", true},
		{TimeReference, "JST", true},
		{RefuelingType, "BOTH", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Set(tt.kind).Contains(tt.value))
		})
	}
}

func TestDefault_DisplayOrder(t *testing.T) {
	opts := Default().Options(Priority)

	values := make([]string, len(opts))
	for i, o := range opts {
		values[i] = o.Value
	}
	assert.Equal(t, []string{"ROUTINE", "PRIORITY", "IMMEDIATE", "FLASH"}, values)
}

func TestAll(t *testing.T) {
	all := Default().All()

	assert.Len(t, all, len(DefaultOptions()))
	assert.Equal(t, string(Kinds[0]), all[0].Kind)
	assert.Equal(t, string(Kinds[len(Kinds)-1]), all[len(all)-1].Kind)
}

func TestOptions_ReturnsCopy(t *testing.T) {
	c := Default()

	opts := c.Options(Rank)
	opts[0].Value = "changed"

	assert.Equal(t, "2LT", c.Options(Rank)[0].Value)
}

func TestNew(t *testing.T) {
	withExtra := func(extra ...models.CatalogOption) []models.CatalogOption {
		return append(DefaultOptions(), extra...)
	}

	tests := []struct {
		name    string
		options []models.CatalogOption
		wantErr bool
	}{
		{
			name:    "defaults",
			options: DefaultOptions(),
		},
		{
			name:    "extra aircraft type",
			options: withExtra(models.CatalogOption{Kind: "aircraft_type", Value: "F-15EX", Label: "F-15EX Eagle II", Position: 9}),
		},
		{
			name:    "unknown kind",
			options: withExtra(models.CatalogOption{Kind: "sensor", Value: "AESA"}),
			wantErr: true,
		},
		{
			name:    "blank value",
			options: withExtra(models.CatalogOption{Kind: "rank", Value: " "}),
			wantErr: true,
		},
		{
			name:    "duplicate value",
			options: withExtra(models.CatalogOption{Kind: "rank", Value: "MAJ", Label: "Major"}),
			wantErr: true,
		},
		{
			name:    "missing kind",
			options: []models.CatalogOption{{Kind: "rank", Value: "MAJ", Label: "Major"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.options)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformed)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}

func TestNew_OrdersByPosition(t *testing.T) {
	opts := DefaultOptions()
	opts = append(opts, models.CatalogOption{Kind: "formation_type", Value: "PAIR", Label: "Pair", Position: -1})

	c, err := New(opts)
	require.NoError(t, err)

	assert.Equal(t, "PAIR", c.Options(FormationType)[0].Value)
	assert.True(t, c.Set(FormationType).Contains("PAIR"))
}

func TestIsKind(t *testing.T) {
	assert.True(t, IsKind("aircraft_type"))
	assert.True(t, IsKind("waypoint_type"))
	assert.False(t, IsKind("AIRCRAFT_TYPE"))
	assert.False(t, IsKind(""))
}
