package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coronet_planner/internal/catalog"
)

func TestRules(t *testing.T) {
	ranks := catalog.Default().Set(catalog.Rank)

	tests := []struct {
		name     string
		rule     Rule
		value    string
		wantKind Kind // empty means the value passes
	}{
		{name: "required with value", rule: Required("x"), value: "VIPER 01"},
		{name: "required blank", rule: Required("x"), value: "", wantKind: KindMissing},
		{name: "required whitespace counts", rule: Required("x"), value: " "},

		{name: "length exact", rule: Length(4, "x"), value: "KLSV"},
		{name: "length short", rule: Length(4, "x"), value: "LSV", wantKind: KindLength},
		{name: "length long", rule: Length(4, "x"), value: "KLSVX", wantKind: KindLength},
		{name: "length blank", rule: Length(4, "x"), value: "", wantKind: KindLength},
		{name: "length counts runes", rule: Length(4, "x"), value: "ÅÄÖÜ"},

		{name: "one of member", rule: OneOf(ranks, "x"), value: "MAJ"},
		{name: "one of non member", rule: OneOf(ranks, "x"), value: "GEN", wantKind: KindEnum},
		{name: "one of nil set", rule: OneOf(nil, "x"), value: "MAJ", wantKind: KindEnum},

		{name: "numeric", rule: Numeric("x"), value: "1.5"},
		{name: "numeric text", rule: Numeric("x"), value: "one", wantKind: KindType},

		{name: "at least equal", rule: AtLeast(1, "x"), value: "1"},
		{name: "at least below", rule: AtLeast(1, "x"), value: "0", wantKind: KindRange},
		{name: "at least blank is zero", rule: AtLeast(1, "x"), value: "", wantKind: KindRange},
		{name: "at least text", rule: AtLeast(1, "x"), value: "four", wantKind: KindType},

		{name: "non negative zero", rule: NonNegative("x"), value: "0"},
		{name: "non negative blank", rule: NonNegative("x"), value: ""},
		{name: "non negative below", rule: NonNegative("x"), value: "-0.5", wantKind: KindRange},

		{name: "date", rule: Date("x"), value: "2024-03-15"},
		{name: "date blank", rule: Date("x"), value: "", wantKind: KindMissing},
		{name: "date wrong layout", rule: Date("x"), value: "15/03/2024", wantKind: KindType},
		{name: "date out of calendar", rule: Date("x"), value: "2024-02-30", wantKind: KindType},

		{name: "optional blank", rule: Optional(Numeric("x")), value: ""},
		{name: "optional whitespace", rule: Optional(Numeric("x")), value: "  "},
		{name: "optional bad", rule: Optional(Numeric("x")), value: "n/a", wantKind: KindType},
		{name: "optional enum empty", rule: Optional(OneOf(ranks, "x")), value: ""},
		{name: "optional enum whitespace", rule: Optional(OneOf(ranks, "x")), value: "   ", wantKind: KindEnum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.rule(tt.value)
			if tt.wantKind == "" {
				assert.Nil(t, v)
				return
			}
			require.NotNil(t, v)
			assert.Equal(t, tt.wantKind, v.Kind)
		})
	}
}

func TestAtLeast_TypeMessage(t *testing.T) {
	v := AtLeast(1, "At least 1 aircraft required")("four")
	require.NotNil(t, v)
	assert.Equal(t, `Expected a number, got "four"`, v.Message)
}

func TestChain_FirstFailureWins(t *testing.T) {
	ranks := catalog.Default().Set(catalog.Rank)
	rule := Chain(Required("Rank required"), OneOf(ranks, "Invalid rank"))

	v := rule("")
	require.NotNil(t, v)
	assert.Equal(t, "Rank required", v.Message)

	v = rule("GEN")
	require.NotNil(t, v)
	assert.Equal(t, "Invalid rank", v.Message)

	assert.Nil(t, rule("COL"))
	assert.Nil(t, Chain()("anything"))
}

func TestPath(t *testing.T) {
	assert.Equal(t, "missionNumber", Root.Field("missionNumber").String())
	assert.Equal(t, "aircraft[2]", Root.Index("aircraft", 2).String())
	assert.Equal(t, "aircraft[2].tailNumber", Root.Index("aircraft", 2).Field("tailNumber").String())
	assert.Equal(t, "tankers[0].arTrack", Root.Index("tankers", 0).Field("arTrack").String())
}

func TestErrors(t *testing.T) {
	errs := Errors{
		{Path: "waypoints[0].name", Kind: KindMissing, Message: "Waypoint name required"},
		{Path: "aircraft[1].fuelLoad", Kind: KindRange, Message: "Invalid fuel load"},
		{Path: "aircraft[0].callSign", Kind: KindMissing, Message: "Call sign required"},
	}

	assert.True(t, errs.Has("aircraft[1].fuelLoad"))
	assert.False(t, errs.Has("aircraft[1]"))
	assert.Len(t, errs.ForPath("waypoints[0].name"), 1)
	assert.Contains(t, errs.Error(), "aircraft[0].callSign: Call sign required")

	sorted := errs.sorted()
	assert.Equal(t, Path("aircraft[0].callSign"), sorted[0].Path)
	assert.Equal(t, Path("aircraft[1].fuelLoad"), sorted[1].Path)
	assert.Equal(t, Path("waypoints[0].name"), sorted[2].Path)
}
