package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coronet_planner/internal/models"
)

func TestConditionalRule_Apply(t *testing.T) {
	called := false
	rule := ConditionalRule{
		Name: "never",
		When: func(r *models.MissionRecord) bool { return false },
		Check: func(v *Validator, r *models.MissionRecord) Errors {
			called = true
			return Errors{{Path: "x"}}
		},
	}

	assert.Nil(t, rule.Apply(New(nil, Options{}), validRecord()))
	assert.False(t, called)
}

func TestCOMSECKeyDate(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		required bool
		keyDate  string
		wantErr  bool
	}{
		{name: "off by default", opts: Options{}, required: true, keyDate: "", wantErr: false},
		{name: "required and blank", opts: Options{RequireCOMSECKeyDate: true}, required: true, keyDate: "", wantErr: true},
		{name: "required and set", opts: Options{RequireCOMSECKeyDate: true}, required: true, keyDate: "2024-03-01", wantErr: false},
		{name: "not carrying COMSEC", opts: Options{RequireCOMSECKeyDate: true}, required: false, keyDate: "", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			r.COMSECRequired = tt.required
			r.COMSECKeyDate = tt.keyDate

			_, errs := New(nil, tt.opts).Validate(r)

			if !tt.wantErr {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, Path("comsecKeyDate"), errs[0].Path)
			assert.Equal(t, KindMissing, errs[0].Kind)
		})
	}
}

func TestTotalAircraftMatchesRoster(t *testing.T) {
	tests := []struct {
		name     string
		total    models.Number
		aircraft int
		wantKind Kind // empty means no error at totalAircraft
	}{
		{name: "matches", total: "2", aircraft: 2},
		{name: "more than listed", total: "4", aircraft: 2, wantKind: KindRange},
		{name: "fewer than listed", total: "1", aircraft: 2, wantKind: KindRange},
		{name: "fractional", total: "1.5", aircraft: 1, wantKind: KindRange},
		{name: "below minimum reported once", total: "0", aircraft: 1, wantKind: KindRange},
		{name: "not a number reported once", total: "two", aircraft: 2, wantKind: KindType},
	}

	v := New(nil, Options{CheckTotalAircraft: true})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			for len(r.Aircraft) < tt.aircraft {
				a := r.Aircraft[0]
				a.CallSign = "VIPER 02"
				r.Aircraft = append(r.Aircraft, a)
			}
			r.TotalAircraft = tt.total

			_, errs := v.Validate(r)

			if tt.wantKind == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1, "errors: %v", errs)
			assert.Equal(t, Path("totalAircraft"), errs[0].Path)
			assert.Equal(t, tt.wantKind, errs[0].Kind)
		})
	}
}

func TestTotalAircraft_DecoupledByDefault(t *testing.T) {
	r := validRecord()
	r.TotalAircraft = "4"

	_, errs := New(nil, Options{}).Validate(r)

	assert.Empty(t, errs)
}
