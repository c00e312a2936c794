package validate

import (
	"fmt"

	"coronet_planner/internal/models"
)

// ConditionalRule is a check that only applies to some records. Conditional
// rules run after the base schema so each one can be exercised on its own.
type ConditionalRule struct {
	Name  string
	When  func(r *models.MissionRecord) bool
	Check func(v *Validator, r *models.MissionRecord) Errors
}

// Apply runs the rule against r, or returns nil when r does not qualify
func (cr ConditionalRule) Apply(v *Validator, r *models.MissionRecord) Errors {
	if !cr.When(r) {
		return nil
	}
	return cr.Check(v, r)
}

// TankerSupport validates every tanker entry, but only for missions that
// request tanker support. Entries left on a mission without tanker support
// are never inspected.
var TankerSupport = ConditionalRule{
	Name: "tanker-support",
	When: func(r *models.MissionRecord) bool { return r.TankerRequired },
	Check: func(v *Validator, r *models.MissionRecord) Errors {
		var errs Errors
		for i, t := range r.Tankers {
			errs = append(errs, v.Tanker(t, Root.Index("tankers", i))...)
		}
		return errs
	},
}

// COMSECKeyDate requires a key date on missions that carry COMSEC material.
// It is opt-in: the planning form itself accepts a blank key date.
var COMSECKeyDate = ConditionalRule{
	Name: "comsec-key-date",
	When: func(r *models.MissionRecord) bool { return r.COMSECRequired },
	Check: func(v *Validator, r *models.MissionRecord) Errors {
		c := &collector{}
		c.check(Root.Field("comsecKeyDate"), r.COMSECKeyDate, Required("COMSEC key date required"))
		return c.errs
	},
}

// TotalAircraftMatchesRoster requires totalAircraft to equal the roster
// size. It is opt-in and skipped whenever the base schema already rejects
// totalAircraft.
var TotalAircraftMatchesRoster = ConditionalRule{
	Name: "total-aircraft",
	When: func(r *models.MissionRecord) bool {
		total, err := r.TotalAircraft.Float()
		return err == nil && total >= 1
	},
	Check: func(v *Validator, r *models.MissionRecord) Errors {
		total, _ := r.TotalAircraft.Float()
		if int(total) == len(r.Aircraft) && float64(int(total)) == total {
			return nil
		}
		return Errors{{
			Path:    Root.Field("totalAircraft"),
			Kind:    KindRange,
			Message: fmt.Sprintf("Total aircraft %s does not match the %d aircraft listed", r.TotalAircraft, len(r.Aircraft)),
		}}
	},
}
