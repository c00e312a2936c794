// Package validate checks Coronet mission records against the planning
// schema and turns valid records into normalized mission plans.
package validate

import (
	"log/slog"
	"time"

	"coronet_planner/internal/catalog"
	"coronet_planner/internal/models"
)

// Options switches on checks the planning form itself does not enforce
type Options struct {
	RequireCOMSECKeyDate bool // comsecKeyDate required when comsecRequired
	CheckTotalAircraft   bool // totalAircraft must match the roster size
}

// Validator checks mission records. It holds no per-call state and may be
// shared.
type Validator struct {
	catalog      *catalog.Catalog
	conditionals []ConditionalRule
}

// New creates a validator over cat. A nil cat selects the built-in catalogs.
func New(cat *catalog.Catalog, opts Options) *Validator {
	if cat == nil {
		cat = catalog.Default()
	}

	conditionals := []ConditionalRule{TankerSupport}
	if opts.RequireCOMSECKeyDate {
		conditionals = append(conditionals, COMSECKeyDate)
	}
	if opts.CheckTotalAircraft {
		conditionals = append(conditionals, TotalAircraftMatchesRoster)
	}

	return &Validator{
		catalog:      cat,
		conditionals: conditionals,
	}
}

// Rules returns the names of the conditional rules in evaluation order
func (v *Validator) Rules() []string {
	names := make([]string, len(v.conditionals))
	for i, cr := range v.conditionals {
		names[i] = cr.Name
	}
	return names
}

// Validate checks the whole record. It returns the normalized plan and nil,
// or a nil plan and every failure found.
func (v *Validator) Validate(r *models.MissionRecord) (*models.MissionPlan, Errors) {
	c := &collector{}

	v.checkIdentification(c, r)
	v.checkTiming(c, r)
	v.checkRoute(c, r)
	v.checkAircraft(c, r)
	v.checkTankerSupport(c, r)
	v.checkPersonnel(c, r)
	v.checkCommunications(c, r)
	v.checkContingency(c, r)

	for _, cr := range v.conditionals {
		c.merge(cr.Apply(v, r))
	}

	if len(c.errs) > 0 {
		errs := c.errs.sorted()
		slog.Debug("Mission record rejected",
			"mission_number", r.MissionNumber,
			"error_count", len(errs),
		)
		return nil, errs
	}

	slog.Debug("Mission record validated", "mission_number", r.MissionNumber)
	return normalize(r), nil
}

func (v *Validator) oneOf(kind catalog.Kind, msg string) Rule {
	return OneOf(v.catalog.Set(kind), msg)
}

func (v *Validator) checkIdentification(c *collector, r *models.MissionRecord) {
	c.check(Root.Field("missionNumber"), r.MissionNumber, Required("Mission number required"))
	c.check(Root.Field("missionName"), r.MissionName, Required("Mission name required"))
	c.check(Root.Field("classification"), r.Classification, v.oneOf(catalog.Classification, "Invalid classification"))
	c.check(Root.Field("priority"), r.Priority, v.oneOf(catalog.Priority, "Invalid priority"))
	c.check(Root.Field("missionType"), r.MissionType, v.oneOf(catalog.MissionType, "Invalid mission type"))
	c.check(Root.Field("commandingUnit"), r.CommandingUnit, Required("Commanding unit required"))
}

func (v *Validator) checkTiming(c *collector, r *models.MissionRecord) {
	c.check(Root.Field("departureDate"), r.DepartureDate, Date("Departure date required"))
	c.check(Root.Field("departureTime"), r.DepartureTime, Required("Departure time required"))
	c.check(Root.Field("estimatedArrivalDate"), r.EstimatedArrivalDate, Date("Arrival date required"))
	c.check(Root.Field("estimatedArrivalTime"), r.EstimatedArrivalTime, Required("Arrival time required"))
	c.check(Root.Field("timeZone"), r.TimeZone,
		Required("Time zone required"),
		v.oneOf(catalog.TimeReference, "Invalid time zone"))
}

func (v *Validator) checkRoute(c *collector, r *models.MissionRecord) {
	c.check(Root.Field("departureBase"), r.DepartureBase, Required("Departure base required"))
	c.check(Root.Field("departureICAO"), r.DepartureICAO, Length(4, "ICAO must be 4 characters"))
	c.check(Root.Field("destinationBase"), r.DestinationBase, Required("Destination base required"))
	c.check(Root.Field("destinationICAO"), r.DestinationICAO, Length(4, "ICAO must be 4 characters"))

	for i, w := range r.Waypoints {
		c.merge(v.Waypoint(w, Root.Index("waypoints", i)))
	}
}

func (v *Validator) checkAircraft(c *collector, r *models.MissionRecord) {
	if len(r.Aircraft) == 0 {
		c.fail(Root.Field("aircraft"), KindMissing, "At least one aircraft required")
	}
	for i, a := range r.Aircraft {
		c.merge(v.Aircraft(a, Root.Index("aircraft", i)))
	}
	c.check(Root.Field("formationType"), r.FormationType, v.oneOf(catalog.FormationType, "Invalid formation type"))
	c.check(Root.Field("totalAircraft"), string(r.TotalAircraft), AtLeast(1, "At least 1 aircraft required"))
}

// checkTankerSupport covers the tanker fields that apply whether or not
// tankers are required. The roster itself is the TankerSupport rule's job.
func (v *Validator) checkTankerSupport(c *collector, r *models.MissionRecord) {
	c.check(Root.Field("totalOffloadRequired"), string(r.TotalOffloadRequired), Optional(Numeric("Invalid offload")))
	c.check(Root.Field("refuelingType"), r.RefuelingType, Optional(v.oneOf(catalog.RefuelingType, "Invalid refueling type")))
}

func (v *Validator) checkPersonnel(c *collector, r *models.MissionRecord) {
	c.check(Root.Field("missionCommander"), r.MissionCommander, Required("Mission commander required"))
	c.check(Root.Field("missionCommanderRank"), r.MissionCommanderRank,
		Required("Rank required"),
		v.oneOf(catalog.Rank, "Invalid rank"))
	c.check(Root.Field("flightLead"), r.FlightLead, Required("Flight lead required"))
}

func (v *Validator) checkCommunications(c *collector, r *models.MissionRecord) {
	c.check(Root.Field("primaryFrequency"), r.PrimaryFrequency, Required("Primary frequency required"))
}

func (v *Validator) checkContingency(c *collector, r *models.MissionRecord) {
	c.check(Root.Field("fuelMinimums"), string(r.FuelMinimums), Optional(Numeric("Invalid fuel minimums")))
	c.check(Root.Field("bingoFuel"), string(r.BingoFuel), Optional(Numeric("Invalid bingo fuel")))
	c.check(Root.Field("jokerFuel"), string(r.JokerFuel), Optional(Numeric("Invalid joker fuel")))
}

// normalize converts a record that passed validation into a plan
func normalize(r *models.MissionRecord) *models.MissionPlan {
	p := &models.MissionPlan{
		MissionNumber:   r.MissionNumber,
		MissionName:     r.MissionName,
		Classification:  r.Classification,
		Priority:        r.Priority,
		MissionType:     r.MissionType,
		CommandingUnit:  r.CommandingUnit,
		SupportingUnits: r.SupportingUnits,

		DepartureDate:        date(r.DepartureDate),
		DepartureTime:        r.DepartureTime,
		EstimatedArrivalDate: date(r.EstimatedArrivalDate),
		EstimatedArrivalTime: r.EstimatedArrivalTime,
		TimeZone:             r.TimeZone,

		DepartureBase:      r.DepartureBase,
		DepartureICAO:      r.DepartureICAO,
		DestinationBase:    r.DestinationBase,
		DestinationICAO:    r.DestinationICAO,
		PrimaryAlternate:   r.PrimaryAlternate,
		SecondaryAlternate: r.SecondaryAlternate,
		RouteDescription:   r.RouteDescription,
		Waypoints:          make([]models.PlannedWaypoint, 0, len(r.Waypoints)),

		Aircraft:      make([]models.PlannedAircraft, 0, len(r.Aircraft)),
		FormationType: r.FormationType,
		TotalAircraft: coerce(r.TotalAircraft),

		TankerRequired:       r.TankerRequired,
		Tankers:              []models.PlannedTanker{},
		TotalOffloadRequired: optional(r.TotalOffloadRequired),
		RefuelingType:        r.RefuelingType,

		MissionCommander:     r.MissionCommander,
		MissionCommanderRank: r.MissionCommanderRank,
		FlightLead:           r.FlightLead,
		DeputyFlightLead:     r.DeputyFlightLead,
		IntelOfficer:         r.IntelOfficer,
		WeatherOfficer:       r.WeatherOfficer,

		PrimaryFrequency:   r.PrimaryFrequency,
		SecondaryFrequency: r.SecondaryFrequency,
		GuardFrequency:     r.GuardFrequency,
		SATCOMChannel:      r.SATCOMChannel,
		COMSECRequired:     r.COMSECRequired,
		COMSECKeyDate:      r.COMSECKeyDate,

		DivertBases:         r.DivertBases,
		EmergencyProcedures: r.EmergencyProcedures,
		WeatherMinimums:     r.WeatherMinimums,
		FuelMinimums:        optional(r.FuelMinimums),
		BingoFuel:           optional(r.BingoFuel),
		JokerFuel:           optional(r.JokerFuel),
		NOTAMs:              r.NOTAMs,
		SpecialInstructions: r.SpecialInstructions,
	}

	if p.GuardFrequency == "" {
		p.GuardFrequency = models.DefaultGuardFrequency
	}
	for _, w := range r.Waypoints {
		p.Waypoints = append(p.Waypoints, planWaypoint(w))
	}
	for _, a := range r.Aircraft {
		p.Aircraft = append(p.Aircraft, planAircraft(a))
	}
	// Tanker entries are only checked when support is requested, so only
	// then are they carried into the plan.
	if r.TankerRequired {
		for _, t := range r.Tankers {
			p.Tankers = append(p.Tankers, planTanker(t))
		}
	}

	return p
}

// coerce returns the value of a number that already passed validation
func coerce(n models.Number) float64 {
	f, err := n.Float()
	if err != nil {
		return 0
	}
	return f
}

func optional(n models.Number) *float64 {
	if n.IsBlank() {
		return nil
	}
	f := coerce(n)
	return &f
}

func date(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
