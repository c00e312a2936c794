package validate

import (
	"coronet_planner/internal/catalog"
	"coronet_planner/internal/models"
)

// Aircraft validates one roster entry, reporting every failed field under path
func (v *Validator) Aircraft(a models.Aircraft, path Path) Errors {
	c := &collector{}
	c.check(path.Field("tailNumber"), a.TailNumber, Required("Tail number required"))
	c.check(path.Field("aircraftType"), a.AircraftType,
		Required("Aircraft type required"),
		v.oneOf(catalog.AircraftType, "Unknown aircraft type"))
	c.check(path.Field("callSign"), a.CallSign, Required("Call sign required"))
	c.check(path.Field("pilotName"), a.PilotName, Required("Pilot name required"))
	c.check(path.Field("configuration"), a.Configuration,
		Required("Configuration required"),
		v.oneOf(catalog.Configuration, "Unknown configuration"))
	c.check(path.Field("fuelLoad"), string(a.FuelLoad), NonNegative("Invalid fuel load"))
	return c.errs
}

// Tanker validates one tanker entry
func (v *Validator) Tanker(t models.Tanker, path Path) Errors {
	c := &collector{}
	c.check(path.Field("callSign"), t.CallSign, Required("Call sign required"))
	c.check(path.Field("aircraftType"), t.AircraftType,
		Required("Aircraft type required"),
		v.oneOf(catalog.TankerType, "Unknown tanker type"))
	c.check(path.Field("offloadCapacity"), string(t.OffloadCapacity), NonNegative("Invalid capacity"))
	c.check(path.Field("arTrack"), t.ARTrack, Required("AR track required"))
	c.check(path.Field("onStationTime"), t.OnStationTime, Required("On-station time required"))
	c.check(path.Field("offStationTime"), t.OffStationTime, Required("Off-station time required"))
	return c.errs
}

// Waypoint validates one route point
func (v *Validator) Waypoint(w models.Waypoint, path Path) Errors {
	c := &collector{}
	c.check(path.Field("name"), w.Name, Required("Waypoint name required"))
	c.check(path.Field("coordinates"), w.Coordinates, Required("Coordinates required"))
	c.check(path.Field("altitude"), string(w.Altitude), NonNegative("Invalid altitude"))
	c.check(path.Field("type"), w.Type, v.oneOf(catalog.WaypointType, "Invalid waypoint type"))
	return c.errs
}

func planAircraft(a models.Aircraft) models.PlannedAircraft {
	return models.PlannedAircraft{
		TailNumber:    a.TailNumber,
		AircraftType:  a.AircraftType,
		CallSign:      a.CallSign,
		PilotName:     a.PilotName,
		Configuration: a.Configuration,
		FuelLoad:      coerce(a.FuelLoad),
	}
}

func planTanker(t models.Tanker) models.PlannedTanker {
	return models.PlannedTanker{
		CallSign:        t.CallSign,
		AircraftType:    t.AircraftType,
		OffloadCapacity: coerce(t.OffloadCapacity),
		ARTrack:         t.ARTrack,
		OnStationTime:   t.OnStationTime,
		OffStationTime:  t.OffStationTime,
	}
}

func planWaypoint(w models.Waypoint) models.PlannedWaypoint {
	return models.PlannedWaypoint{
		Name:          w.Name,
		Coordinates:   w.Coordinates,
		Altitude:      coerce(w.Altitude),
		EstimatedTime: w.EstimatedTime,
		Type:          w.Type,
	}
}
