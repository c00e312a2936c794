package catalog

import "coronet_planner/internal/models"

type entry struct {
	value string
	label string
}

var builtin = []struct {
	kind    Kind
	entries []entry
}{
	{Classification, []entry{
		{"UNCLASSIFIED", "UNCLASSIFIED"},
		{"CONFIDENTIAL", "CONFIDENTIAL"},
		{"SECRET", "SECRET"},
		{"TOP SECRET", "TOP SECRET"},
	}},
	{Priority, []entry{
		{"ROUTINE", "ROUTINE"},
		{"PRIORITY", "PRIORITY"},
		{"IMMEDIATE", "IMMEDIATE"},
		{"FLASH", "FLASH"},
	}},
	{MissionType, []entry{
		{"DEPLOYMENT", "Deployment"},
		{"REDEPLOYMENT", "Redeployment"},
		{"EXERCISE", "Exercise"},
		{"CONTINGENCY", "Contingency"},
	}},
	{AircraftType, []entry{
		{"F-15C", "F-15C Eagle"},
		{"F-15E", "F-15E Strike Eagle"},
		{"F-16C", "F-16C Fighting Falcon"},
		{"F-16D", "F-16D Fighting Falcon"},
		{"F-22A", "F-22A Raptor"},
		{"F-35A", "F-35A Lightning II"},
		{"F-35B", "F-35B Lightning II"},
		{"F-35C", "F-35C Lightning II"},
		{"A-10C", "A-10C Thunderbolt II"},
	}},
	{Configuration, []entry{
		{"CLEAN", "Clean (Ferry)"},
		{"CAP", "Combat Air Patrol"},
		{"STRIKE", "Strike Configuration"},
		{"SEAD", "SEAD/DEAD"},
		{"TRAINING", "Training Configuration"},
	}},
	{FormationType, []entry{
		{"SINGLE", "Single Ship"},
		{"ELEMENT", "Element (2-ship)"},
		{"FLIGHT", "Flight (4-ship)"},
		{"SQUADRON", "Squadron"},
	}},
	{TankerType, []entry{
		{"KC-135R", "KC-135R Stratotanker"},
		{"KC-135T", "KC-135T Stratotanker"},
		{"KC-46A", "KC-46A Pegasus"},
		{"KC-10A", "KC-10A Extender"},
	}},
	{RefuelingType, []entry{
		{"BOOM", "Boom"},
		{"DROGUE", "Drogue (Probe)"},
		{"BOTH", "Both"},
	}},
	{WaypointType, []entry{
		{"departure", "Departure"},
		{"enroute", "Enroute"},
		{"refuel", "Refuel"},
		{"arrival", "Arrival"},
		{"alternate", "Alternate"},
	}},
	{TimeReference, []entry{
		{"ZULU", "ZULU (UTC)"},
		{"LOCAL", "Local Time"},
		{"EST", "Eastern (EST/EDT)"},
		{"PST", "Pacific (PST/PDT)"},
		{"JST", "Japan (JST)"},
	}},
	{Rank, []entry{
		{"2LT", "2nd Lt"},
		{"1LT", "1st Lt"},
		{"CAPT", "Captain"},
		{"MAJ", "Major"},
		{"LTCOL", "Lt Col"},
		{"COL", "Colonel"},
	}},
}

// DefaultOptions returns the built-in catalogs as options
func DefaultOptions() []models.CatalogOption {
	var opts []models.CatalogOption
	for _, b := range builtin {
		for i, e := range b.entries {
			opts = append(opts, models.CatalogOption{
				Kind:     string(b.kind),
				Value:    e.value,
				Label:    e.label,
				Position: i,
			})
		}
	}
	return opts
}

// Default returns the built-in catalogs. The built-in data is always well
// formed, so a failure here is a programming error.
func Default() *Catalog {
	c, err := New(DefaultOptions())
	if err != nil {
		panic(err)
	}
	return c
}
