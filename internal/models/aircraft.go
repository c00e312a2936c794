package models

// Aircraft is one entry of the mission's aircraft roster
type Aircraft struct {
	TailNumber    string `json:"tailNumber" yaml:"tailNumber"`       // e.g. AF 90-0001
	AircraftType  string `json:"aircraftType" yaml:"aircraftType"`   // aircraft_type catalog value
	CallSign      string `json:"callSign" yaml:"callSign"`           // e.g. VIPER 01
	PilotName     string `json:"pilotName" yaml:"pilotName"`         // e.g. Capt Smith
	Configuration string `json:"configuration" yaml:"configuration"` // configuration catalog value
	FuelLoad      Number `json:"fuelLoad" yaml:"fuelLoad"`           // pounds, >= 0
}

// Tanker is one entry of the tanker support roster
type Tanker struct {
	CallSign        string `json:"callSign" yaml:"callSign"`               // e.g. SHELL 01
	AircraftType    string `json:"aircraftType" yaml:"aircraftType"`       // tanker_type catalog value
	OffloadCapacity Number `json:"offloadCapacity" yaml:"offloadCapacity"` // pounds, >= 0
	ARTrack         string `json:"arTrack" yaml:"arTrack"`                 // aerial refueling track, e.g. AR-201
	OnStationTime   string `json:"onStationTime" yaml:"onStationTime"`
	OffStationTime  string `json:"offStationTime" yaml:"offStationTime"`
}

// Waypoint is one point of the planned route
type Waypoint struct {
	Name          string `json:"name" yaml:"name"`
	Coordinates   string `json:"coordinates" yaml:"coordinates"` // free text, e.g. N36 W120
	Altitude      Number `json:"altitude" yaml:"altitude"`       // feet, >= 0
	EstimatedTime string `json:"estimatedTime,omitempty" yaml:"estimatedTime,omitempty"`
	Type          string `json:"type" yaml:"type"` // waypoint_type catalog value
}

// PlannedAircraft is an Aircraft after numeric coercion
type PlannedAircraft struct {
	TailNumber    string  `json:"tailNumber" yaml:"tailNumber"`
	AircraftType  string  `json:"aircraftType" yaml:"aircraftType"`
	CallSign      string  `json:"callSign" yaml:"callSign"`
	PilotName     string  `json:"pilotName" yaml:"pilotName"`
	Configuration string  `json:"configuration" yaml:"configuration"`
	FuelLoad      float64 `json:"fuelLoad" yaml:"fuelLoad"`
}

// PlannedTanker is a Tanker after numeric coercion
type PlannedTanker struct {
	CallSign        string  `json:"callSign" yaml:"callSign"`
	AircraftType    string  `json:"aircraftType" yaml:"aircraftType"`
	OffloadCapacity float64 `json:"offloadCapacity" yaml:"offloadCapacity"`
	ARTrack         string  `json:"arTrack" yaml:"arTrack"`
	OnStationTime   string  `json:"onStationTime" yaml:"onStationTime"`
	OffStationTime  string  `json:"offStationTime" yaml:"offStationTime"`
}

// PlannedWaypoint is a Waypoint after numeric coercion
type PlannedWaypoint struct {
	Name          string  `json:"name" yaml:"name"`
	Coordinates   string  `json:"coordinates" yaml:"coordinates"`
	Altitude      float64 `json:"altitude" yaml:"altitude"`
	EstimatedTime string  `json:"estimatedTime,omitempty" yaml:"estimatedTime,omitempty"`
	Type          string  `json:"type" yaml:"type"`
}
