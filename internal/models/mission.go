package models

import "time"

// DefaultGuardFrequency is the UHF guard frequency in MHz. The form never
// lets a planner edit it.
const DefaultGuardFrequency = "243.0"

// DateLayout is the layout used for departure and arrival dates
const DateLayout = "2006-01-02"

// MissionRecord is a Coronet mission plan as collected from the planning form.
// Field names double as error paths, so the json tags must stay in step with
// the validator.
type MissionRecord struct {
	// Mission identification
	MissionNumber   string `json:"missionNumber" yaml:"missionNumber"`
	MissionName     string `json:"missionName" yaml:"missionName"`
	Classification  string `json:"classification" yaml:"classification"`
	Priority        string `json:"priority" yaml:"priority"`
	MissionType     string `json:"missionType" yaml:"missionType"`
	CommandingUnit  string `json:"commandingUnit" yaml:"commandingUnit"`
	SupportingUnits string `json:"supportingUnits,omitempty" yaml:"supportingUnits,omitempty"`

	// Timing
	DepartureDate        string `json:"departureDate" yaml:"departureDate"`
	DepartureTime        string `json:"departureTime" yaml:"departureTime"`
	EstimatedArrivalDate string `json:"estimatedArrivalDate" yaml:"estimatedArrivalDate"`
	EstimatedArrivalTime string `json:"estimatedArrivalTime" yaml:"estimatedArrivalTime"`
	TimeZone             string `json:"timeZone" yaml:"timeZone"`

	// Route
	DepartureBase      string     `json:"departureBase" yaml:"departureBase"`
	DepartureICAO      string     `json:"departureICAO" yaml:"departureICAO"`
	DestinationBase    string     `json:"destinationBase" yaml:"destinationBase"`
	DestinationICAO    string     `json:"destinationICAO" yaml:"destinationICAO"`
	PrimaryAlternate   string     `json:"primaryAlternate,omitempty" yaml:"primaryAlternate,omitempty"`
	SecondaryAlternate string     `json:"secondaryAlternate,omitempty" yaml:"secondaryAlternate,omitempty"`
	RouteDescription   string     `json:"routeDescription,omitempty" yaml:"routeDescription,omitempty"`
	Waypoints          []Waypoint `json:"waypoints" yaml:"waypoints"`

	// Aircraft
	Aircraft      []Aircraft `json:"aircraft" yaml:"aircraft"`
	FormationType string     `json:"formationType" yaml:"formationType"`
	TotalAircraft Number     `json:"totalAircraft" yaml:"totalAircraft"`

	// Tanker support
	TankerRequired       bool     `json:"tankerRequired" yaml:"tankerRequired"`
	Tankers              []Tanker `json:"tankers" yaml:"tankers"`
	TotalOffloadRequired Number   `json:"totalOffloadRequired,omitempty" yaml:"totalOffloadRequired,omitempty"`
	RefuelingType        string   `json:"refuelingType,omitempty" yaml:"refuelingType,omitempty"`

	// Personnel
	MissionCommander     string `json:"missionCommander" yaml:"missionCommander"`
	MissionCommanderRank string `json:"missionCommanderRank" yaml:"missionCommanderRank"`
	FlightLead           string `json:"flightLead" yaml:"flightLead"`
	DeputyFlightLead     string `json:"deputyFlightLead,omitempty" yaml:"deputyFlightLead,omitempty"`
	IntelOfficer         string `json:"intelOfficer,omitempty" yaml:"intelOfficer,omitempty"`
	WeatherOfficer       string `json:"weatherOfficer,omitempty" yaml:"weatherOfficer,omitempty"`

	// Communications
	PrimaryFrequency   string `json:"primaryFrequency" yaml:"primaryFrequency"`
	SecondaryFrequency string `json:"secondaryFrequency,omitempty" yaml:"secondaryFrequency,omitempty"`
	GuardFrequency     string `json:"guardFrequency" yaml:"guardFrequency"`
	SATCOMChannel      string `json:"satcomChannel,omitempty" yaml:"satcomChannel,omitempty"`
	COMSECRequired     bool   `json:"comsecRequired" yaml:"comsecRequired"`
	COMSECKeyDate      string `json:"comsecKeyDate,omitempty" yaml:"comsecKeyDate,omitempty"`

	// Contingencies
	DivertBases         string `json:"divertBases,omitempty" yaml:"divertBases,omitempty"`
	EmergencyProcedures string `json:"emergencyProcedures,omitempty" yaml:"emergencyProcedures,omitempty"`
	WeatherMinimums     string `json:"weatherMinimums,omitempty" yaml:"weatherMinimums,omitempty"`
	FuelMinimums        Number `json:"fuelMinimums,omitempty" yaml:"fuelMinimums,omitempty"`
	BingoFuel           Number `json:"bingoFuel,omitempty" yaml:"bingoFuel,omitempty"`
	JokerFuel           Number `json:"jokerFuel,omitempty" yaml:"jokerFuel,omitempty"`
	NOTAMs              string `json:"notams,omitempty" yaml:"notams,omitempty"`
	SpecialInstructions string `json:"specialInstructions,omitempty" yaml:"specialInstructions,omitempty"`
}

// NewMissionRecord returns a record holding the planning form's defaults:
// one blank aircraft, one blank tanker and no waypoints.
func NewMissionRecord() *MissionRecord {
	return &MissionRecord{
		Classification: "UNCLASSIFIED",
		Priority:       "ROUTINE",
		MissionType:    "DEPLOYMENT",
		FormationType:  "FLIGHT",
		TotalAircraft:  "4",
		TankerRequired: true,
		COMSECRequired: true,
		GuardFrequency: DefaultGuardFrequency,
		TimeZone:       "ZULU",
		Aircraft:       []Aircraft{newAircraft()},
		Tankers:        []Tanker{newTanker()},
		Waypoints:      []Waypoint{},
	}
}

// MissionPlan is a MissionRecord that passed validation, with numbers and
// dates coerced to their native types
type MissionPlan struct {
	MissionNumber   string `json:"missionNumber" yaml:"missionNumber"`
	MissionName     string `json:"missionName" yaml:"missionName"`
	Classification  string `json:"classification" yaml:"classification"`
	Priority        string `json:"priority" yaml:"priority"`
	MissionType     string `json:"missionType" yaml:"missionType"`
	CommandingUnit  string `json:"commandingUnit" yaml:"commandingUnit"`
	SupportingUnits string `json:"supportingUnits,omitempty" yaml:"supportingUnits,omitempty"`

	DepartureDate        time.Time `json:"departureDate" yaml:"departureDate"`
	DepartureTime        string    `json:"departureTime" yaml:"departureTime"`
	EstimatedArrivalDate time.Time `json:"estimatedArrivalDate" yaml:"estimatedArrivalDate"`
	EstimatedArrivalTime string    `json:"estimatedArrivalTime" yaml:"estimatedArrivalTime"`
	TimeZone             string    `json:"timeZone" yaml:"timeZone"`

	DepartureBase      string            `json:"departureBase" yaml:"departureBase"`
	DepartureICAO      string            `json:"departureICAO" yaml:"departureICAO"`
	DestinationBase    string            `json:"destinationBase" yaml:"destinationBase"`
	DestinationICAO    string            `json:"destinationICAO" yaml:"destinationICAO"`
	PrimaryAlternate   string            `json:"primaryAlternate,omitempty" yaml:"primaryAlternate,omitempty"`
	SecondaryAlternate string            `json:"secondaryAlternate,omitempty" yaml:"secondaryAlternate,omitempty"`
	RouteDescription   string            `json:"routeDescription,omitempty" yaml:"routeDescription,omitempty"`
	Waypoints          []PlannedWaypoint `json:"waypoints" yaml:"waypoints"`

	Aircraft      []PlannedAircraft `json:"aircraft" yaml:"aircraft"`
	FormationType string            `json:"formationType" yaml:"formationType"`
	TotalAircraft float64           `json:"totalAircraft" yaml:"totalAircraft"`

	TankerRequired       bool            `json:"tankerRequired" yaml:"tankerRequired"`
	Tankers              []PlannedTanker `json:"tankers" yaml:"tankers"`
	TotalOffloadRequired *float64        `json:"totalOffloadRequired,omitempty" yaml:"totalOffloadRequired,omitempty"`
	RefuelingType        string          `json:"refuelingType,omitempty" yaml:"refuelingType,omitempty"`

	MissionCommander     string `json:"missionCommander" yaml:"missionCommander"`
	MissionCommanderRank string `json:"missionCommanderRank" yaml:"missionCommanderRank"`
	FlightLead           string `json:"flightLead" yaml:"flightLead"`
	DeputyFlightLead     string `json:"deputyFlightLead,omitempty" yaml:"deputyFlightLead,omitempty"`
	IntelOfficer         string `json:"intelOfficer,omitempty" yaml:"intelOfficer,omitempty"`
	WeatherOfficer       string `json:"weatherOfficer,omitempty" yaml:"weatherOfficer,omitempty"`

	PrimaryFrequency   string `json:"primaryFrequency" yaml:"primaryFrequency"`
	SecondaryFrequency string `json:"secondaryFrequency,omitempty" yaml:"secondaryFrequency,omitempty"`
	GuardFrequency     string `json:"guardFrequency" yaml:"guardFrequency"`
	SATCOMChannel      string `json:"satcomChannel,omitempty" yaml:"satcomChannel,omitempty"`
	COMSECRequired     bool   `json:"comsecRequired" yaml:"comsecRequired"`
	COMSECKeyDate      string `json:"comsecKeyDate,omitempty" yaml:"comsecKeyDate,omitempty"`

	DivertBases         string   `json:"divertBases,omitempty" yaml:"divertBases,omitempty"`
	EmergencyProcedures string   `json:"emergencyProcedures,omitempty" yaml:"emergencyProcedures,omitempty"`
	WeatherMinimums     string   `json:"weatherMinimums,omitempty" yaml:"weatherMinimums,omitempty"`
	FuelMinimums        *float64 `json:"fuelMinimums,omitempty" yaml:"fuelMinimums,omitempty"`
	BingoFuel           *float64 `json:"bingoFuel,omitempty" yaml:"bingoFuel,omitempty"`
	JokerFuel           *float64 `json:"jokerFuel,omitempty" yaml:"jokerFuel,omitempty"`
	NOTAMs              string   `json:"notams,omitempty" yaml:"notams,omitempty"`
	SpecialInstructions string   `json:"specialInstructions,omitempty" yaml:"specialInstructions,omitempty"`
}

// Title is the one-line summary shown when a plan is submitted
func (p *MissionPlan) Title() string {
	return "Mission " + p.MissionNumber + " - " + p.MissionName
}
