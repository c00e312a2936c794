// Package catalog holds the fixed value/label catalogs that the mission
// validator checks enum fields against.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"coronet_planner/internal/models"
)

// Kind names a catalog
type Kind string

const (
	AircraftType   Kind = "aircraft_type"
	TankerType     Kind = "tanker_type"
	Configuration  Kind = "configuration"
	Rank           Kind = "rank"
	Classification Kind = "classification"
	Priority       Kind = "priority"
	MissionType    Kind = "mission_type"
	FormationType  Kind = "formation_type"
	RefuelingType  Kind = "refueling_type"
	TimeReference  Kind = "time_reference"
	WaypointType   Kind = "waypoint_type"
)

// Kinds lists every catalog a Catalog must carry, in display order
var Kinds = []Kind{
	Classification,
	Priority,
	MissionType,
	AircraftType,
	Configuration,
	FormationType,
	TankerType,
	RefuelingType,
	WaypointType,
	TimeReference,
	Rank,
}

// IsKind reports whether name is one of Kinds
func IsKind(name string) bool {
	for _, k := range Kinds {
		if string(k) == name {
			return true
		}
	}
	return false
}

// ErrMalformed is returned by New for catalog data the validator cannot use
var ErrMalformed = errors.New("malformed catalog")

// Set is the membership view of one catalog
type Set map[string]struct{}

// Contains reports whether value is a member of the set
func (s Set) Contains(value string) bool {
	_, ok := s[value]
	return ok
}

// Catalog is an immutable collection of catalogs keyed by Kind
type Catalog struct {
	options map[Kind][]models.CatalogOption
	sets    map[Kind]Set
}

// New builds a Catalog from options. Options are ordered by Position within
// their kind. Every kind in Kinds must be present, values must be non-blank
// and unique within their kind.
func New(options []models.CatalogOption) (*Catalog, error) {
	known := make(map[Kind]bool, len(Kinds))
	for _, k := range Kinds {
		known[k] = true
	}

	c := &Catalog{
		options: make(map[Kind][]models.CatalogOption),
		sets:    make(map[Kind]Set),
	}

	for _, opt := range options {
		kind := Kind(opt.Kind)
		if !known[kind] {
			return nil, fmt.Errorf("%w: unknown kind %q", ErrMalformed, opt.Kind)
		}
		if strings.TrimSpace(opt.Value) == "" {
			return nil, fmt.Errorf("%w: blank value in %s", ErrMalformed, kind)
		}
		set, ok := c.sets[kind]
		if !ok {
			set = make(Set)
			c.sets[kind] = set
		}
		if set.Contains(opt.Value) {
			return nil, fmt.Errorf("%w: duplicate value %q in %s", ErrMalformed, opt.Value, kind)
		}
		set[opt.Value] = struct{}{}
		c.options[kind] = append(c.options[kind], opt)
	}

	for _, k := range Kinds {
		if len(c.options[k]) == 0 {
			return nil, fmt.Errorf("%w: no options for %s", ErrMalformed, k)
		}
		opts := c.options[k]
		sort.SliceStable(opts, func(i, j int) bool {
			return opts[i].Position < opts[j].Position
		})
	}

	return c, nil
}

// Set returns the membership set for kind
func (c *Catalog) Set(kind Kind) Set {
	return c.sets[kind]
}

// Options returns the options of kind in display order
func (c *Catalog) Options(kind Kind) []models.CatalogOption {
	return append([]models.CatalogOption(nil), c.options[kind]...)
}

// All returns every option of every kind, kinds in Kinds order
func (c *Catalog) All() []models.CatalogOption {
	var all []models.CatalogOption
	for _, k := range Kinds {
		all = append(all, c.options[k]...)
	}
	return all
}
