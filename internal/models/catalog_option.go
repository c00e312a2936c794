package models

// CatalogOption is one value/label pair of a fixed catalog, e.g. the
// aircraft type "F-15C" labelled "F-15C Eagle"
type CatalogOption struct {
	Kind     string // catalog name, e.g. aircraft_type
	Value    string // value stored in the mission record
	Label    string // display label
	Position int    // order within the catalog
}
