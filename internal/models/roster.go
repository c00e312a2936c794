package models

import "slices"

// Roster edits mirror the planning form's add/remove buttons. They never
// fail: an out-of-range index or a removal below the floor is a no-op and
// the bool result only reports whether the list changed.

func newAircraft() Aircraft {
	return Aircraft{FuelLoad: "0"}
}

func newTanker() Tanker {
	return Tanker{OffloadCapacity: "0"}
}

func newWaypoint() Waypoint {
	return Waypoint{Altitude: "0", Type: "enroute"}
}

// AddAircraft appends a blank aircraft to the roster
func (r *MissionRecord) AddAircraft() {
	r.Aircraft = append(r.Aircraft, newAircraft())
}

// RemoveAircraft removes the aircraft at index while at least one remains
func (r *MissionRecord) RemoveAircraft(index int) bool {
	if len(r.Aircraft) <= 1 || !inRange(index, len(r.Aircraft)) {
		return false
	}
	r.Aircraft = slices.Delete(r.Aircraft, index, index+1)
	return true
}

// AddTanker appends a blank tanker
func (r *MissionRecord) AddTanker() {
	r.Tankers = append(r.Tankers, newTanker())
}

// RemoveTanker removes the tanker at index. Like the aircraft roster, the
// last remaining tanker cannot be removed.
func (r *MissionRecord) RemoveTanker(index int) bool {
	if len(r.Tankers) <= 1 || !inRange(index, len(r.Tankers)) {
		return false
	}
	r.Tankers = slices.Delete(r.Tankers, index, index+1)
	return true
}

// AddWaypoint appends a blank enroute waypoint
func (r *MissionRecord) AddWaypoint() {
	r.Waypoints = append(r.Waypoints, newWaypoint())
}

// RemoveWaypoint removes the waypoint at index, keeping the order of the rest
func (r *MissionRecord) RemoveWaypoint(index int) bool {
	if !inRange(index, len(r.Waypoints)) {
		return false
	}
	r.Waypoints = slices.Delete(r.Waypoints, index, index+1)
	return true
}

func inRange(index, n int) bool {
	return index >= 0 && index < n
}
