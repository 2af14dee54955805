package rentroll

// ActiveLease finds the lease covering the unit during a month range.
//
// A lease is active for the month iff its inclusive date range overlaps the
// inclusive month range. Well-formed data has at most one such lease; when
// overlapping leases exist anyway, the one with the latest start date wins so
// that a mid-month tenant transition attributes the month to the incoming
// tenancy, and equal start dates fall back to input order.
func (s *Snapshot) ActiveLease(unitID int64, month Range) (Lease, bool) {
	var best Lease
	var found bool
	for _, l := range s.unitLeases[unitID] {
		if !l.Active(month) {
			continue
		}
		if !found || l.Start.After(best.Start) {
			best = l
			found = true
		}
	}
	return best, found
}
