package rentroll

// TimelineBar is one lease drawn on a unit's occupancy track, positioned as
// percentages of the year window so renderers need no date math.
type TimelineBar struct {
	Lease    Lease
	Tenant   string
	LeftPct  float64 // offset of the bar from the window start, 0..100
	WidthPct float64 // width of the bar, 0..100
}

// TimelineTrack is one unit's occupancy over the year.
type TimelineTrack struct {
	Unit     Unit
	Building string
	Bars     []TimelineBar
}

// TimelineReport is the occupancy timeline: per unit in scope, the leases
// overlapping the configured year as horizontal bars.
type TimelineReport struct {
	Config ViewConfig
	Label  string
	Window Range
	Tracks []TimelineTrack
}

// NewTimelineReport computes the occupancy timeline over the snapshot.
// Leases reaching beyond the window are clipped to its edges.
func NewTimelineReport(s *Snapshot, cfg ViewConfig) (*TimelineReport, error) {
	r := &TimelineReport{Config: cfg, Label: cfg.Label(), Window: cfg.Window()}
	total := float64(r.Window.Days())

	for _, u := range cfg.scopedUnits(s) {
		track := TimelineTrack{Unit: u, Building: s.BuildingName(u.BuildingID)}
		for _, l := range s.UnitLeases(u.ID) {
			span := Range{From: l.Start, To: l.End}
			if !span.Overlaps(r.Window) {
				continue
			}
			if span.From.Before(r.Window.From) {
				span.From = r.Window.From
			}
			if span.To.After(r.Window.To) {
				span.To = r.Window.To
			}
			bar := TimelineBar{
				Lease:    l,
				Tenant:   s.TenantName(l.TenantID),
				LeftPct:  clampPct(float64(NewRange(r.Window.From, span.From).Days()-1) / total * 100),
				WidthPct: clampPct(float64(span.Days()) / total * 100),
			}
			track.Bars = append(track.Bars, bar)
		}
		r.Tracks = append(r.Tracks, track)
	}
	return r, nil
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
