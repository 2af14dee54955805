package rentroll

import (
	"math"
	"testing"
)

func TestNewTimelineReport(t *testing.T) {
	s := testSnapshot()
	report, err := NewTimelineReport(s, testConfig())
	if err != nil {
		t.Fatalf("NewTimelineReport() error = %v", err)
	}
	if len(report.Tracks) != 3 {
		t.Fatalf("got %d tracks, want 3", len(report.Tracks))
	}

	var track101, track2, track10 TimelineTrack
	for _, track := range report.Tracks {
		switch track.Unit.UnitNumber {
		case "101":
			track101 = track
		case "2":
			track2 = track
		case "10":
			track10 = track
		}
	}

	// unit 101: one bar from january through june, about half the year
	if len(track101.Bars) != 1 {
		t.Fatalf("unit 101 has %d bars, want 1", len(track101.Bars))
	}
	bar := track101.Bars[0]
	if bar.Tenant != "Asha" {
		t.Errorf("bar tenant = %q, want Asha", bar.Tenant)
	}
	if bar.LeftPct != 0 {
		t.Errorf("bar left = %v, want 0", bar.LeftPct)
	}
	want := 182.0 / 366.0 * 100 // jan through june of a leap year
	if math.Abs(bar.WidthPct-want) > 0.01 {
		t.Errorf("bar width = %v, want %v", bar.WidthPct, want)
	}

	// unit 2 is leased the whole year
	if len(track2.Bars) != 1 || track2.Bars[0].WidthPct != 100 || track2.Bars[0].LeftPct != 0 {
		t.Errorf("unit 2 bars = %+v, want one full-width bar", track2.Bars)
	}

	if len(track10.Bars) != 0 {
		t.Errorf("vacant unit has %d bars, want none", len(track10.Bars))
	}
}

func TestNewTimelineReport_Clipping(t *testing.T) {
	units := []Unit{{ID: 1, BuildingID: 1, UnitNumber: "101"}}
	tenants := []Tenant{{ID: 1, Name: "Asha"}}
	leases := []Lease{
		// runs well past both window edges
		{ID: 1, UnitID: 1, TenantID: 1, Start: D("2023-03-01"), End: D("2025-08-31"), Rent: INR(5000)},
		// entirely outside the window
		{ID: 2, UnitID: 1, TenantID: 1, Start: D("2022-01-01"), End: D("2022-12-31"), Rent: INR(4000)},
	}
	s := NewSnapshot(nil, units, tenants, leases, nil, nil)

	report, err := NewTimelineReport(s, testConfig())
	if err != nil {
		t.Fatalf("NewTimelineReport() error = %v", err)
	}
	bars := report.Tracks[0].Bars
	if len(bars) != 1 {
		t.Fatalf("got %d bars, want 1 (the out-of-window lease dropped)", len(bars))
	}
	if bars[0].LeftPct != 0 || bars[0].WidthPct != 100 {
		t.Errorf("clipped bar = %+v, want full width at origin", bars[0])
	}
}
