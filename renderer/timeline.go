package renderer

import (
	"fmt"
	"strings"

	"github.com/smartrent/rentroll"
)

// trackWidth is the number of character columns a year track spans.
const trackWidth = 48

// TimelineMarkdown renders the occupancy timeline as fixed-width text
// tracks, one line per lease bar.
func TimelineMarkdown(r *rentroll.TimelineReport) string {
	t := &timelineRenderer{Builder: &strings.Builder{}}

	t.Printf("# Occupancy %s\n\n", r.Label)
	t.Printf("`%s`\n\n", axis(r))

	for _, track := range r.Tracks {
		t.Printf("**%s**\n\n", unitLabel(track.Unit, track.Building))
		if len(track.Bars) == 0 {
			t.Printf("`%s` vacant\n", strings.Repeat("·", trackWidth))
		}
		for _, bar := range track.Bars {
			t.Printf("`%s` %s (%s to %s)\n",
				barLine(bar), bar.Tenant, bar.Lease.Start, bar.Lease.End)
		}
		t.Printf("\n")
	}
	return t.String()
}

// timelineRenderer formats the timeline into a markdown string.
type timelineRenderer struct {
	*strings.Builder
}

func (t *timelineRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(t, format, args...)
}

// axis writes the month initials spaced over the track width.
func axis(r *rentroll.TimelineReport) string {
	cells := make([]byte, trackWidth)
	for i := range cells {
		cells[i] = ' '
	}
	for i, m := range r.Config.Months() {
		pos := i * trackWidth / 12
		cells[pos] = m.Format("Jan")[0]
	}
	return string(cells)
}

// barLine draws one lease as a run of full blocks on a dotted track.
func barLine(bar rentroll.TimelineBar) string {
	from := int(bar.LeftPct / 100 * trackWidth)
	width := int(bar.WidthPct / 100 * trackWidth)
	if width < 1 {
		width = 1
	}
	if from+width > trackWidth {
		width = trackWidth - from
	}
	var sb strings.Builder
	sb.WriteString(strings.Repeat("·", from))
	sb.WriteString(strings.Repeat("█", width))
	sb.WriteString(strings.Repeat("·", trackWidth-from-width))
	return sb.String()
}
