package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps_HalfOpenSemantics(t *testing.T) {
	testCases := []struct {
		name                       string
		start1, end1, start2, end2 string
		want                       bool
	}{
		{
			name:   "touching intervals do not overlap",
			start1: "10:00", end1: "12:00",
			start2: "12:00", end2: "14:00",
			want: false,
		},
		{
			name:   "one minute past the boundary overlaps",
			start1: "10:00", end1: "12:01",
			start2: "12:00", end2: "14:00",
			want: true,
		},
		{
			name:   "contained interval overlaps",
			start1: "10:00", end1: "14:00",
			start2: "11:00", end2: "12:00",
			want: true,
		},
		{
			name:   "identical intervals overlap",
			start1: "10:00", end1: "12:00",
			start2: "10:00", end2: "12:00",
			want: true,
		},
		{
			name:   "disjoint intervals do not overlap",
			start1: "08:00", end1: "09:00",
			start2: "12:00", end2: "14:00",
			want: false,
		},
		{
			name:   "touching in reverse order do not overlap",
			start1: "12:00", end1: "14:00",
			start2: "10:00", end2: "12:00",
			want: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(
				ts(tc.start1), ts(tc.end1),
				ts(tc.start2), ts(tc.end2),
			)
			assert.Equal(t, tc.want, got)

			// predicate is symmetric
			assert.Equal(t, tc.want, Overlaps(
				ts(tc.start2), ts(tc.end2),
				ts(tc.start1), ts(tc.end1),
			))
		})
	}
}
