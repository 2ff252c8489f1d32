package rain

// ColorState is the rendered brightness bucket of a trail cell.
type ColorState uint8

const (
	ColorBlank  ColorState = iota
	ColorDim               // darkest, nearest the head behind the leader
	ColorMid               // medium
	ColorMain              // bright, upper trail
	ColorLeader            // palest, the head cell only
)

// ColorOf maps a cell's distance from the head and the column's trail
// length to a color bucket. dist is headRow - row: 0 at the leading edge,
// growing toward the trail's top, so the trail brightens behind the
// luminous leader independent of absolute screen position. Pure function.
func ColorOf(dist, trailLength int, isLeader bool) ColorState {
	if isLeader {
		return ColorLeader
	}
	t := 0.0
	if trailLength > 1 {
		t = float64(dist) / float64(trailLength-1)
	}
	switch {
	case t >= 0.5:
		return ColorMain
	case t >= 0.2:
		return ColorMid
	default:
		return ColorDim
	}
}
