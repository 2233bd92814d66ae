package state

// Viewport tracks the first visible row of a scrolled list.
type Viewport struct {
	Offset int
}

// Follow adjusts the offset so that row selected is visible in a window of
// height rows over total rows. A non-positive height shows everything.
func (v *Viewport) Follow(selected, total, height int) {
	if total <= 0 || height <= 0 {
		v.Offset = 0
		return
	}
	maxOffset := total - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
	if selected < 0 {
		return
	}
	if selected >= total {
		selected = total - 1
	}
	if selected < v.Offset {
		v.Offset = selected
	}
	if upper := v.Offset + height - 1; selected > upper {
		v.Offset = selected - height + 1
	}
}

// Window returns the half-open range of rows to draw.
func (v *Viewport) Window(total, height int) (int, int) {
	if height <= 0 || total <= height {
		return 0, total
	}
	start := v.Offset
	if start+height > total {
		start = total - height
	}
	if start < 0 {
		start = 0
	}
	return start, start + height
}
