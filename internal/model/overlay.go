package model

// BitList is a sparse bitmask: the positions of the set bits.
type BitList []uint

// SideOverlay holds the requested overrides for one transition direction.
// A nil field is absent and leaves the descriptor bits untouched.
type SideOverlay struct {
	Target     *string
	AlphaLeft  *BitList
	AlphaRight *BitList
	Beta       *BitList
}

// IsAbsent reports whether the overlay carries no target state and no bitsets.
func (s SideOverlay) IsAbsent() bool {
	return s.Target == nil && s.AlphaLeft == nil && s.AlphaRight == nil && s.Beta == nil
}

// OverlayRow is one row of the caller supplied override table.
type OverlayRow struct {
	Index            int
	AssociatedStates []string
	Left             SideOverlay
	Right            SideOverlay
	// Line is the 1-based line of the row in the overlay stream.
	Line int
}

// Side returns the sub-overlay for a transition direction.
func (r OverlayRow) Side(side Side) SideOverlay {
	if side == SideRight {
		return r.Right
	}

	return r.Left
}
