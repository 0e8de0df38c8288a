package rain

// MayAdmit reports whether candidate can join existing without its leader
// overlapping a stream in the same column. A same-column stream blocks the
// candidate while its tail is still in the top third of the screen.
func MayAdmit(candidate *Stream, height int, existing []*Stream) bool {
	limit := height / 3
	for _, s := range existing {
		if s.column != candidate.column {
			continue
		}
		if s.Tail() < limit {
			return false
		}
	}
	return true
}
