package component

// Health is a current/max hit-point pair.
type Health struct {
	Current, Max int
}

// Alive reports whether any health remains.
func (h Health) Alive() bool { return h.Current > 0 }

// Full reports whether current health is at (or above) max.
func (h Health) Full() bool { return h.Current >= h.Max }

// Heal adds n, clamped to Max.
func (h *Health) Heal(n int) {
	h.Current += n
	if h.Current > h.Max {
		h.Current = h.Max
	}
}
