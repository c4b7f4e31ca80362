package component

type Health struct {
	Current int
	Max     int
}

// Damage subtracts n hit points, never going below zero, and reports whether
// the owner is now dead.
func (h *Health) Damage(n int) bool {
	if n < 0 {
		n = 0
	}
	h.Current -= n
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Dead()
}

func (h Health) Dead() bool {
	return h.Current <= 0
}
