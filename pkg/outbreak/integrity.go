package outbreak

// Integrity scores the network health as the percentage of nodes still
// secure, from 100 (untouched) down to 0 (fully compromised).
func Integrity(state *WorldState) (float64, error) {
	total := state.NodeCount()
	if total == 0 {
		return 0, &OutbreakError{Op: "Integrity", Cause: ErrEmptyGraph}
	}
	return 100 * float64(state.SecureCount()) / float64(total), nil
}
