//go:build !windows

package overlay

// Other platforms rely on the background rectangle alpha alone.
func (overlay *Window) applyNativeOpacity(uint8) {}
