//go:build tinygo

package core

import "runtime/interrupt"

// halt disables interrupts and spins
func halt() {
	interrupt.Disable()
	for {
	}
}
