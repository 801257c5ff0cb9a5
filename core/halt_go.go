//go:build !tinygo

package core

import "time"

// halt parks the calling goroutine forever (regular Go, for host builds and tests)
func halt() {
	for {
		time.Sleep(time.Hour)
	}
}
