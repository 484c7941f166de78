package utils

import (
	"log"
	"runtime/debug"
)

// GoSafe runs fn on a new goroutine and recovers any panic it raises.
func GoSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("recovered from panic: %v\n%s", r, debug.Stack())
			}
		}()
		fn()
	}()
}
