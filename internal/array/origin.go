package array

import (
	"fmt"
	"sync"
)

// Origin identifies the backend that created an array. Origins are
// process-local: they are handed out by RegisterOrigin and are only
// meaningful for looking up the registered name.
type Origin uint64

var (
	originsMutex sync.Mutex
	originNames  = map[Origin]string{}
	nextOrigin   Origin = 1
)

// RegisterOrigin registers a new array origin under the given name and
// returns its identifier. Backends call this once, typically from a
// package-level variable, and stamp every array they create with the
// result.
//
// Names should look like "<project>.<backend>" to stay unambiguous in
// error messages, but this is not enforced. Registering the same name
// twice returns two distinct origins.
func RegisterOrigin(name string) Origin {
	originsMutex.Lock()
	defer originsMutex.Unlock()

	origin := nextOrigin
	nextOrigin++
	originNames[origin] = name
	return origin
}

// OriginName returns the name an origin was registered under, or a
// placeholder for origins that were never registered.
func OriginName(origin Origin) string {
	originsMutex.Lock()
	defer originsMutex.Unlock()

	if name, ok := originNames[origin]; ok {
		return name
	}
	return fmt.Sprintf("unregistered origin %d", uint64(origin))
}
