package formatter

import (
	"slices"

	"github.com/philipp01105/prettylog/core"
)

// LocateCallerOffset walks frames starting at minOffset and returns the index
// of the last library frame before the first frame whose Type is not listed in
// libraryTypes. ok is false when every remaining frame belongs to the library.
func LocateCallerOffset(frames []core.Frame, libraryTypes []string, minOffset int) (offset int, ok bool) {
	if minOffset < 0 {
		minOffset = 0
	}
	for i := minOffset; i < len(frames); i++ {
		if !slices.Contains(libraryTypes, frames[i].Type) {
			return i - 1, true
		}
	}
	return -1, false
}

// effectiveMethodCount trims methodCount so that no index i+offset, for i in
// [1, count], reads past the end of a stack of depth frames.
func effectiveMethodCount(methodCount, offset, depth int) int {
	if methodCount+offset >= depth {
		methodCount = depth - offset - 1
	}
	if methodCount < 0 {
		return 0
	}
	return methodCount
}
