// Package treemap implements a persistent ordered map on top of a
// Red/Black tree. Every operation that changes a map returns a new
// map sharing most of its structure with the original; the original
// is never modified, so maps may be read from any number of
// goroutines without locking.
//
// Keys are ordered by the comparison function given to Empty. All
// operations take the map first: either as the receiver, or as the
// first argument of the package level functions that need an
// additional type parameter (Fold, MapValues, MapWithKey).
package treemap
