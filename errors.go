// File: errors.go
// Role: sentinel errors for the kdtree package, plus the wrapf helper every
// call site uses to attach context to one.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers branch on semantics with errors.Is(err, ErrX).
//   - Sentinels are never given formatted text at the definition site; call
//     sites wrap them with wrapf(op, format, ...) so the sentinel survives
//     errors.Is while the message carries context.

package kdtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter indicates a tuning parameter or query argument was
	// outside its allowed domain: DeleteParam outside (0,1], BalanceParam
	// outside (0.5,1), or NearestSearch's k <= 0.
	ErrInvalidParameter = errors.New("kdtree: invalid parameter")

	// ErrNonFinitePoint indicates a query point carried a NaN or infinite
	// coordinate. Coordinates fed into Build/AddPoints/DeletePoints are not
	// validated against this (spec leaves ingestion-path non-finite input
	// undefined); NearestSearch's query point is, since a non-finite query
	// would otherwise corrupt every downstream distance comparison.
	ErrNonFinitePoint = errors.New("kdtree: non-finite point")
)

const (
	opNew             = "kdtree.New"
	opSetDeleteParam  = "kdtree.SetDeleteParam"
	opSetBalanceParam = "kdtree.SetBalanceParam"
	opNearestSearch   = "kdtree.NearestSearch"
)

// wrapf wraps a sentinel with op context and a formatted message. format's
// last verb is conventionally "%w" against a sentinel argument, so the
// sentinel survives errors.Is while op and the rest of format describe the
// call that failed.
func wrapf(op, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{op}, args...)...)
}
