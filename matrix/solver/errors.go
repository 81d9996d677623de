// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
)

// ErrNotConverged is returned under WithStrictConvergence when some eigenpair
// did not settle within the iteration cap.
var ErrNotConverged = errors.New("solver: power iteration did not converge")

// solverErrorf wraps err with an operation tag.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
