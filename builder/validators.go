// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/linkgrid/lattice"
)

// validateSize ensures every dimension of size is ≥ MinGridDim.
// The returned error matches both ErrBadSize and lattice.ErrBadSize.
func validateSize(size lattice.Index) error {
	if err := lattice.ValidateSize(size); err != nil {
		return fmt.Errorf("%s: %w: %w", MethodBuild, ErrBadSize, err)
	}

	return nil
}
