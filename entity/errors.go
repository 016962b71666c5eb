// SPDX-License-Identifier: MIT

package entity

import "errors"

var (
	// ErrUnknownEntity is returned when a catalog has no record for an ID.
	ErrUnknownEntity = errors.New("entity: unknown entity")

	// ErrUnknownForce is returned when a force table has no policy for a name.
	ErrUnknownForce = errors.New("entity: unknown force")

	// ErrInvalidRecord marks a record that cannot produce an intrinsic matrix.
	ErrInvalidRecord = errors.New("entity: invalid record")
)
