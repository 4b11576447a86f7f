package ndarray

import "fmt"

// Axis names the dimension a Matrix reduction collapses.
type Axis int

const (
	// ByColumn collapses the rows, producing one result per column (numpy axis=0).
	ByColumn Axis = 0
	// ByRow collapses the columns, producing one result per row (numpy axis=1).
	ByRow Axis = 1
)

// Validate returns ErrInvalidAxis for anything but ByColumn or ByRow.
func (a Axis) Validate() error {
	switch a {
	case ByColumn, ByRow:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidAxis, int(a))
	}
}

// String returns a human-readable name for the axis.
func (a Axis) String() string {
	switch a {
	case ByColumn:
		return "ByColumn"
	case ByRow:
		return "ByRow"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}
