package enumerate

import "fmt"

// DefaultMaxVariants caps ratio and exhaustive enumeration when the caller
// does not set an explicit bound.
const DefaultMaxVariants = 1000

// ConstraintKind selects the enumeration strategy
type ConstraintKind int

const (
	// ExactSequence builds the single polymer given by Sequence
	ExactSequence ConstraintKind = iota
	// Ratio builds every distinct ordering of a fragment multiset derived
	// from Counts scaled to Length
	Ratio
	// Exhaustive builds every sequence of Length over the pool
	Exhaustive
	// LengthSweep builds the Sequence repeated 1..Length times
	LengthSweep
)

// String returns the string representation of the constraint kind
func (k ConstraintKind) String() string {
	switch k {
	case ExactSequence:
		return "exact"
	case Ratio:
		return "ratio"
	case Exhaustive:
		return "exhaustive"
	case LengthSweep:
		return "sweep"
	default:
		return fmt.Sprintf("ConstraintKind(%d)", int(k))
	}
}

// Constraint specifies required fragment counts, ratios or order.
// It is read-only input to the enumerator.
type Constraint struct {
	Kind ConstraintKind

	// Sequence holds pool indices in assembly order (ExactSequence) or the
	// repeat unit (LengthSweep).
	Sequence []int

	// Counts holds the composition ratio per pool fragment (Ratio).
	Counts []int

	// Length is the total chain length (Ratio, Exhaustive) or the maximum
	// repeat count (LengthSweep).
	Length int

	// MaxVariants caps unbounded strategies. Zero applies
	// DefaultMaxVariants; ExactSequence and LengthSweep ignore it.
	MaxVariants int
}

// cap returns the effective variant bound
func (c Constraint) cap() int {
	if c.MaxVariants > 0 {
		return c.MaxVariants
	}
	return DefaultMaxVariants
}
