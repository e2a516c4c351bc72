package enumerate

import (
	"sort"

	"github.com/CAREERS-Cyberteam/MHP/chem/assemble"
	chemerr "github.com/CAREERS-Cyberteam/MHP/chem/errors"
	"github.com/CAREERS-Cyberteam/MHP/chem/parser"
)

// Stream is a lazy sequence of distinct polymers satisfying a composition
// constraint. Consume it scanner-style:
//
//	s, err := enumerate.New(pool, constraint, policy)
//	for s.Next() {
//		use(s.Polymer())
//	}
//	err = s.Err()
//
// The stream is not restartable: each element is produced once, and callers
// needing the same set twice must call New again. Duplicate detection
// compares normalized fragment-sequence signatures, so structurally
// identical chains are emitted once; graph-isomorphism duplicates across
// branching topologies are not detected.
type Stream struct {
	pool    []*parser.Fragment
	policy  assemble.Policy
	gen     func() ([]int, bool)
	seen    map[string]bool
	limit   int
	emitted int
	tried   int
	current *assemble.Polymer
	err     error
	done    bool
}

// New validates the constraint against the pool and returns a Stream.
// Constraints that no ordering can satisfy fail here with a
// ConstraintUnsatisfiable error.
func New(pool []*parser.Fragment, c Constraint, policy assemble.Policy) (*Stream, error) {
	if len(pool) == 0 {
		return nil, chemerr.New(chemerr.ConstraintUnsatisfiable, "enumerator", chemerr.CodeEmptyPool,
			"fragment pool is empty")
	}

	s := &Stream{
		pool:   pool,
		policy: policy,
		seen:   make(map[string]bool),
		limit:  c.cap(),
	}

	switch c.Kind {
	case ExactSequence:
		if err := validIndices(c.Sequence, len(pool)); err != nil {
			return nil, err
		}
		s.gen = onceGen(c.Sequence)
		s.limit = 1
	case LengthSweep:
		if err := validIndices(c.Sequence, len(pool)); err != nil {
			return nil, err
		}
		if c.Length < 1 {
			return nil, chemerr.New(chemerr.ConstraintUnsatisfiable, "enumerator", chemerr.CodeInvalidConstraint,
				"sweep length must be at least 1")
		}
		s.gen = sweepGen(c.Sequence, c.Length)
		s.limit = c.Length
	case Ratio:
		start, err := ratioStart(c, len(pool))
		if err != nil {
			return nil, err
		}
		s.gen = permutationGen(start)
	case Exhaustive:
		if c.Length < 1 {
			return nil, chemerr.New(chemerr.ConstraintUnsatisfiable, "enumerator", chemerr.CodeInvalidConstraint,
				"exhaustive length must be at least 1")
		}
		s.gen = odometerGen(len(pool), c.Length)
	default:
		return nil, chemerr.Newf(chemerr.ConstraintUnsatisfiable, "enumerator", chemerr.CodeInvalidConstraint,
			"unknown constraint kind %d", int(c.Kind))
	}

	return s, nil
}

// Next advances to the next distinct polymer, returning false when the
// stream is exhausted or failed. Sequences rejected by the bonding policy
// are skipped; if every candidate is rejected the stream fails with a
// ConstraintUnsatisfiable error.
func (s *Stream) Next() bool {
	if s.done {
		return false
	}
	for s.emitted < s.limit {
		seq, ok := s.gen()
		if !ok {
			break
		}
		s.tried++
		fragments := make([]*parser.Fragment, len(seq))
		for i, idx := range seq {
			fragments[i] = s.pool[idx]
		}
		g, err := assemble.Assemble(fragments, s.policy)
		if err != nil {
			continue
		}
		if s.seen[g.Signature()] {
			continue
		}
		s.seen[g.Signature()] = true
		s.emitted++
		s.current = g
		return true
	}

	s.done = true
	s.current = nil
	if s.emitted == 0 && s.tried > 0 {
		s.err = chemerr.New(chemerr.ConstraintUnsatisfiable, "enumerator", chemerr.CodeRoleUnsatisfiable,
			"no fragment ordering satisfies the bonding-role compatibility of the pool")
	}
	return false
}

// Polymer returns the polymer produced by the last successful Next
func (s *Stream) Polymer() *assemble.Polymer {
	return s.current
}

// Err returns the terminal error, if any, once Next has returned false
func (s *Stream) Err() error {
	return s.err
}

// Count returns how many distinct polymers have been emitted so far
func (s *Stream) Count() int {
	return s.emitted
}

// validIndices checks a sequence of pool references
func validIndices(seq []int, poolSize int) error {
	if len(seq) == 0 {
		return chemerr.New(chemerr.ConstraintUnsatisfiable, "enumerator", chemerr.CodeInvalidConstraint,
			"constraint sequence is empty")
	}
	for _, idx := range seq {
		if idx < 0 || idx >= poolSize {
			return chemerr.Newf(chemerr.ConstraintUnsatisfiable, "enumerator", chemerr.CodeInvalidConstraint,
				"sequence references fragment %d outside pool of %d", idx, poolSize)
		}
	}
	return nil
}

// ratioStart scales the ratio counts to the requested length and returns the
// lexicographically smallest ordering of the resulting multiset.
func ratioStart(c Constraint, poolSize int) ([]int, error) {
	if len(c.Counts) != poolSize {
		return nil, chemerr.Newf(chemerr.ConstraintUnsatisfiable, "enumerator", chemerr.CodeInvalidConstraint,
			"ratio declares %d terms for a pool of %d fragments", len(c.Counts), poolSize)
	}
	unit := 0
	for _, n := range c.Counts {
		if n < 0 {
			return nil, chemerr.New(chemerr.ConstraintUnsatisfiable, "enumerator", chemerr.CodeInvalidConstraint,
				"ratio terms must be non-negative")
		}
		unit += n
	}
	if unit == 0 {
		return nil, chemerr.New(chemerr.ConstraintUnsatisfiable, "enumerator", chemerr.CodeInvalidConstraint,
			"ratio terms are all zero")
	}
	if c.Length < 1 || c.Length%unit != 0 {
		return nil, chemerr.Newf(chemerr.ConstraintUnsatisfiable, "enumerator", chemerr.CodeRatioUnsatisfiable,
			"length %d cannot satisfy a ratio summing to %d", c.Length, unit)
	}
	scale := c.Length / unit
	seq := make([]int, 0, c.Length)
	for idx, n := range c.Counts {
		for k := 0; k < n*scale; k++ {
			seq = append(seq, idx)
		}
	}
	sort.Ints(seq)
	return seq, nil
}

// Sequence generators. Each returns the next candidate and false when spent.

func onceGen(seq []int) func() ([]int, bool) {
	spent := false
	return func() ([]int, bool) {
		if spent {
			return nil, false
		}
		spent = true
		return seq, true
	}
}

func sweepGen(unit []int, max int) func() ([]int, bool) {
	n := 0
	return func() ([]int, bool) {
		n++
		if n > max {
			return nil, false
		}
		seq := make([]int, 0, n*len(unit))
		for i := 0; i < n; i++ {
			seq = append(seq, unit...)
		}
		return seq, true
	}
}

// permutationGen walks the distinct permutations of a multiset in
// lexicographic order, starting from the sorted arrangement.
func permutationGen(start []int) func() ([]int, bool) {
	cur := make([]int, len(start))
	copy(cur, start)
	first := true
	return func() ([]int, bool) {
		if first {
			first = false
			out := make([]int, len(cur))
			copy(out, cur)
			return out, true
		}
		if !nextPermutation(cur) {
			return nil, false
		}
		out := make([]int, len(cur))
		copy(out, cur)
		return out, true
	}
}

// nextPermutation rearranges seq into its lexicographic successor in place,
// returning false from the final arrangement.
func nextPermutation(seq []int) bool {
	i := len(seq) - 2
	for i >= 0 && seq[i] >= seq[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(seq) - 1
	for seq[j] <= seq[i] {
		j--
	}
	seq[i], seq[j] = seq[j], seq[i]
	for l, r := i+1, len(seq)-1; l < r; l, r = l+1, r-1 {
		seq[l], seq[r] = seq[r], seq[l]
	}
	return true
}

// odometerGen counts through every length-n sequence over poolSize symbols
func odometerGen(poolSize, n int) func() ([]int, bool) {
	cur := make([]int, n)
	first := true
	return func() ([]int, bool) {
		if first {
			first = false
			out := make([]int, n)
			copy(out, cur)
			return out, true
		}
		for i := n - 1; i >= 0; i-- {
			cur[i]++
			if cur[i] < poolSize {
				out := make([]int, n)
				copy(out, cur)
				return out, true
			}
			cur[i] = 0
		}
		return nil, false
	}
}
