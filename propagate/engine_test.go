package propagate_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/linkgrid/builder"
	"github.com/katalvlaran/linkgrid/constraint"
	"github.com/katalvlaran/linkgrid/lattice"
	"github.com/katalvlaran/linkgrid/linkstore"
	"github.com/katalvlaran/linkgrid/propagate"
)

// reference is the window used throughout: min 0.2, max 1 on every axis.
func reference() constraint.Model {
	return constraint.Model{
		Min: r3.Vec{X: 0.2, Y: 0.2, Z: 0.2},
		Max: r3.Vec{X: 1, Y: 1, Z: 1},
	}
}

// restGrid builds a store whose links sit on their grid coordinates.
func restGrid(t *testing.T, x, y, z int) *linkstore.Store {
	t.Helper()
	s, err := linkstore.New(lattice.Index{X: x, Y: y, Z: z}, linkstore.AtRest(linkstore.Color{}))
	require.NoError(t, err)
	return s
}

func position(t *testing.T, s *linkstore.Store, idx lattice.Index) r3.Vec {
	t.Helper()
	p, err := s.Position(idx)
	require.NoError(t, err)
	return p
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors covers a nil store and a malformed window (min.x > max.x).
func TestNew_Errors(t *testing.T) {
	_, err := propagate.New(nil, reference())
	assert.ErrorIs(t, err, propagate.ErrNilStore)

	bad := reference()
	bad.Min.X = 1
	bad.Max.X = 0.5
	_, err = propagate.New(restGrid(t, 2, 1, 1), bad)
	assert.ErrorIs(t, err, constraint.ErrInvalidModel)

	bad = reference()
	bad.Max.Y = -1
	bad.Min.Y = -2
	_, err = propagate.New(restGrid(t, 2, 1, 1), bad)
	assert.ErrorIs(t, err, constraint.ErrInvalidModel)
}

// TestNew_Accessors checks the default topology and model wiring.
func TestNew_Accessors(t *testing.T) {
	s := restGrid(t, 3, 2, 1)
	e, err := propagate.New(s, reference())
	require.NoError(t, err)

	assert.Same(t, s, e.Store())
	assert.Equal(t, reference(), e.Model())
	fw, ok := e.Topology().(*lattice.FourWay)
	require.True(t, ok)
	assert.Equal(t, s.Size(), fw.Size())
}

//----------------------------------------------------------------------------//
// Deform scenarios
//----------------------------------------------------------------------------//

// TestDeform_SingleNode moves the only node of a 1×1×1 grid; nothing propagates.
func TestDeform_SingleNode(t *testing.T) {
	s := restGrid(t, 1, 1, 1)
	e, err := propagate.New(s, reference())
	require.NoError(t, err)

	res, err := e.Deform(r2.Vec{X: 1, Y: 1}, lattice.Index{})
	require.NoError(t, err)

	assert.Equal(t, r3.Vec{X: 1, Y: 1, Z: 0}, position(t, s, lattice.Index{}))
	assert.Empty(t, res.Corrected)
	assert.Zero(t, res.Checked)
	assert.Zero(t, res.Passes)
}

// TestDeform_TwoNodePull displaces node0 by -0.9; node1 is pulled back
// until the X gap is at most 1 and node0 is not moved again.
func TestDeform_TwoNodePull(t *testing.T) {
	s := restGrid(t, 2, 1, 1)
	e, err := propagate.New(s, reference())
	require.NoError(t, err)

	res, err := e.Deform(r2.Vec{X: -0.9}, lattice.Index{})
	require.NoError(t, err)

	n0 := position(t, s, lattice.Index{X: 0})
	n1 := position(t, s, lattice.Index{X: 1})
	assert.Equal(t, r3.Vec{X: -0.9}, n0)
	gap := n1.X - n0.X
	assert.LessOrEqual(t, gap, 1.0)
	assert.Greater(t, gap, 0.98-1e-9)
	assert.Equal(t, 0.0, n1.Y)
	assert.Equal(t, 0.0, n1.Z)

	assert.Equal(t, []lattice.Index{{X: 1}}, res.Corrected)
	assert.Equal(t, lattice.Index{X: 0}, res.Sponsor[lattice.Index{X: 1}])
	assert.Equal(t, 2, res.Checked, "node1 against node0, then node0 against node1")
}

// TestDeform_UnknownSeed fails before any mutation.
func TestDeform_UnknownSeed(t *testing.T) {
	s := restGrid(t, 2, 2, 1)
	before := s.Snapshot()
	e, err := propagate.New(s, reference())
	require.NoError(t, err)

	res, err := e.Deform(r2.Vec{X: 5}, lattice.Index{X: 9})
	assert.ErrorIs(t, err, propagate.ErrSeedNotFound)
	assert.Nil(t, res)
	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Errorf("store changed on failed deform (-before +after):\n%s", diff)
	}
}

// TestDeform_ZUntouched keeps the seed's Z even on a displaced node.
func TestDeform_ZUntouched(t *testing.T) {
	s := restGrid(t, 1, 1, 1)
	require.NoError(t, s.SetPosition(lattice.Index{}, r3.Vec{Z: 5}))
	e, err := propagate.New(s, reference())
	require.NoError(t, err)

	_, err = e.Deform(r2.Vec{X: 0.3, Y: -0.4}, lattice.Index{})
	require.NoError(t, err)
	assert.Equal(t, r3.Vec{X: 0.3, Y: -0.4, Z: 5}, position(t, s, lattice.Index{}))
}

// TestDeform_ChainConverges drags one end of a 5-node row; every adjacent
// pair ends up inside the window.
func TestDeform_ChainConverges(t *testing.T) {
	s := restGrid(t, 5, 1, 1)
	e, err := propagate.New(s, reference())
	require.NoError(t, err)

	res, err := e.Deform(r2.Vec{X: -3}, lattice.Index{})
	require.NoError(t, err)

	want := []lattice.Index{{X: 1}, {X: 2}, {X: 3}, {X: 4}}
	assert.Equal(t, want, res.Corrected)
	for x := 0; x < 4; x++ {
		a := position(t, s, lattice.Index{X: x})
		b := position(t, s, lattice.Index{X: x + 1})
		assert.True(t, reference().Satisfied(a, b), "pair %d-%d: %v %v", x, x+1, a, b)
	}
}

// TestDeform_FirstCorrectorWins builds a 2×2 grid where node (1,1) is
// reachable from (1,0) and from (0,1). The task from (1,0) sits in the
// BOTTOM queue behind (0,0)->(0,1); the one from (0,1) lands in the RIGHT
// queue, which is only revisited on the next pass. (1,0) must win, and
// (1,1) must be corrected exactly once.
func TestDeform_FirstCorrectorWins(t *testing.T) {
	s := restGrid(t, 2, 2, 1)
	var events []propagate.Correction
	e, err := propagate.New(s, reference(), propagate.WithOnCorrect(func(c propagate.Correction) {
		events = append(events, c)
	}))
	require.NoError(t, err)

	res, err := e.Deform(r2.Vec{X: -2, Y: -2}, lattice.Index{})
	require.NoError(t, err)

	target := lattice.Index{X: 1, Y: 1}
	var hits []propagate.Correction
	for _, ev := range events {
		if ev.Target == target {
			hits = append(hits, ev)
		}
	}
	require.Len(t, hits, 1, "node (1,1) must be checked exactly once")
	assert.True(t, hits[0].Moved)
	assert.Equal(t, lattice.Index{X: 1, Y: 0}, hits[0].Sponsor)
	assert.Equal(t, lattice.Bottom, hits[0].Direction)

	assert.Equal(t, lattice.Index{X: 1, Y: 0}, res.Sponsor[target])
	assert.Equal(t, []lattice.Index{{X: 1}, {Y: 1}, {X: 1, Y: 1}}, res.Corrected)
	assert.Equal(t, 1, res.Skipped, "the stale RIGHT task (0,1)->(1,1) is dropped")
	assert.Equal(t, 5, res.Checked)
	assert.Equal(t, 2, res.Passes)
}

// TestDeform_WinningPairsSatisfied runs the reference 9×9 deformation and
// checks that every winning (sponsor, target) pair respects the window,
// except pairs whose sponsor is the seed and the seed was later corrected.
func TestDeform_WinningPairsSatisfied(t *testing.T) {
	s, err := builder.Build(lattice.Index{X: 9, Y: 9, Z: 1}, builder.WithSeed(42), builder.WithRandomColors())
	require.NoError(t, err)
	e, err := propagate.New(s, reference())
	require.NoError(t, err)

	seed := lattice.Index{X: 1, Y: 1}
	res, err := e.Deform(r2.Vec{X: 0.75, Y: -1.75}, seed)
	require.NoError(t, err)
	require.NotEmpty(t, res.Corrected)

	seen := map[lattice.Index]bool{}
	for _, idx := range res.Corrected {
		assert.False(t, seen[idx], "node %v corrected twice", idx)
		seen[idx] = true
	}
	for target, sponsor := range res.Sponsor {
		if sponsor == seed && seen[seed] {
			continue
		}
		sp := position(t, s, sponsor)
		tp := position(t, s, target)
		assert.True(t, reference().Satisfied(sp, tp), "%v -> %v: %v %v", sponsor, target, sp, tp)
	}
}

// TestDeform_Deterministic replays the same deformation on two identical
// grids and expects bit-identical positions.
func TestDeform_Deterministic(t *testing.T) {
	run := func() []linkstore.Entry {
		s, err := builder.Build(lattice.Index{X: 7, Y: 6, Z: 1}, builder.WithSeed(7), builder.WithRandomColors())
		require.NoError(t, err)
		e, err := propagate.New(s, reference())
		require.NoError(t, err)
		_, err = e.Deform(r2.Vec{X: 1.3, Y: 2.2}, lattice.Index{X: 3, Y: 2})
		require.NoError(t, err)
		_, err = e.Deform(r2.Vec{X: -0.4, Y: 0.9}, lattice.Index{X: 6, Y: 5})
		require.NoError(t, err)
		return s.Snapshot()
	}
	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("repeated runs differ (-first +second):\n%s", diff)
	}
}

// TestDeform_NoConvergence surfaces the corrector's sweep bound as an error.
func TestDeform_NoConvergence(t *testing.T) {
	s := restGrid(t, 2, 1, 1)
	m := constraint.Model{Min: r3.Vec{X: 0.995}, Max: r3.Vec{X: 1, Y: 1, Z: 1}}
	e, err := propagate.New(s, m, propagate.WithMaxSweeps(100))
	require.NoError(t, err)

	_, err = e.Deform(r2.Vec{X: -0.01}, lattice.Index{})
	assert.ErrorIs(t, err, constraint.ErrNoConvergence)
}

// rightOnly restricts a FourWay topology to the RIGHT direction.
type rightOnly struct{ *lattice.FourWay }

func (rightOnly) Directions() []lattice.Direction { return []lattice.Direction{lattice.Right} }

// TestDeform_CustomTopology swaps the topology without touching the engine.
func TestDeform_CustomTopology(t *testing.T) {
	s := restGrid(t, 3, 1, 1)
	fw, err := lattice.NewFourWay(s.Size())
	require.NoError(t, err)
	e, err := propagate.New(s, reference(), propagate.WithTopology(rightOnly{fw}))
	require.NoError(t, err)

	res, err := e.Deform(r2.Vec{X: -3}, lattice.Index{X: 1})
	require.NoError(t, err)
	assert.Equal(t, []lattice.Index{{X: 2}}, res.Corrected)
	assert.Equal(t, r3.Vec{}, position(t, s, lattice.Index{X: 0}), "left side is never visited")
}

// TestDeform_Logger traces the call at debug level.
func TestDeform_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	e, err := propagate.New(restGrid(t, 2, 1, 1), reference(), propagate.WithLogger(logger))
	require.NoError(t, err)

	_, err = e.Deform(r2.Vec{X: -0.9}, lattice.Index{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "deform settled")
	assert.Contains(t, buf.String(), "checked")
}

// TestOptions_Panic covers the fail-fast option constructors.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { propagate.WithStep(-1) })
	assert.Panics(t, func() { propagate.WithMaxSweeps(0) })
}
