package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eddyjiang/heapkit/heap"
)

const sample = `# warm-up
a 0 100
a 1 40

r 0 160
f 1
f 0
`

func TestParse(t *testing.T) {
	ops, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Equal(t, []Op{
		{Line: 2, Kind: KindAlloc, ID: 0, Size: 100},
		{Line: 3, Kind: KindAlloc, ID: 1, Size: 40},
		{Line: 5, Kind: KindResize, ID: 0, Size: 160},
		{Line: 6, Kind: KindFree, ID: 1},
		{Line: 7, Kind: KindFree, ID: 0},
	}, ops)
}

func TestParseRejectsBadLines(t *testing.T) {
	cases := []string{
		"x 0 8",
		"a 0",
		"a 0 8 9",
		"f 0 8",
		"a -1 8",
		"a zero 8",
		"a 0 -8",
	}
	for _, c := range cases {
		_, err := Parse(strings.NewReader(c))
		require.ErrorIs(t, err, ErrSyntax, "input %q", c)
	}
}

func TestParseReportsLineNumbers(t *testing.T) {
	_, err := Parse(strings.NewReader("a 0 8\n\n# ok\nq 1 2\n"))
	require.ErrorIs(t, err, ErrSyntax)
	require.Contains(t, err.Error(), "line 4")
}

func TestRunnerReplay(t *testing.T) {
	ops, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	a, err := heap.NewExplicit(make([]byte, 4096))
	require.NoError(t, err)

	r := NewRunner(a)
	r.ValidateEvery = 1
	sum, err := r.Run(ops)
	require.NoError(t, err)

	require.Equal(t, 5, sum.Ops)
	require.Zero(t, sum.NoSpace)
	require.Zero(t, sum.FinalUsed)
	require.Zero(t, r.Live())
	require.Equal(t, 3, sum.Stats.AllocCalls, "two allocs plus the resize relocation")
	require.GreaterOrEqual(t, sum.PeakUsed, 140)
}

func TestRunnerCountsNoSpace(t *testing.T) {
	a, err := heap.NewExplicit(make([]byte, 64))
	require.NoError(t, err)

	ops, err := Parse(strings.NewReader("a 0 40\na 1 40\nf 0\n"))
	require.NoError(t, err)

	r := NewRunner(a)
	sum, err := r.Run(ops)
	require.NoError(t, err)
	require.Equal(t, 1, sum.NoSpace)
	require.Zero(t, sum.FinalUsed)
}

func TestRunnerRejectsDoubleAlloc(t *testing.T) {
	a, err := heap.NewExplicit(make([]byte, 4096))
	require.NoError(t, err)

	ops, err := Parse(strings.NewReader("a 0 16\na 0 16\n"))
	require.NoError(t, err)

	_, err = NewRunner(a).Run(ops)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already allocated")
}

func TestRunnerRejectsUnknownID(t *testing.T) {
	a, err := heap.NewExplicit(make([]byte, 4096))
	require.NoError(t, err)

	ops, err := Parse(strings.NewReader("f 3\n"))
	require.NoError(t, err)
	_, err = NewRunner(a).Run(ops)
	require.Error(t, err)

	ops, err = Parse(strings.NewReader("r 3 16\n"))
	require.NoError(t, err)
	_, err = NewRunner(a).Run(ops)
	require.Error(t, err)
}

func TestRunnerFreeAll(t *testing.T) {
	a, err := heap.NewExplicit(make([]byte, 4096))
	require.NoError(t, err)

	ops, err := Parse(strings.NewReader("a 0 64\na 1 64\na 2 64\n"))
	require.NoError(t, err)

	r := NewRunner(a)
	_, err = r.Run(ops)
	require.NoError(t, err)
	require.Equal(t, 3, r.Live())

	r.FreeAll()
	require.Zero(t, r.Live())
	require.Zero(t, a.Used())
	require.NoError(t, a.Validate())
}

func TestRunnerPreservesPayloadAcrossResize(t *testing.T) {
	a, err := heap.NewImplicit(make([]byte, 8192))
	require.NoError(t, err)

	// The implicit variant relocates on every resize, so the marker
	// verification exercises the copy path.
	ops, err := Parse(strings.NewReader("a 0 64\nr 0 256\nr 0 32\nf 0\n"))
	require.NoError(t, err)

	r := NewRunner(a)
	r.ValidateEvery = 1
	sum, err := r.Run(ops)
	require.NoError(t, err)
	require.Equal(t, 2, sum.Stats.Relocations)
}
