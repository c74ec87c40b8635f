package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvtree/bfs"
	"github.com/katalvlaran/lvtree/tree"
)

// sample builds 7 -> [6 -> [2, 4], 3 -> [10, 19]].
func sample() *tree.Node[int] {
	return tree.New(7,
		tree.New(6, tree.New(2), tree.New(4)),
		tree.New(3, tree.New(10), tree.New(19)),
	)
}

func TestFind_Scenarios(t *testing.T) {
	dupA := tree.New(9, tree.New(2))
	dupB := tree.New(9)

	cases := []struct {
		name      string
		root      *tree.Node[int]
		target    int
		wantFound bool
		wantNode  *tree.Node[int]
		wantOrder []int
		wantDepth int
	}{
		{
			name:      "match at depth one stops before its children",
			root:      sample(),
			target:    3,
			wantFound: true,
			wantOrder: []int{7, 6, 3},
			wantDepth: 1,
		},
		{
			name:      "absent target visits everything",
			root:      tree.New(7, tree.New(6), tree.New(3)),
			target:    42,
			wantOrder: []int{7, 6, 3},
			wantDepth: -1,
		},
		{
			name:      "root only",
			root:      tree.New(5),
			target:    5,
			wantFound: true,
			wantOrder: []int{5},
			wantDepth: 0,
		},
		{
			name:      "first duplicate wins",
			root:      tree.New(1, dupA, dupB),
			target:    9,
			wantFound: true,
			wantNode:  dupA,
			wantOrder: []int{1, 9},
			wantDepth: 1,
		},
		{
			name:      "leaf match",
			root:      sample(),
			target:    19,
			wantFound: true,
			wantOrder: []int{7, 6, 3, 2, 4, 10, 19},
			wantDepth: 2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := bfs.Find(tc.root, tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.wantFound, res.Found)
			assert.Equal(t, tc.wantDepth, res.Depth)
			if diff := cmp.Diff(tc.wantOrder, res.Order); diff != "" {
				t.Errorf("Order mismatch (-want +got):\n%s", diff)
			}
			if !tc.wantFound {
				assert.Nil(t, res.Node)
				return
			}
			require.NotNil(t, res.Node)
			assert.Equal(t, tc.target, res.Node.Value)
			if tc.wantNode != nil {
				assert.Same(t, tc.wantNode, res.Node)
			}
		})
	}
}

// TestFind_LevelOrderBeforeDeeperMatch checks that the whole shallower level
// is visited, and already-enqueued siblings come first, before a deeper match.
func TestFind_LevelOrderBeforeDeeperMatch(t *testing.T) {
	res, err := bfs.Find(sample(), 4)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []int{7, 6, 3, 2, 4}, res.Order)
	assert.Equal(t, []int{7, 6, 4}, res.Path)
}

func TestFind_NilRoot(t *testing.T) {
	res, err := bfs.Find[int](nil, 1)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Node)
	assert.Empty(t, res.Order)
	assert.Equal(t, -1, res.Depth)
}

func TestFind_NullTarget(t *testing.T) {
	absent := tree.New[any](nil)
	root := tree.New[any](1, tree.New[any]("x"), absent)

	res, err := bfs.Find[any](root, nil)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Same(t, absent, res.Node)
	assert.Equal(t, []any{1, "x", nil}, res.Order)

	// nil never equals a present value
	res, err = bfs.Find[any](tree.New[any](0, tree.New[any]("")), nil)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, []any{0, ""}, res.Order)
}

// TestFind_DuplicateSubtreeNotExpanded verifies that a node whose value was
// already visited is skipped together with its children.
func TestFind_DuplicateSubtreeNotExpanded(t *testing.T) {
	root := tree.New(1,
		tree.New(2, tree.New(5)),
		tree.New(2, tree.New(6)),
	)
	var skipped []int
	res, err := bfs.Find(root, 6, bfs.WithOnSkip(func(v, _ int) { skipped = append(skipped, v) }))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, []int{1, 2, 5}, res.Order)
	assert.Equal(t, []int{2}, skipped)
}

// TestFind_SharedSubtree guards against revisiting a subtree reachable twice.
func TestFind_SharedSubtree(t *testing.T) {
	shared := tree.New(8, tree.New(9))
	root := tree.New(1, shared, tree.New(2, shared))
	res, err := bfs.Find(root, 100)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 8, 2, 9}, res.Order)
}

func TestFind_Idempotent(t *testing.T) {
	root := sample()
	first, err := bfs.Find(root, 10)
	require.NoError(t, err)
	second, err := bfs.Find(root, 10)
	require.NoError(t, err)
	assert.Same(t, first.Node, second.Node)
	assert.Equal(t, first.Order, second.Order)
}

func TestFindFunc(t *testing.T) {
	res, err := bfs.FindFunc(sample(), func(v int) bool { return v > 7 })
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 10, res.Node.Value)

	res, err = bfs.FindFunc[int](sample(), nil)
	assert.ErrorIs(t, err, bfs.ErrNilMatch)
	assert.Nil(t, res, "nothing is traversed before the predicate check")
}

func TestFind_MaxDepth(t *testing.T) {
	res, err := bfs.Find(sample(), 19, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, []int{7, 6, 3}, res.Order)

	// 0 means no limit
	res, err = bfs.Find(sample(), 19, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.True(t, res.Found)

	res, err = bfs.Find(sample(), 19, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
	assert.Nil(t, res)
}

func TestFind_OnVisitHook(t *testing.T) {
	var seen []int
	var depths []int
	_, err := bfs.Find(sample(), 4, bfs.WithOnVisit(func(v, d int) error {
		seen = append(seen, v)
		depths = append(depths, d)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{7, 6, 3, 2, 4}, seen)
	assert.Equal(t, []int{0, 1, 1, 2, 2}, depths)

	stop := errors.New("stop")
	res, err := bfs.Find(sample(), 4, bfs.WithOnVisit(func(v, _ int) error {
		if v == 3 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{7, 6, 3}, res.Order)
	assert.False(t, res.Found)
}

func TestFind_HookTypeMismatch(t *testing.T) {
	_, err := bfs.Find(sample(), 4, bfs.WithOnVisit(func(string, int) error { return nil }))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.Find(sample(), 4, bfs.WithOnSkip(func(string, int) {}))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestFind_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	res, err := bfs.Find(sample(), 19,
		bfs.WithContext(ctx),
		bfs.WithOnVisit(func(v, _ int) error {
			if v == 6 {
				cancel()
			}
			return nil
		}),
	)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []int{7, 6}, res.Order)
}

func TestFind_Logger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	res, err := bfs.Find(tree.New(1, tree.New(1), tree.New(2)), 2, bfs.WithLogger(zap.New(core)))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 2, logs.FilterMessage("bfs: visit").Len())
	assert.Equal(t, 1, logs.FilterMessage("bfs: skip seen value").Len())
	assert.Equal(t, 1, logs.FilterMessage("bfs: match").Len())
}

// TestFind_UncomparableValues covers Node[any] holding slices or maps: the
// search reports tree.ErrUncomparableValue instead of panicking.
func TestFind_UncomparableValues(t *testing.T) {
	res, err := bfs.Find[any](tree.New[any](1, tree.New[any]([]int{1})), 2)
	assert.ErrorIs(t, err, tree.ErrUncomparableValue)
	require.NotNil(t, res)
	assert.Equal(t, []any{1}, res.Order)
	assert.False(t, res.Found)

	_, err = bfs.Find[any](tree.New[any](map[string]int{}), 1)
	assert.ErrorIs(t, err, tree.ErrUncomparableValue)

	_, err = bfs.Find[any](tree.New[any](1), []int{1})
	assert.ErrorIs(t, err, tree.ErrUncomparableValue)

	// a match before the offending node ends the search first
	res, err = bfs.Find[any](tree.New[any](1, tree.New[any](2), tree.New[any]([]int{1})), 2)
	require.NoError(t, err)
	assert.True(t, res.Found)
}

// TestFind_NilChildren skips nil entries assigned directly to Children.
func TestFind_NilChildren(t *testing.T) {
	root := &tree.Node[int]{Value: 1, Children: []*tree.Node[int]{nil, tree.New(2)}}
	res, err := bfs.Find(root, 2)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []int{1, 2}, res.Order)
	assert.Equal(t, 2, root.Size())
	assert.Equal(t, 1, root.Height())
}
