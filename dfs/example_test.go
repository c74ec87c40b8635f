package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvtree/dfs"
	"github.com/katalvlaran/lvtree/tree"
)

// ExampleFind contrasts with bfs.Find on the same tree: the left subtree
// is exhausted before 3 is reached.
func ExampleFind() {
	root := tree.New(7,
		tree.New(6, tree.New(2), tree.New(4)),
		tree.New(3, tree.New(10), tree.New(19)),
	)

	res, _ := dfs.Find(root, 3)
	fmt.Println(res.Found, res.Order)
	// Output:
	// true [7 6 2 4 3]
}
