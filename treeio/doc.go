// Package treeio reads and writes trees as YAML documents. JSON is accepted
// too, since every JSON document is valid YAML.
//
// Document shape
//
//	value: 7
//	children:
//	  - value: 6
//	    children:
//	      - value: 2
//	      - value: 4
//	  - value: 3
//
// Values are decoded into the tree's value type. With Node[any], scalars
// become int, float64, bool, string or nil (for null / ~), all of which
// compare with ==. Lists and maps are rejected with ErrUncomparableValue so
// that every search over a decoded tree is safe.
package treeio
