package treeio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtree/tree"
)

// Sentinel errors for tree documents.
var (
	// ErrEmptyDocument is returned when the input holds no document.
	ErrEmptyDocument = errors.New("treeio: empty document")

	// ErrEmptyValue is returned by ParseValue for blank input.
	ErrEmptyValue = errors.New("treeio: empty value")

	// ErrUncomparableValue is returned when a value is a list, map or other
	// type that cannot be compared with ==. It is tree.ErrUncomparableValue.
	ErrUncomparableValue = tree.ErrUncomparableValue
)

// document is the wire form of a tree node.
type document[T comparable] struct {
	Value    T             `yaml:"value"`
	Children []document[T] `yaml:"children,omitempty"`
}

// Decode reads one tree document from r.
func Decode[T comparable](r io.Reader) (*tree.Node[T], error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document[T]
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("treeio: decode: %w", err)
	}

	return doc.toNode("root")
}

// DecodeFile opens path and decodes the tree document it contains.
func DecodeFile[T comparable](path string) (*tree.Node[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("treeio: open %q: %w", path, err)
	}
	defer f.Close()

	root, err := Decode[T](f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return root, nil
}

// Encode writes root to w as a YAML document. A nil root writes nothing.
func Encode[T comparable](w io.Writer, root *tree.Node[T]) error {
	if root == nil {
		return nil
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fromNode(root)); err != nil {
		return fmt.Errorf("treeio: encode: %w", err)
	}

	return enc.Close()
}

// ParseValue parses s as a single YAML scalar of type T, the same way a
// document value is parsed. "null" and "~" yield the zero value (nil for
// pointer and interface types).
func ParseValue[T comparable](s string) (T, error) {
	var v T
	if strings.TrimSpace(s) == "" {
		return v, ErrEmptyValue
	}
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return v, fmt.Errorf("treeio: parse value %q: %w", s, err)
	}
	if err := tree.CheckComparable(v); err != nil {
		return v, fmt.Errorf("value %q: %w", s, err)
	}

	return v, nil
}

// toNode converts d into a tree, validating every value. at names d's
// position for error messages.
func (d document[T]) toNode(at string) (*tree.Node[T], error) {
	if err := tree.CheckComparable(d.Value); err != nil {
		return nil, fmt.Errorf("%s: %w", at, err)
	}
	n := tree.New(d.Value)
	if len(d.Children) > 0 {
		n.Children = make([]*tree.Node[T], 0, len(d.Children))
	}
	for i, c := range d.Children {
		child, err := c.toNode(fmt.Sprintf("%s.children[%d]", at, i))
		if err != nil {
			return nil, err
		}
		n.Add(child)
	}

	return n, nil
}

func fromNode[T comparable](n *tree.Node[T]) document[T] {
	d := document[T]{Value: n.Value}
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		d.Children = append(d.Children, fromNode(c))
	}

	return d
}
