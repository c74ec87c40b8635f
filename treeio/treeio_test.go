package treeio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/bfs"
	"github.com/katalvlaran/lvtree/tree"
	"github.com/katalvlaran/lvtree/treeio"
)

const sampleYAML = `
value: 7
children:
  - value: 6
    children:
      - value: 2
      - value: 4
  - value: 3
    children:
      - value: 10
      - value: 19
`

func TestDecode_YAML(t *testing.T) {
	root, err := treeio.Decode[int](strings.NewReader(sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, 7, root.Size())

	res, err := bfs.Find(root, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 6, 3}, res.Order)
}

func TestDecode_JSON(t *testing.T) {
	in := `{"value": "a", "children": [{"value": "b"}, {"value": null}]}`
	root, err := treeio.Decode[any](strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "b", root.Children[0].Value)
	assert.Nil(t, root.Children[1].Value)

	res, err := bfs.Find[any](root, nil)
	require.NoError(t, err)
	assert.True(t, res.Found)
}

func TestDecode_AnyScalars(t *testing.T) {
	in := "value: 1\nchildren:\n  - value: true\n  - value: 2.5\n  - value: x\n  - value: ~\n"
	root, err := treeio.Decode[any](strings.NewReader(in))
	require.NoError(t, err)

	got := make([]any, 0, len(root.Children))
	for _, c := range root.Children {
		got = append(got, c.Value)
	}
	assert.Equal(t, []any{true, 2.5, "x", nil}, got)
	assert.Equal(t, 1, root.Value)
}

func TestDecode_Errors(t *testing.T) {
	_, err := treeio.Decode[int](strings.NewReader(""))
	assert.ErrorIs(t, err, treeio.ErrEmptyDocument)

	_, err = treeio.Decode[any](strings.NewReader("value: 1\nchildren:\n  - value: [1, 2]\n"))
	assert.ErrorIs(t, err, treeio.ErrUncomparableValue)
	assert.Contains(t, err.Error(), "root.children[0]")

	_, err = treeio.Decode[int](strings.NewReader("value: 1\nkids: []\n"))
	assert.Error(t, err)

	_, err = treeio.Decode[int](strings.NewReader("value: abc\n"))
	assert.Error(t, err)
}

func TestEncode_RoundTrip(t *testing.T) {
	orig := tree.New("r", tree.New("a", tree.New("c")), tree.New("b"))

	var buf bytes.Buffer
	require.NoError(t, treeio.Encode(&buf, orig))
	assert.Contains(t, buf.String(), "value: r")

	back, err := treeio.Decode[string](&buf)
	require.NoError(t, err)
	assert.Equal(t, orig, back)
}

func TestEncode_NilRoot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, treeio.Encode[int](&buf, nil))
	assert.Zero(t, buf.Len())
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	root, err := treeio.DecodeFile[int](path)
	require.NoError(t, err)
	assert.Equal(t, 7, root.Value)

	_, err = treeio.DecodeFile[int](filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseValue(t *testing.T) {
	v, err := treeio.ParseValue[any]("3")
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = treeio.ParseValue[any]("null")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = treeio.ParseValue[any]("quota")
	require.NoError(t, err)
	assert.Equal(t, "quota", v)

	s, err := treeio.ParseValue[string]("42")
	require.NoError(t, err)
	assert.Equal(t, "42", s)

	_, err = treeio.ParseValue[any]("  ")
	assert.ErrorIs(t, err, treeio.ErrEmptyValue)

	_, err = treeio.ParseValue[any]("{a: 1}")
	assert.ErrorIs(t, err, treeio.ErrUncomparableValue)

	_, err = treeio.ParseValue[int]("x")
	assert.Error(t, err)
}
