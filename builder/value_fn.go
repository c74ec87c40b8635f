// SPDX-License-Identifier: MIT
// Package: lvtree/builder

package builder

import (
	"fmt"
	"strconv"
)

// ValueFn generates a node value from its zero-based creation index.
// It must be pure: the same idx always yields the same value.
// Panics in implementations indicate programmer error in configuration.
type ValueFn func(idx int) string

// DecimalValue returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Never panics.
func DecimalValue(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolValue returns the uppercase Latin letter for idx in [0..25].
// Panics if idx < 0 or idx > 25.
func SymbolValue(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolValue: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnValue returns the spreadsheet column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
func ExcelColumnValue(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnValue: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// HexValue returns the lowercase hexadecimal form of idx, e.g. 255→"ff".
// Panics if idx < 0.
func HexValue(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexValue: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// PrefixedValue returns a ValueFn producing prefix + decimal index,
// e.g. PrefixedValue("n") → "n0","n1",...
func PrefixedValue(prefix string) ValueFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// ModuloValue returns a ValueFn producing the decimal form of idx % k, so
// values repeat every k nodes. Panics if k <= 0.
func ModuloValue(k int) ValueFn {
	if k <= 0 {
		panic(fmt.Sprintf("ModuloValue: k must be > 0, got %d", k))
	}
	return func(idx int) string {
		return strconv.Itoa(idx % k)
	}
}

// ValueScheme looks up a named scheme: "decimal", "symbol", "excel", "hex".
// The second result is false for unknown names.
func ValueScheme(name string) (ValueFn, bool) {
	switch name {
	case "decimal", "":
		return DecimalValue, true
	case "symbol":
		return SymbolValue, true
	case "excel":
		return ExcelColumnValue, true
	case "hex":
		return HexValue, true
	default:
		return nil, false
	}
}
