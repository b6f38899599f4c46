package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type cellKind uint8

const (
	nullCell cellKind = iota
	numberCell
	textCell
)

// CellValue is the value of one metric for one product: null, a number or a string.
// The zero value is null.
type CellValue struct {
	kind cellKind
	num  float64
	text string
}

// NullCell returns the null cell value.
func NullCell() CellValue { return CellValue{} }

// NumberCell wraps a number.
func NumberCell(v float64) CellValue { return CellValue{kind: numberCell, num: v} }

// TextCell wraps a string.
func TextCell(s string) CellValue { return CellValue{kind: textCell, text: s} }

// FloatCell wraps an optional number; nil becomes null.
func FloatCell(v *float64) CellValue {
	if v == nil {
		return NullCell()
	}
	return NumberCell(*v)
}

// IntCell wraps an optional count; nil becomes null.
func IntCell(v *int) CellValue {
	if v == nil {
		return NullCell()
	}
	return NumberCell(float64(*v))
}

// StringCell wraps an optional string; nil becomes null.
func StringCell(v *string) CellValue {
	if v == nil {
		return NullCell()
	}
	return TextCell(*v)
}

// IsNull reports whether the cell holds no value.
func (c CellValue) IsNull() bool { return c.kind == nullCell }

// IsNumber reports whether the cell holds a number.
func (c CellValue) IsNumber() bool { return c.kind == numberCell }

// Float returns the numeric value, or nil for null and string cells.
// Only numbers take part in ranking.
func (c CellValue) Float() *float64 {
	if c.kind != numberCell {
		return nil
	}
	v := c.num
	return &v
}

// String renders the raw value: numbers in their shortest exact form, strings verbatim.
// Null renders as the empty string.
func (c CellValue) String() string {
	switch c.kind {
	case numberCell:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	case textCell:
		return c.text
	default:
		return ""
	}
}

// MarshalJSON encodes the cell as a JSON number, string or null.
func (c CellValue) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case numberCell:
		return json.Marshal(c.num)
	case textCell:
		return json.Marshal(c.text)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a JSON number, string or null.
func (c *CellValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*c = NullCell()
	case float64:
		*c = NumberCell(v)
	case string:
		*c = TextCell(v)
	default:
		return fmt.Errorf("cell value must be a number, string or null: %s", data)
	}
	return nil
}
