package types

import "strconv"

// Sentinel conventions carried over from the ingest pipeline feeding the
// dashboard: upstream stages mark intentionally blank cells with RawSentinel,
// which the store rewrites to Sentinel before persisting. Sentinel cells are
// excluded from numeric type inference and always reconstruct as text.
const (
	RawSentinel = "emptyvalue"
	Sentinel    = "N/A"
)

// ValueKind discriminates the variants of a Value.
type ValueKind int

// Value kinds.
const (
	KindText ValueKind = iota
	KindNumber
)

// Value is one table cell: either text or a number. Cells are persisted as
// strings regardless of kind; numbers appear only after reconstruction-time
// inference.
type Value struct {
	Kind ValueKind
	Text string
	Num  float64
}

// TextValue returns a text-kind Value.
func TextValue(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// NumberValue returns a number-kind Value.
func NumberValue(f float64) Value {
	return Value{Kind: KindNumber, Num: f}
}

// String returns the storage form of the value. Numbers use the shortest
// representation that round-trips through strconv.ParseFloat.
func (v Value) String() string {
	if v.Kind == KindNumber {
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	}
	return v.Text
}

// IsSentinel reports whether the value is the N/A display sentinel.
func (v Value) IsSentinel() bool {
	return v.Kind == KindText && v.Text == Sentinel
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	if v.Kind == KindNumber {
		return v.Num == o.Num
	}
	return v.Text == o.Text
}
