// Package schema declares the expected shape of normalized endpoint rows and
// validates batches against them. Validation is best-effort typing, not a
// gate: the upstream service changes field sets without notice, so the
// default lenient mode trades runtime guarantees for zero data loss.
package schema

import "fmt"

// Kind enumerates the primitive types upstream values take after JSON
// decoding.
type Kind int

const (
	String Kind = iota
	Number
	Bool
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "bool"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Field describes one expected row field. Nullable fields accept explicit
// nulls; optional fields may be absent entirely. Unknown extra fields always
// pass through untouched, they are never stripped.
type Field struct {
	Kind     Kind
	Nullable bool
	Optional bool
}

// Shape is a named set of expected fields for one endpoint table.
type Shape struct {
	Name   string
	Fields map[string]Field
}

// Mode selects the failure policy applied to a batch.
type Mode int

const (
	// Strict aborts on the first failing row.
	Strict Mode = iota
	// Lenient abandons validation for the whole batch on any failure and
	// returns the original rows unchanged.
	Lenient
)

// Shorthand field constructors used by the per-endpoint shape tables.

func Str() Field      { return Field{Kind: String} }
func StrNull() Field  { return Field{Kind: String, Nullable: true} }
func Num() Field      { return Field{Kind: Number} }
func NumNull() Field  { return Field{Kind: Number, Nullable: true} }
func BoolNull() Field { return Field{Kind: Bool, Nullable: true} }
func Opt(f Field) Field {
	f.Optional = true
	return f
}
