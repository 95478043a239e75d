// Package view implements pointer+shape views over dense column-major
// memory, the index arithmetic that derives sub-views from slice specs,
// and the scoped protection that keeps backing storage alive while views
// over it are in use.
package view

// Elem is a constraint for supported view element types.
// Every member is fixed-layout: its size is statically known and its
// values own no further heap memory, so copying bytes copies the value.
type Elem interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | ~bool
}

// Numeric is the subset of Elem with a defined numeric conversion.
// Used by converting bulk copies between element widths.
type Numeric interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// DataType represents runtime type information for untyped views.
type DataType int

// Supported data types. Invalid tags an owner whose element type is not
// fixed-layout; such owners cannot back a raw view.
const (
	Invalid DataType = iota
	Float32
	Float64
	Int32
	Int64
	Uint8
	Bool
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Uint8, Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	default:
		return "invalid"
	}
}

// dataTypeOf infers the DataType tag for a generic element type T.
func dataTypeOf[T Elem]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case bool:
		return Bool
	default:
		return Invalid
	}
}
