package domain

// FieldType is the primitive type tag of a resource field. The set is closed:
// nested, array and object types are not representable.
type FieldType string

const (
	FieldTypeString    FieldType = "string"
	FieldTypeNumber    FieldType = "number"
	FieldTypeBoolean   FieldType = "boolean"
	FieldTypeNull      FieldType = "null"
	FieldTypeUndefined FieldType = "undefined"
)

// FieldTypes lists every valid FieldType in declaration order.
var FieldTypes = []FieldType{
	FieldTypeString,
	FieldTypeNumber,
	FieldTypeBoolean,
	FieldTypeNull,
	FieldTypeUndefined,
}

func (t FieldType) String() string { return string(t) }

func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeString, FieldTypeNumber, FieldTypeBoolean, FieldTypeNull, FieldTypeUndefined:
		return true
	}
	return false
}

// SortOrder is the direction of a record listing.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) String() string { return string(o) }
