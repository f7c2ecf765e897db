package assetbank

// Attribute type ids as defined by Asset Bank. The type governs which
// filter operators apply and whether values come from a closed list.
const (
	TypeSystem             = 0 // system attributes are uneditable
	TypeText               = 1
	TypeTextArea           = 2
	TypeDatepicker         = 3
	TypeDropdown           = 4
	TypeChecklist          = 5
	TypeOptionlist         = 6
	TypeKeywordPicker      = 7
	TypeDatetime           = 8
	TypeHyperlink          = 9
	TypeGroupHeader        = 10
	TypeAutoincrement      = 11
	TypeExternalDictionary = 12
	TypeDataLookupButton   = 13
	TypeTextFieldShort     = 14
	TypeTextAreaShort      = 15
	TypeNumeric            = 16
	TypeSpatialArea        = 17
	TypeFile               = 18
)

// Operator describes one filter operator the UI may offer for an
// attribute type.
type Operator struct {
	Label             string `json:"label"`
	Value             string `json:"value"`
	EditorType        string `json:"editorType"`
	ExpectedValueType string `json:"expectedValueType"`
}

var (
	operatorContains = Operator{
		Label:             "contains...",
		Value:             "match",
		EditorType:        "text",
		ExpectedValueType: "single",
	}
	operatorIs = Operator{
		Label:             "is",
		Value:             "eq",
		EditorType:        "singleChoice",
		ExpectedValueType: "single",
	}
)

// operatorsByType holds the filter operators per filterable attribute
// type.
var operatorsByType = map[int][]Operator{
	TypeText:           {operatorContains},
	TypeTextArea:       {operatorContains},
	TypeDropdown:       {operatorIs},
	TypeChecklist:      {operatorIs},
	TypeOptionlist:     {operatorIs},
	TypeTextFieldShort: {operatorContains},
	TypeTextAreaShort:  {operatorContains},
}

// Filterable reports whether attributes of the given type can be used
// as search filters.
func Filterable(typeID int) bool {
	_, ok := operatorsByType[typeID]
	return ok
}

// Selectable reports whether attributes of the given type draw their
// values from a closed list.
func Selectable(typeID int) bool {
	switch typeID {
	case TypeDropdown, TypeChecklist, TypeOptionlist:
		return true
	default:
		return false
	}
}

// OperatorsFor returns the filter operators for an attribute type, or
// nil when the type is not filterable.
func OperatorsFor(typeID int) []Operator {
	return operatorsByType[typeID]
}
