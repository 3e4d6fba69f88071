package dynwhere

import "strconv"

// Logic is the operator joining a condition to the one before it
type Logic int

const (
	And Logic = iota
	Or
)

func (l Logic) String() string {
	switch l {
	case And:
		return "AND"
	case Or:
		return "OR"
	default:
		return "Logic(" + strconv.Itoa(int(l)) + ")"
	}
}

func (l Logic) valid() bool {
	return l == And || l == Or
}

func (l Logic) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}
