package casemap

import "fmt"

// Direction selects which of the two case mappings a builder generates.
type Direction int

const (
	ToLower Direction = iota
	ToUpper
)

func ParseDirection(s string) (Direction, error) {
	switch s {
	case "lower":
		return ToLower, nil
	case "upper":
		return ToUpper, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func (d Direction) String() string {
	switch d {
	case ToLower:
		return "lower"
	case ToUpper:
		return "upper"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}
