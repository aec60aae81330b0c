package hotel

type ModifierType string

const (
	ModifierPercentage ModifierType = "percentage"
	ModifierAbsolute   ModifierType = "absolute"
)

func (t ModifierType) String() string {
	return string(t)
}

func (t ModifierType) IsValid() bool {
	switch t {
	case ModifierPercentage, ModifierAbsolute:
		return true
	default:
		return false
	}
}
