package battle

// ActionKind classifies the action a combatant commits on its turn, for the
// purpose of looking up the speed factor applied at the next gauge reset.
type ActionKind int

const (
	// ActionAttack is a basic attack; the sub-id is the weapon id.
	ActionAttack ActionKind = iota
	// ActionSkill is a skill use; the sub-id is the skill id.
	ActionSkill
	// ActionItem is an item use; the sub-id is the item id.
	ActionItem
	// ActionDefend is guarding for the turn.
	ActionDefend
	// ActionEscapeFail is a failed escape attempt.
	ActionEscapeFail
	// ActionNothing is passing the turn (enemies only).
	ActionNothing
)

// String returns the action kind name used in configuration and logs.
func (k ActionKind) String() string {
	switch k {
	case ActionAttack:
		return "attack"
	case ActionSkill:
		return "skill"
	case ActionItem:
		return "item"
	case ActionDefend:
		return "defend"
	case ActionEscapeFail:
		return "escape_fail"
	case ActionNothing:
		return "nothing"
	default:
		return "unknown"
	}
}

// SpeedFactorTable maps {action kind, sub-id} to the speed factor applied at
// gauge reset. Each kind has its own default; unmapped entries resolve to the
// kind default, and unmapped kinds to 0.
type SpeedFactorTable struct {
	defaults  map[ActionKind]int
	overrides map[ActionKind]map[int]int
}

// NewSpeedFactorTable creates an empty table; every lookup resolves to 0
// until defaults or overrides are set.
func NewSpeedFactorTable() *SpeedFactorTable {
	return &SpeedFactorTable{
		defaults:  make(map[ActionKind]int),
		overrides: make(map[ActionKind]map[int]int),
	}
}

// SetDefault sets the factor used for a kind when no sub-id override matches.
func (t *SpeedFactorTable) SetDefault(kind ActionKind, factor int) {
	t.defaults[kind] = factor
}

// SetOverride sets the factor for one specific sub-id of a kind.
func (t *SpeedFactorTable) SetOverride(kind ActionKind, subID, factor int) {
	m, ok := t.overrides[kind]
	if !ok {
		m = make(map[int]int)
		t.overrides[kind] = m
	}
	m[subID] = factor
}

// Lookup resolves the speed factor for an action. A nil table resolves
// everything to 0.
func (t *SpeedFactorTable) Lookup(kind ActionKind, subID int) int {
	if t == nil {
		return 0
	}
	if m, ok := t.overrides[kind]; ok {
		if f, ok := m[subID]; ok {
			return f
		}
	}
	return t.defaults[kind]
}
