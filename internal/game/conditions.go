package game

// CompareOp is a comparison operator used by condition matchers.
type CompareOp string

const (
	OpEq CompareOp = "eq"
	OpNe CompareOp = "ne"
	OpLt CompareOp = "lt"
	OpLe CompareOp = "le"
	OpGt CompareOp = "gt"
	OpGe CompareOp = "ge"
)

// Compare applies the operator to (a, b).
func (op CompareOp) Compare(a, b int32) bool {
	switch op {
	case OpEq:
		return a == b
	case OpNe:
		return a != b
	case OpLt:
		return a < b
	case OpLe:
		return a <= b
	case OpGt:
		return a > b
	case OpGe:
		return a >= b
	}
	return false
}

// MatcherKind selects the shape of a condition matcher.
type MatcherKind string

const (
	// MatchStatValue is satisfied if any unit in Scope has Stat op Value
	// (existential semantics).
	MatchStatValue MatcherKind = "stat_value"
	// MatchUnitCount compares the number of live units in Scope to Value.
	MatchUnitCount MatcherKind = "unit_count"
	// MatchStatStat compares SourceStat of the source unit against
	// TargetStat of any unit in Scope (existential).
	MatchStatStat MatcherKind = "stat_stat"
	// MatchIsPosition checks the source unit's board index within Scope.
	MatchIsPosition MatcherKind = "is_position"
)

// Matcher is one leaf predicate over the board state.
type Matcher struct {
	Kind       MatcherKind `json:"kind"`
	Scope      TargetScope `json:"scope,omitempty"`
	Stat       Stat        `json:"stat,omitempty"`
	Op         CompareOp   `json:"op,omitempty"`
	Value      int32       `json:"value,omitempty"`
	Index      int         `json:"index,omitempty"`
	SourceStat Stat        `json:"source_stat,omitempty"`
	TargetStat Stat        `json:"target_stat,omitempty"`
}

// ConditionKind selects between a single matcher and a disjunction.
type ConditionKind string

const (
	ConditionIs    ConditionKind = "is"
	ConditionAnyOf ConditionKind = "any_of"
)

// Condition gates an ability. ConditionIs wraps a single matcher;
// ConditionAnyOf is a short-circuiting disjunction over Matchers.
type Condition struct {
	Kind     ConditionKind `json:"kind"`
	Matcher  Matcher       `json:"matcher,omitempty"`
	Matchers []Matcher     `json:"matchers,omitempty"`
}
