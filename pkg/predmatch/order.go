package predmatch

import "sort"

// PositionPriority returns the matcher-tree construction priority of kind:
// lower values sort first. This is the decreasing-priority ordering named
// in the ordering invariant (Operation, Operand, OperandGroup, Attribute,
// Result, ResultGroup, Type), expressed as the PositionKind iota order
// itself so no separate lookup table can drift out of sync with it.
func PositionPriority(kind PositionKind) int { return int(kind) }

// QuestionPriority returns the dependency-order priority of kind: lower
// values must be asked first at a shared position. IsNotNull always comes
// first (nothing else about a position is meaningful until it is known to
// be non-null), OperationName next, and so on through the remaining kinds
// in QuestionKind's iota order.
func QuestionPriority(kind QuestionKind) int { return int(kind) }

// SortPositions orders positions by decreasing priority (PositionPriority
// ascending), breaking ties by depth then by index, for deterministic
// matcher-tree construction.
func SortPositions(positions []*Position) {
	sort.SliceStable(positions, func(i, j int) bool {
		a, b := positions[i], positions[j]
		if PositionPriority(a.kind) != PositionPriority(b.kind) {
			return PositionPriority(a.kind) < PositionPriority(b.kind)
		}
		if a.depth != b.depth {
			return a.depth < b.depth
		}
		return a.index < b.index
	})
}

// SortQuestions orders questions by dependency (QuestionPriority
// ascending), so that e.g. every IsNotNull question about a position
// precedes every OperationName question about it.
func SortQuestions(questions []*Question) {
	sort.SliceStable(questions, func(i, j int) bool {
		return QuestionPriority(questions[i].kind) < QuestionPriority(questions[j].kind)
	})
}
