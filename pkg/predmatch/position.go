// Package predmatch implements the uniqued predicate DAG used to compile IR
// matchers: Positions name "where" in a tree of operations to look, Questions
// name "what" to ask at a Position, and Answers name the expected reply. It
// is grounded on the predicate-DAG design used to lower pattern matching to
// decision trees (see the companion reference in this module's design notes)
// and is built around an interning table so structural equality reduces to
// pointer equality.
package predmatch

import "fmt"

// PositionKind identifies which of the seven position variants a Position
// node is. The ordering here is the priority ordering used to drive
// matcher-tree construction: earlier kinds are tested first.
type PositionKind int

const (
	OperationPosition PositionKind = iota
	OperandPosition
	OperandGroupPosition
	AttributePosition
	ResultPosition
	ResultGroupPosition
	TypePosition
)

func (k PositionKind) String() string {
	switch k {
	case OperationPosition:
		return "Operation"
	case OperandPosition:
		return "Operand"
	case OperandGroupPosition:
		return "OperandGroup"
	case AttributePosition:
		return "Attribute"
	case ResultPosition:
		return "Result"
	case ResultGroupPosition:
		return "ResultGroup"
	case TypePosition:
		return "Type"
	default:
		return fmt.Sprintf("PositionKind(%d)", int(k))
	}
}

// Direction distinguishes an OperationPosition reached by walking down from
// the operand that defines it (the common case) from one reached by walking
// up to a user of some other position.
type Direction int

const (
	Downward Direction = iota
	Upward
)

// Position is one interned node in the predicate DAG's position tree. It is
// always obtained from a Builder, never constructed directly, so that
// identical (kind, parent, index, name, direction) keys always resolve to
// the same pointer.
type Position struct {
	kind   PositionKind
	parent *Position // nil for the root Operation position
	index  int       // operand/result index within parent, or attribute/type slot
	name   string     // attribute name, for AttributePosition
	dir    Direction  // meaningful only for OperationPosition
	depth  int        // 0 for the root, parent.depth+1 otherwise
}

func (p *Position) Kind() PositionKind { return p.kind }
func (p *Position) Parent() *Position  { return p.parent }
func (p *Position) Index() int         { return p.index }
func (p *Position) Name() string       { return p.name }
func (p *Position) Direction() Direction {
	return p.dir
}
func (p *Position) Depth() int { return p.depth }

// IsRoot reports whether p is the top-level operation position with no
// parent.
func (p *Position) IsRoot() bool { return p.parent == nil && p.kind == OperationPosition }

func (p *Position) String() string {
	switch p.kind {
	case OperationPosition:
		if p.IsRoot() {
			return "op(root)"
		}
		dir := "down"
		if p.dir == Upward {
			dir = "up"
		}
		return fmt.Sprintf("op(%s, %s[%d])", p.parent, dir, p.index)
	case AttributePosition:
		return fmt.Sprintf("attr(%s, %q)", p.parent, p.name)
	case TypePosition:
		return fmt.Sprintf("type(%s)", p.parent)
	default:
		return fmt.Sprintf("%s(%s[%d])", p.kind, p.parent, p.index)
	}
}

// positionKey is the interning key for a Position: two positions compare
// equal iff every field here matches, which is exactly the (kind, payload)
// scheme the uniquer uses.
type positionKey struct {
	kind   PositionKind
	parent *Position
	index  int
	name   string
	dir    Direction
}
