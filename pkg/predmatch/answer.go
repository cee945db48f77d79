package predmatch

import "fmt"

// AnswerKind identifies which answer variant an Answer node carries.
type AnswerKind int

const (
	TrueAnswer AnswerKind = iota
	FalseAnswer
	AttributeAnswer
	OperationNameAnswer
	TypeAnswer
	UnsignedAnswer
)

func (k AnswerKind) String() string {
	switch k {
	case TrueAnswer:
		return "True"
	case FalseAnswer:
		return "False"
	case AttributeAnswer:
		return "Attribute"
	case OperationNameAnswer:
		return "OperationName"
	case TypeAnswer:
		return "Type"
	case UnsignedAnswer:
		return "Unsigned"
	default:
		return fmt.Sprintf("AnswerKind(%d)", int(k))
	}
}

// Answer is the expected reply to a Question: a singleton for True/False,
// and otherwise a (kind, payload) pair — an attribute literal, an operation
// name, a type literal, or an unsigned integer. The count questions
// (OperandCount and friends) hold their count in the Question itself and
// take a True or False answer.
type Answer struct {
	kind  AnswerKind
	attr  string
	name  string
	typ   string
	value uint64
}

func (a *Answer) Kind() AnswerKind   { return a.kind }
func (a *Answer) Attribute() string  { return a.attr }
func (a *Answer) OperationName() string {
	return a.name
}
func (a *Answer) Type() string      { return a.typ }
func (a *Answer) Unsigned() uint64  { return a.value }

func (a *Answer) String() string {
	switch a.kind {
	case AttributeAnswer:
		return fmt.Sprintf("Attribute(%q)", a.attr)
	case OperationNameAnswer:
		return fmt.Sprintf("OperationName(%q)", a.name)
	case TypeAnswer:
		return fmt.Sprintf("Type(%q)", a.typ)
	case UnsignedAnswer:
		return fmt.Sprintf("Unsigned(%d)", a.value)
	default:
		return a.kind.String()
	}
}

// answerKey is the interning key for an Answer.
type answerKey struct {
	kind  AnswerKind
	attr  string
	name  string
	typ   string
	value uint64
}

// Predicate is a (Question, Answer) pair: the unit the matcher-tree compiler
// branches on. Two predicates are equal iff their Question and Answer are
// the same interned pointers.
type Predicate struct {
	Question *Question
	Answer   *Answer
}

func (p Predicate) String() string {
	return fmt.Sprintf("%s => %s", p.Question, p.Answer)
}
