package predmatch

// Builder is the caller-facing factory for Positions, Questions, Answers,
// and Predicates. Every method returns an interned handle from the
// underlying Uniquer, so identical calls (same kind and payload) always
// return the same pointer and predicate equality reduces to pointer
// equality, exactly as spec'd for the companion matcher core.
type Builder struct {
	u *Uniquer
}

// NewBuilder returns a Builder backed by a fresh Uniquer.
func NewBuilder() *Builder {
	return &Builder{u: NewUniquer()}
}

// Uniquer exposes the underlying interning table, e.g. for NumPositions
// diagnostics in tests.
func (b *Builder) Uniquer() *Uniquer { return b.u }

// GetRoot returns the root operation position: the operation the matcher
// starts from, with no parent.
func (b *Builder) GetRoot() *Position {
	return b.u.internPosition(positionKey{kind: OperationPosition})
}

// GetOperandDefiningOp returns the operation position that defines the
// operand at operand, walking downward.
func (b *Builder) GetOperandDefiningOp(operand *Position) *Position {
	return b.u.internPosition(positionKey{kind: OperationPosition, parent: operand, dir: Downward})
}

// GetUsersOp returns an operation position reached by walking upward from
// pos to one of its users, distinguished by the given operand index within
// that user.
func (b *Builder) GetUsersOp(pos *Position, operandIndex int) *Position {
	return b.u.internPosition(positionKey{kind: OperationPosition, parent: pos, index: operandIndex, dir: Upward})
}

// GetAttribute returns the named attribute of op.
func (b *Builder) GetAttribute(op *Position, name string) *Position {
	return b.u.internPosition(positionKey{kind: AttributePosition, parent: op, name: name})
}

// GetOperand returns the operand at index within op.
func (b *Builder) GetOperand(op *Position, index int) *Position {
	return b.u.internPosition(positionKey{kind: OperandPosition, parent: op, index: index})
}

// GetOperandGroup returns the group of operands starting at index within op
// (index -1 conventionally denotes "all operands").
func (b *Builder) GetOperandGroup(op *Position, index int) *Position {
	return b.u.internPosition(positionKey{kind: OperandGroupPosition, parent: op, index: index})
}

// GetAllOperands returns the operand group position covering every operand
// of op.
func (b *Builder) GetAllOperands(op *Position) *Position {
	return b.GetOperandGroup(op, -1)
}

// GetResult returns the result at index within op.
func (b *Builder) GetResult(op *Position, index int) *Position {
	return b.u.internPosition(positionKey{kind: ResultPosition, parent: op, index: index})
}

// GetResultGroup returns the group of results starting at index within op.
func (b *Builder) GetResultGroup(op *Position, index int) *Position {
	return b.u.internPosition(positionKey{kind: ResultGroupPosition, parent: op, index: index})
}

// GetAllResults returns the result group position covering every result of
// op.
func (b *Builder) GetAllResults(op *Position) *Position {
	return b.GetResultGroup(op, -1)
}

// GetType returns the type position of pos (an operand, result, or
// attribute position).
func (b *Builder) GetType(pos *Position) *Position {
	return b.u.internPosition(positionKey{kind: TypePosition, parent: pos})
}

// --- Questions ---

// GetIsNotNull asks whether pos refers to a live value at all; it must be
// answered True before any other question at pos is meaningful.
func (b *Builder) GetIsNotNull(pos *Position) *Question {
	return b.u.internQuestion(questionKey{kind: IsNotNullQuestion, pos: pos}, nil)
}

// GetOperationName asks for the operation name at pos.
func (b *Builder) GetOperationName(pos *Position) *Question {
	return b.u.internQuestion(questionKey{kind: OperationNameQuestion, pos: pos}, nil)
}

// GetTypeConstraint asks for the type at pos.
func (b *Builder) GetTypeConstraint(pos *Position) *Question {
	return b.u.internQuestion(questionKey{kind: TypeQuestion, pos: pos}, nil)
}

// GetAttributeConstraint asks for the attribute value at pos.
func (b *Builder) GetAttributeConstraint(pos *Position) *Question {
	return b.u.internQuestion(questionKey{kind: AttributeQuestion, pos: pos}, nil)
}

// GetOperandCount asks whether pos has exactly count operands.
func (b *Builder) GetOperandCount(pos *Position, count int) *Question {
	return b.u.internQuestion(questionKey{kind: OperandCountQuestion, pos: pos, count: count}, nil)
}

// GetOperandCountAtLeast asks whether pos has at least count operands.
func (b *Builder) GetOperandCountAtLeast(pos *Position, count int) *Question {
	return b.u.internQuestion(questionKey{kind: OperandCountAtLeastQuestion, pos: pos, count: count}, nil)
}

// GetResultCount asks whether pos has exactly count results.
func (b *Builder) GetResultCount(pos *Position, count int) *Question {
	return b.u.internQuestion(questionKey{kind: ResultCountQuestion, pos: pos, count: count}, nil)
}

// GetResultCountAtLeast asks whether pos has at least count results.
func (b *Builder) GetResultCountAtLeast(pos *Position, count int) *Question {
	return b.u.internQuestion(questionKey{kind: ResultCountAtLeastQuestion, pos: pos, count: count}, nil)
}

// GetEqualTo asks whether pos and other refer to the same value.
func (b *Builder) GetEqualTo(pos, other *Position) *Question {
	return b.u.internQuestion(questionKey{kind: EqualToQuestion, pos: pos, otherPos: other}, nil)
}

// GetConstraint asks an externally-named constraint (name, params) against
// the given positions, with pos as the question's primary position (the
// first of positions, matching the convention that a Constraint question is
// keyed on its own position plus the full argument list).
func (b *Builder) GetConstraint(name, params string, positions []*Position) *Question {
	var pos *Position
	if len(positions) > 0 {
		pos = positions[0]
	}
	key := questionKey{
		kind:             ConstraintQuestion,
		pos:              pos,
		constraintName:   name,
		constraintParams: params,
		constraintPosKey: positionsKey(positions),
	}
	return b.u.internQuestion(key, positions)
}

// --- Answers ---

// GetTrueAnswer returns the interned True answer.
func (b *Builder) GetTrueAnswer() *Answer {
	return b.u.internAnswer(answerKey{kind: TrueAnswer})
}

// GetFalseAnswer returns the interned False answer.
func (b *Builder) GetFalseAnswer() *Answer {
	return b.u.internAnswer(answerKey{kind: FalseAnswer})
}

// GetAttributeAnswer returns the interned answer carrying attribute literal
// attr.
func (b *Builder) GetAttributeAnswer(attr string) *Answer {
	return b.u.internAnswer(answerKey{kind: AttributeAnswer, attr: attr})
}

// GetOperationNameAnswer returns the interned answer carrying operation
// name name.
func (b *Builder) GetOperationNameAnswer(name string) *Answer {
	return b.u.internAnswer(answerKey{kind: OperationNameAnswer, name: name})
}

// GetTypeAnswer returns the interned answer carrying type literal typ.
func (b *Builder) GetTypeAnswer(typ string) *Answer {
	return b.u.internAnswer(answerKey{kind: TypeAnswer, typ: typ})
}

// GetUnsignedAnswer returns the interned answer carrying the unsigned value
// v.
func (b *Builder) GetUnsignedAnswer(v uint64) *Answer {
	return b.u.internAnswer(answerKey{kind: UnsignedAnswer, value: v})
}

// --- Predicates ---

// Predicate pairs a Question with an Answer into the (Question, Answer)
// unit the matcher-tree compiler branches on.
func (b *Builder) Predicate(q *Question, a *Answer) Predicate {
	return Predicate{Question: q, Answer: a}
}

// IsNotNull builds the (IsNotNull(pos), True) predicate confirming pos
// refers to a live value.
func (b *Builder) IsNotNull(pos *Position) Predicate {
	return b.Predicate(b.GetIsNotNull(pos), b.GetTrueAnswer())
}

// OperationNameEquals builds the (OperationName(pos), name) predicate.
func (b *Builder) OperationNameEquals(pos *Position, name string) Predicate {
	return b.Predicate(b.GetOperationName(pos), b.GetOperationNameAnswer(name))
}
