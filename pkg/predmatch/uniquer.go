package predmatch

import (
	"fmt"
	"strings"
)

// Uniquer owns every Position, Question, and Answer node ever interned
// through it. It is the predicate DAG's arena: nodes live exactly as long
// as the Uniquer does, there is no reference counting or freeing, matching
// the owning-value semantics the rest of this module uses elsewhere (see
// pkg/presburger, where Sets and FACs are deep-copied rather than shared).
//
// A Uniquer is not safe for concurrent use; interning is expected to happen
// from a single thread building one matcher. Callers who need to share a
// DAG across goroutines must add their own synchronization.
type Uniquer struct {
	positions map[positionKey]*Position
	questions map[questionKey]*Question
	answers   map[answerKey]*Answer
}

// NewUniquer returns an empty interning table.
func NewUniquer() *Uniquer {
	return &Uniquer{
		positions: make(map[positionKey]*Position),
		questions: make(map[questionKey]*Question),
		answers:   make(map[answerKey]*Answer),
	}
}

func (u *Uniquer) internPosition(key positionKey) *Position {
	if existing, ok := u.positions[key]; ok {
		return existing
	}
	depth := 0
	if key.parent != nil {
		depth = key.parent.depth + 1
	}
	p := &Position{
		kind:   key.kind,
		parent: key.parent,
		index:  key.index,
		name:   key.name,
		dir:    key.dir,
		depth:  depth,
	}
	u.positions[key] = p
	return p
}

func (u *Uniquer) internQuestion(key questionKey, constraintPos []*Position) *Question {
	if existing, ok := u.questions[key]; ok {
		return existing
	}
	q := &Question{
		kind:             key.kind,
		pos:              key.pos,
		count:            key.count,
		otherPos:         key.otherPos,
		constraintName:   key.constraintName,
		constraintParams: key.constraintParams,
		constraintPos:    constraintPos,
	}
	u.questions[key] = q
	return q
}

func (u *Uniquer) internAnswer(key answerKey) *Answer {
	if existing, ok := u.answers[key]; ok {
		return existing
	}
	a := &Answer{
		kind:  key.kind,
		attr:  key.attr,
		name:  key.name,
		typ:   key.typ,
		value: key.value,
	}
	u.answers[key] = a
	return a
}

// NumPositions, NumQuestions, and NumAnswers report how many distinct nodes
// of each kind have been interned so far, useful for tests and diagnostics.
func (u *Uniquer) NumPositions() int { return len(u.positions) }
func (u *Uniquer) NumQuestions() int { return len(u.questions) }
func (u *Uniquer) NumAnswers() int   { return len(u.answers) }

func positionsKey(positions []*Position) string {
	var sb strings.Builder
	for i, p := range positions {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%p", p)
	}
	return sb.String()
}
