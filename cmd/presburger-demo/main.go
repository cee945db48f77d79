// Command presburger-demo runs two seed scenarios from the Presburger set
// engine's test suite end to end (scenario 1, printing the difference set's
// textual dump, and scenario 4, printing the equality result), and
// additionally builds a small predicate DAG to show the companion matcher
// core wired up alongside it.
package main

import (
	"fmt"
	"os"

	"github.com/gitrdm/gopresburger/pkg/predmatch"
	"github.com/gitrdm/gopresburger/pkg/presburger"
)

func boundedRange(lo, hi int64) *presburger.FAC {
	f := presburger.NewFAC(1, 0)
	f.AddBound([]int64{1}, -lo)
	f.AddBound([]int64{-1}, hi)
	return f
}

func runScenario1() error {
	a := presburger.NewSetFromFAC(boundedRange(0, 10))
	b := presburger.NewSetFromFAC(boundedRange(3, 5))
	stats := presburger.NewSubtractionStats()
	diff, err := a.Subtract(b, stats)
	if err != nil {
		return err
	}
	fmt.Println("scenario 1: [0,10] \\ [3,5]")
	fmt.Println(diff)
	snap := stats.Snapshot()
	fmt.Printf("recursion nodes=%d disjuncts=%d\n\n", snap.RecursionNodes, snap.DisjunctsEmitted)
	return nil
}

func runScenario4() error {
	a := presburger.NewSetFromFAC(boundedRange(0, 4))
	b := presburger.Union(
		presburger.NewSetFromFAC(boundedRange(0, 2)),
		presburger.NewSetFromFAC(boundedRange(3, 4)),
	)
	eq, err := a.IsEqual(b)
	if err != nil {
		return err
	}
	fmt.Println("scenario 4: [0,4] vs [0,2] U [3,4]")
	fmt.Printf("isEqual = %v\n\n", eq)
	return nil
}

func runPredicateDAG() {
	b := predmatch.NewBuilder()
	root := b.GetRoot()
	lhs := b.GetOperand(root, 0)
	rhs := b.GetOperand(root, 1)

	predicates := []predmatch.Predicate{
		b.IsNotNull(root),
		b.OperationNameEquals(root, "arith.addi"),
		b.Predicate(b.GetOperandCount(root, 2), b.GetTrueAnswer()),
		b.Predicate(b.GetEqualTo(lhs, rhs), b.GetTrueAnswer()),
	}

	fmt.Println("predicate DAG for `arith.addi %x, %x`:")
	for _, p := range predicates {
		fmt.Println(" ", p)
	}
	fmt.Printf("interned nodes: %d positions, %d questions, %d answers\n",
		b.Uniquer().NumPositions(), b.Uniquer().NumQuestions(), b.Uniquer().NumAnswers())
}

func main() {
	if err := runScenario1(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := runScenario4(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	runPredicateDAG()
}
