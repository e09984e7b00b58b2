package cfg

import "github.com/classlint/classlint/jvm"

// Liveness holds the result of the backward live-variables analysis: for
// every instruction, the set of local variable slots that may still be read
// on some path starting immediately after it.
type Liveness struct {
	after map[int]*BitSet // keyed by instruction PC
}

// FactAfter returns the live-slot set immediately after the instruction at
// the given offset. The second result is false when the offset has no
// computed fact.
func (l *Liveness) FactAfter(pc int) (*BitSet, bool) {
	fact, ok := l.after[pc]
	return fact, ok
}

// LiveVariables runs the analysis over a built CFG to a fixpoint. Loads are
// uses, stores are kills; every other instruction leaves the fact unchanged.
func LiveVariables(g *CFG, maxLocals int) *Liveness {
	blocks := g.Blocks()
	liveIn := make([]*BitSet, len(blocks))
	liveOut := make([]*BitSet, len(blocks))
	for i := range blocks {
		liveIn[i] = NewBitSet(maxLocals)
		liveOut[i] = NewBitSet(maxLocals)
	}

	changed := true
	for changed {
		changed = false
		for i := len(blocks) - 1; i >= 0; i-- {
			b := blocks[i]
			out := liveOut[b.ID]
			for _, succ := range g.Successors(b) {
				if out.Or(liveIn[succ.ID]) {
					changed = true
				}
			}
			in := out.Clone()
			for j := len(b.Instructions) - 1; j >= 0; j-- {
				applyTransfer(b.Instructions[j], in)
			}
			if liveIn[b.ID].Or(in) {
				changed = true
			}
		}
	}

	result := &Liveness{after: make(map[int]*BitSet)}
	for _, b := range blocks {
		live := liveOut[b.ID].Clone()
		for j := len(b.Instructions) - 1; j >= 0; j-- {
			in := b.Instructions[j]
			result.after[in.PC] = live.Clone()
			applyTransfer(in, live)
		}
	}
	return result
}

func applyTransfer(in jvm.Instruction, live *BitSet) {
	switch in.Op.Category() {
	case jvm.CategoryStore:
		live.Clear(in.VarIndex)
	case jvm.CategoryLoad:
		live.Set(in.VarIndex)
	}
}
