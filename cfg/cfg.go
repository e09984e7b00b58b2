// Package cfg builds control flow graphs over jvm method bodies and runs a
// backward liveness analysis on local variable slots.
package cfg

import (
	"fmt"

	"github.com/classlint/classlint/jvm"
)

// StructuralError is returned when a control flow graph or a dataflow result
// cannot be computed for a method. Callers are expected to degrade to less
// precise answers, never to abort a scan.
type StructuralError struct {
	Method string
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural analysis failed for %s: %s", e.Method, e.Reason)
}

// BasicBlock is a maximal straight-line instruction sequence.
type BasicBlock struct {
	ID           int
	Instructions []jvm.Instruction
}

// First returns the block's first instruction, or nil for an empty block.
func (b *BasicBlock) First() *jvm.Instruction {
	if len(b.Instructions) == 0 {
		return nil
	}
	return &b.Instructions[0]
}

// StartPC returns the offset of the first instruction.
func (b *BasicBlock) StartPC() int {
	if len(b.Instructions) == 0 {
		return -1
	}
	return b.Instructions[0].PC
}

// EndPC returns the offset of the last instruction.
func (b *BasicBlock) EndPC() int {
	if len(b.Instructions) == 0 {
		return -1
	}
	return b.Instructions[len(b.Instructions)-1].PC
}

// CFG is the control flow graph of one method body.
type CFG struct {
	blocks []*BasicBlock
	succs  [][]int
}

// Blocks returns the basic blocks in instruction order.
func (g *CFG) Blocks() []*BasicBlock {
	return g.blocks
}

// Successors returns the successor blocks of the given block.
func (g *CFG) Successors(b *BasicBlock) []*BasicBlock {
	if b == nil || b.ID < 0 || b.ID >= len(g.succs) {
		return nil
	}
	out := make([]*BasicBlock, 0, len(g.succs[b.ID]))
	for _, id := range g.succs[b.ID] {
		out = append(out, g.blocks[id])
	}
	return out
}

// BlocksContaining returns every block whose instruction range contains the
// given offset.
func (g *CFG) BlocksContaining(pc int) []*BasicBlock {
	var out []*BasicBlock
	for _, b := range g.blocks {
		if len(b.Instructions) > 0 && b.StartPC() <= pc && pc <= b.EndPC() {
			out = append(out, b)
		}
	}
	return out
}

// Build constructs the control flow graph for a method body. Blocks are
// split at branch targets, exception handler entries and after terminators;
// exception edges run from every block inside a guarded region to its
// handler.
func Build(m *jvm.Method) (*CFG, error) {
	if m == nil || m.Code == nil {
		return nil, &StructuralError{Method: methodName(m), Reason: "method has no code"}
	}
	ins := m.Code.Instructions
	if len(ins) == 0 {
		return &CFG{}, nil
	}

	pcIndex := make(map[int]int, len(ins))
	for i, in := range ins {
		pcIndex[in.PC] = i
	}

	leaders := map[int]bool{ins[0].PC: true}
	for i, in := range ins {
		switch {
		case in.Op.Category() == jvm.CategoryBranch:
			if _, ok := pcIndex[in.Target]; !ok {
				return nil, &StructuralError{Method: methodName(m), Reason: fmt.Sprintf("branch target %d is not an instruction", in.Target)}
			}
			leaders[in.Target] = true
			if i+1 < len(ins) {
				leaders[ins[i+1].PC] = true
			}
		case in.Op.IsTerminator():
			if i+1 < len(ins) {
				leaders[ins[i+1].PC] = true
			}
		}
	}
	for _, h := range m.Code.ExceptionTable {
		if _, ok := pcIndex[h.HandlerPC]; !ok {
			return nil, &StructuralError{Method: methodName(m), Reason: fmt.Sprintf("handler entry %d is not an instruction", h.HandlerPC)}
		}
		leaders[h.HandlerPC] = true
	}

	g := &CFG{}
	blockAt := make(map[int]int) // leader pc -> block id
	var current *BasicBlock
	for _, in := range ins {
		if leaders[in.PC] {
			current = &BasicBlock{ID: len(g.blocks)}
			blockAt[in.PC] = current.ID
			g.blocks = append(g.blocks, current)
		}
		current.Instructions = append(current.Instructions, in)
	}

	g.succs = make([][]int, len(g.blocks))
	addEdge := func(from, to int) {
		for _, s := range g.succs[from] {
			if s == to {
				return
			}
		}
		g.succs[from] = append(g.succs[from], to)
	}

	for id, b := range g.blocks {
		last := b.Instructions[len(b.Instructions)-1]
		if last.Op.Category() == jvm.CategoryBranch {
			addEdge(id, blockAt[last.Target])
		}
		fallsThrough := !last.Op.IsTerminator()
		if fallsThrough && id+1 < len(g.blocks) {
			addEdge(id, id+1)
		}
	}
	for _, h := range m.Code.ExceptionTable {
		handler := blockAt[h.HandlerPC]
		for id, b := range g.blocks {
			if b.StartPC() < h.EndPC && b.EndPC() >= h.StartPC {
				addEdge(id, handler)
			}
		}
	}
	return g, nil
}

func methodName(m *jvm.Method) string {
	if m == nil {
		return "<nil>"
	}
	return m.Name + m.Descriptor
}
