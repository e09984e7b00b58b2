package classlint

import "github.com/classlint/classlint/jvm"

// EventKind discriminates the closed set of scan events rules can register
// for.
type EventKind int

const (
	// MethodEnteredKind fires once before a method body is walked
	MethodEnteredKind EventKind = iota
	// HandlerObservedKind fires once per exception table entry
	HandlerObservedKind
	// InstructionSeenKind fires once per instruction in offset order
	InstructionSeenKind
	// MethodExitedKind fires once after the full method body has been walked
	MethodExitedKind
)

// Event is one scan event. The concrete types below are the only
// implementations.
type Event interface {
	Kind() EventKind
}

// MethodEntered marks the start of a method scan. Rules reset their
// per-method state here; the current class and method are on the Context.
type MethodEntered struct{}

// Kind implements Event.
func (*MethodEntered) Kind() EventKind { return MethodEnteredKind }

// HandlerObserved delivers one exception table entry. Entries are delivered
// before the instruction walk, so handler ranges are captured independent of
// instruction order.
type HandlerObserved struct {
	Entry jvm.ExceptionTableEntry
}

// Kind implements Event.
func (*HandlerObserved) Kind() EventKind { return HandlerObservedKind }

// InstructionSeen delivers one instruction. The operand stack on the Context
// still reflects the state just before this instruction executes.
type InstructionSeen struct {
	Instruction jvm.Instruction
}

// Kind implements Event.
func (*InstructionSeen) Kind() EventKind { return InstructionSeenKind }

// MethodExited marks the end of a method scan. Rules that correlate events
// emit their findings here so reporting stays a single batch per method.
type MethodExited struct{}

// Kind implements Event.
func (*MethodExited) Kind() EventKind { return MethodExitedKind }
