// Package jvm defines the bytecode object model scanned by classlint.
package jvm

import "fmt"

// Opcode is a JVM instruction opcode. The constants below carry the real
// opcode values from the class file format; only the opcodes the analyzer
// cares about are named, everything else can be represented as a raw value.
type Opcode uint8

const (
	Nop        Opcode = 0
	AconstNull Opcode = 1
	Ldc        Opcode = 18

	Iload Opcode = 21
	Aload Opcode = 25

	Istore Opcode = 54
	Astore Opcode = 58

	Pop  Opcode = 87
	Dup  Opcode = 89
	Swap Opcode = 95

	Ifeq      Opcode = 153
	Ifne      Opcode = 154
	Goto      Opcode = 167
	Ifnull    Opcode = 198
	Ifnonnull Opcode = 199

	Ireturn Opcode = 172
	Areturn Opcode = 176
	Return  Opcode = 177

	Getstatic Opcode = 178
	Putstatic Opcode = 179
	Getfield  Opcode = 180
	Putfield  Opcode = 181

	Invokevirtual   Opcode = 182
	Invokespecial   Opcode = 183
	Invokestatic    Opcode = 184
	Invokeinterface Opcode = 185

	New        Opcode = 187
	Athrow     Opcode = 191
	Checkcast  Opcode = 192
	Instanceof Opcode = 193

	Monitorenter Opcode = 194
	Monitorexit  Opcode = 195
)

// Category partitions opcodes into the groups the analyzer dispatches on.
type Category int

const (
	// CategoryOther is any opcode without special handling
	CategoryOther Category = iota
	// CategoryThrow is the athrow instruction
	CategoryThrow
	// CategoryInvoke covers invokevirtual, invokespecial and invokestatic
	CategoryInvoke
	// CategoryStore is a store into a local variable slot
	CategoryStore
	// CategoryLoad is a load from a local variable slot
	CategoryLoad
	// CategoryBranch is a conditional or unconditional jump
	CategoryBranch
	// CategoryReturn is any of the return instructions
	CategoryReturn
)

// Category returns the dispatch group for the opcode. Note that
// invokeinterface is deliberately CategoryOther: interface targets have no
// single resolvable declaration to read a throws clause from.
func (op Opcode) Category() Category {
	switch op {
	case Athrow:
		return CategoryThrow
	case Invokevirtual, Invokespecial, Invokestatic:
		return CategoryInvoke
	case Astore, Istore:
		return CategoryStore
	case Aload, Iload:
		return CategoryLoad
	case Goto, Ifeq, Ifne, Ifnull, Ifnonnull:
		return CategoryBranch
	case Return, Areturn, Ireturn:
		return CategoryReturn
	default:
		return CategoryOther
	}
}

// IsTerminator reports whether control never falls through to the next
// instruction.
func (op Opcode) IsTerminator() bool {
	switch op {
	case Goto, Return, Areturn, Ireturn, Athrow:
		return true
	default:
		return false
	}
}

var opNames = map[Opcode]string{
	Nop:             "nop",
	AconstNull:      "aconst_null",
	Ldc:             "ldc",
	Iload:           "iload",
	Aload:           "aload",
	Istore:          "istore",
	Astore:          "astore",
	Pop:             "pop",
	Dup:             "dup",
	Swap:            "swap",
	Ifeq:            "ifeq",
	Ifne:            "ifne",
	Goto:            "goto",
	Ifnull:          "ifnull",
	Ifnonnull:       "ifnonnull",
	Ireturn:         "ireturn",
	Areturn:         "areturn",
	Return:          "return",
	Getstatic:       "getstatic",
	Putstatic:       "putstatic",
	Getfield:        "getfield",
	Putfield:        "putfield",
	Invokevirtual:   "invokevirtual",
	Invokespecial:   "invokespecial",
	Invokestatic:    "invokestatic",
	Invokeinterface: "invokeinterface",
	New:             "new",
	Athrow:          "athrow",
	Checkcast:       "checkcast",
	Instanceof:      "instanceof",
	Monitorenter:    "monitorenter",
	Monitorexit:     "monitorexit",
}

var opValues = func() map[string]Opcode {
	m := make(map[string]Opcode, len(opNames))
	for op, name := range opNames {
		m[name] = op
	}
	return m
}()

// String returns the instruction mnemonic.
func (op Opcode) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", uint8(op))
}

// OpcodeByName resolves an instruction mnemonic as used in class dumps.
func OpcodeByName(name string) (Opcode, bool) {
	op, ok := opValues[name]
	return op, ok
}
