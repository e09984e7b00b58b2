package jvm

import "fmt"

// Instruction is a single decoded bytecode instruction. Operand fields are
// populated according to the opcode: invokes carry ClassName/Name/Descriptor,
// new and checkcast carry TypeName, loads and stores carry VarIndex, branches
// carry Target. Class and type names are in dotted form.
type Instruction struct {
	PC int
	Op Opcode

	ClassName  string // declaring class of an invoke or field access
	Name       string // member name of an invoke or field access
	Descriptor string // member descriptor of an invoke or field access
	TypeName   string // type operand of new, checkcast, instanceof
	VarIndex   int    // local variable slot of a load or store
	Target     int    // branch target PC
}

func (i Instruction) String() string {
	switch i.Op.Category() {
	case CategoryInvoke:
		return fmt.Sprintf("%d: %s %s.%s%s", i.PC, i.Op, i.ClassName, i.Name, i.Descriptor)
	case CategoryLoad, CategoryStore:
		return fmt.Sprintf("%d: %s %d", i.PC, i.Op, i.VarIndex)
	case CategoryBranch:
		return fmt.Sprintf("%d: %s %d", i.PC, i.Op, i.Target)
	default:
		if i.TypeName != "" {
			return fmt.Sprintf("%d: %s %s", i.PC, i.Op, i.TypeName)
		}
		return fmt.Sprintf("%d: %s", i.PC, i.Op)
	}
}
