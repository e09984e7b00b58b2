package jvm

// ExceptionTableEntry is one row of a method's exception table. CatchType is
// the constant pool index of the caught type; index zero is the implicit
// catch-everything entry emitted for finally blocks and synchronized regions.
// The guarded interval is half open: [StartPC, EndPC).
type ExceptionTableEntry struct {
	StartPC       int
	EndPC         int
	HandlerPC     int
	CatchType     int
	CatchTypeName string // dotted name, empty for catch-all entries
}

// IsCatchAll reports whether the entry is the wildcard handler.
func (e ExceptionTableEntry) IsCatchAll() bool {
	return e.CatchType == 0
}

// Code is the body of a method: its instruction stream in strictly
// increasing PC order plus the exception table.
type Code struct {
	MaxLocals      int
	Instructions   []Instruction
	ExceptionTable []ExceptionTableEntry
}

// Method is a single method of a class. Exceptions holds the declared
// throws clause as dotted type names. Code is nil for abstract and native
// methods.
type Method struct {
	Name       string
	Descriptor string
	Exceptions []string
	Code       *Code
}
