package jvm

import (
	"encoding/json"
	"fmt"
	"io"
)

// The class dump format is the JSON disassembly classlint consumes instead
// of raw class files. Class and type names may be written in either dotted
// or internal slashed form; the parser normalizes them to dotted.

type classDump struct {
	Name    string       `json:"name"`
	Super   string       `json:"super,omitempty"`
	Methods []methodDump `json:"methods"`
}

type methodDump struct {
	Name       string    `json:"name"`
	Descriptor string    `json:"descriptor"`
	Throws     []string  `json:"throws,omitempty"`
	Code       *codeDump `json:"code,omitempty"`
}

type codeDump struct {
	MaxLocals      int               `json:"max_locals"`
	Instructions   []instructionDump `json:"instructions"`
	ExceptionTable []handlerDump     `json:"exception_table,omitempty"`
}

type instructionDump struct {
	PC         int    `json:"pc"`
	Op         string `json:"op"`
	Owner      string `json:"owner,omitempty"`
	Name       string `json:"name,omitempty"`
	Descriptor string `json:"descriptor,omitempty"`
	Type       string `json:"type,omitempty"`
	Var        int    `json:"var,omitempty"`
	Target     int    `json:"target,omitempty"`
}

type handlerDump struct {
	StartPC       int    `json:"start_pc"`
	EndPC         int    `json:"end_pc"`
	HandlerPC     int    `json:"handler_pc"`
	CatchType     int    `json:"catch_type"`
	CatchTypeName string `json:"catch_type_name,omitempty"`
}

// ParseClass decodes a class dump into the object model.
func ParseClass(r io.Reader) (*Class, error) {
	var dump classDump
	dec := json.NewDecoder(r)
	if err := dec.Decode(&dump); err != nil {
		return nil, fmt.Errorf("decoding class dump: %w", err)
	}
	if dump.Name == "" {
		return nil, fmt.Errorf("class dump has no class name")
	}

	cls := &Class{
		Name:      ToDotted(dump.Name),
		SuperName: ToDotted(dump.Super),
	}
	for _, md := range dump.Methods {
		m, err := parseMethod(cls.Name, md)
		if err != nil {
			return nil, err
		}
		cls.Methods = append(cls.Methods, m)
	}
	return cls, nil
}

func parseMethod(className string, md methodDump) (*Method, error) {
	m := &Method{
		Name:       md.Name,
		Descriptor: md.Descriptor,
	}
	for _, t := range md.Throws {
		m.Exceptions = append(m.Exceptions, ToDotted(t))
	}
	if md.Code == nil {
		return m, nil
	}

	code := &Code{MaxLocals: md.Code.MaxLocals}
	lastPC := -1
	for _, id := range md.Code.Instructions {
		op, ok := OpcodeByName(id.Op)
		if !ok {
			return nil, fmt.Errorf("%s.%s: unknown opcode %q at pc %d", className, md.Name, id.Op, id.PC)
		}
		if id.PC <= lastPC {
			return nil, fmt.Errorf("%s.%s: instruction offsets not strictly increasing at pc %d", className, md.Name, id.PC)
		}
		lastPC = id.PC
		code.Instructions = append(code.Instructions, Instruction{
			PC:         id.PC,
			Op:         op,
			ClassName:  ToDotted(id.Owner),
			Name:       id.Name,
			Descriptor: id.Descriptor,
			TypeName:   ToDotted(id.Type),
			VarIndex:   id.Var,
			Target:     id.Target,
		})
	}
	for _, hd := range md.Code.ExceptionTable {
		code.ExceptionTable = append(code.ExceptionTable, ExceptionTableEntry{
			StartPC:       hd.StartPC,
			EndPC:         hd.EndPC,
			HandlerPC:     hd.HandlerPC,
			CatchType:     hd.CatchType,
			CatchTypeName: ToDotted(hd.CatchTypeName),
		})
	}
	m.Code = code
	return m, nil
}
