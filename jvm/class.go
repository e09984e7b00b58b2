package jvm

// Class is the scanned representation of one compiled class.
type Class struct {
	Name      string // dotted name
	SuperName string // dotted name of the super class, empty for java.lang.Object
	Methods   []*Method
}

// Method returns the first method matching both name and descriptor exactly,
// or nil. Lookup intentionally stops at the first match, mirroring how
// constant pool references resolve.
func (c *Class) Method(name, descriptor string) *Method {
	for _, m := range c.Methods {
		if m.Name == name && m.Descriptor == descriptor {
			return m
		}
	}
	return nil
}
