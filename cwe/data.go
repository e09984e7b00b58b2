package cwe

var data = map[string]*Weakness{
	"396": {
		ID:          "396",
		Description: "Catching overly broad exceptions promotes complex error handling code that is more likely to contain security vulnerabilities.",
		Name:        "Declaration of Catch for Generic Exception",
	},
	"397": {
		ID:          "397",
		Description: "Throwing overly broad exceptions promotes complex error handling code that is more likely to contain security vulnerabilities.",
		Name:        "Declaration of Throws for Generic Exception",
	},
	"563": {
		ID:          "563",
		Description: "The variable's value is assigned but never used, making it a dead store.",
		Name:        "Assignment to Variable without Use",
	},
	"667": {
		ID:          "667",
		Description: "The product does not properly acquire or release a lock on a resource, leading to unexpected resource state changes and behaviors.",
		Name:        "Improper Locking",
	},
	"703": {
		ID:          "703",
		Description: "The software does not properly anticipate or handle exceptional conditions that rarely occur during normal operation of the software.",
		Name:        "Improper Check or Handling of Exceptional Conditions",
	},
}

// Get Retrieves a CWE weakness by it's id
func Get(id string) *Weakness {
	weakness, ok := data[id]
	if ok && weakness != nil {
		return weakness
	}
	return nil
}
