package classlint

import (
	"sort"
)

// Error is used when a rule or a lookup fails while scanning a method
type Error struct {
	Method string `json:"method"`
	Err    string `json:"error"`
}

// NewError creates Error object
func NewError(method, err string) *Error {
	return &Error{
		Method: method,
		Err:    err,
	}
}

// sortErrors sorts the scan errors by method name
func sortErrors(allErrors map[string][]Error) {
	for _, errors := range allErrors {
		sort.Slice(errors, func(i, j int) bool {
			if errors[i].Method == errors[j].Method {
				return errors[i].Err <= errors[j].Err
			}
			return errors[i].Method < errors[j].Method
		})
	}
}
