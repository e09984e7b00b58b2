// (c) Copyright 2016 Hewlett Packard Enterprise Development LP
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package issue defines the finding model shared by all classlint rules.
package issue

import (
	"encoding/json"
	"fmt"

	"github.com/classlint/classlint/cwe"
)

// Score type used by severity and confidence values
type Score int

const (
	// Low severity or confidence
	Low Score = iota
	// Medium severity or confidence
	Medium
	// High severity or confidence
	High
)

// Finding priorities, lower is more severe. The ladder matches the
// classic bug-rank scale used by JVM bytecode checkers.
const (
	// PriorityHigh most severe findings
	PriorityHigh = 1
	// PriorityNormal findings worth fixing
	PriorityNormal = 2
	// PriorityLow minor findings
	PriorityLow = 3
	// PriorityExperimental findings of uncertain value
	PriorityExperimental = 4
	// PriorityIgnore findings below the reporting threshold
	PriorityIgnore = 5
)

// ruleCWEMap map rule ids to CWEs
var ruleCWEMap = map[string]string{
	"B101": "396",
	"B102": "667",
}

// Issue is returned by a classlint rule if it discovers an issue with the
// scanned bytecode.
type Issue struct {
	Severity   Score         `json:"severity"`          // issue severity (how problematic it is)
	Confidence Score         `json:"confidence"`        // issue confidence (how sure we are we found it)
	Priority   int           `json:"priority"`          // numeric priority, lower is more severe
	Cwe        *cwe.Weakness `json:"cwe"`               // Cwe associated with RuleID
	RuleID     string        `json:"rule_id"`           // Rule identifier (e.g. B101)
	What       string        `json:"details"`           // Human readable explanation
	Class      string        `json:"class"`             // Dotted name of the class the issue was found in
	Method     string        `json:"method"`            // Name of the enclosing method
	Descriptor string        `json:"descriptor"`        // Descriptor of the enclosing method
	PC         int           `json:"pc"`                // Bytecode offset of the issue
	Autofix    string        `json:"autofix,omitempty"` // Proposed auto fix to the issue
}

// Location returns the class, method and bytecode offset of the issue
func (i *Issue) Location() string {
	return fmt.Sprintf("%s.%s:%d", i.Class, i.Method, i.PC)
}

// MetaData is embedded in all classlint rules. The Priority, Confidence and
// What message will be passed through to reported issues.
type MetaData struct {
	ID         string
	Priority   int
	Confidence Score
	What       string
}

// MarshalJSON is used convert a Score object into a JSON representation
func (c Score) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// String converts a Score into a string
func (c Score) String() string {
	switch c {
	case High:
		return "HIGH"
	case Medium:
		return "MEDIUM"
	case Low:
		return "LOW"
	}
	return "UNDEFINED"
}

// SeverityForPriority maps a numeric finding priority onto a Score.
func SeverityForPriority(priority int) Score {
	switch {
	case priority <= PriorityHigh:
		return High
	case priority == PriorityNormal:
		return Medium
	default:
		return Low
	}
}

// GetCweByRule retrieves a cwe weakness for a given RuleID
func GetCweByRule(id string) *cwe.Weakness {
	cweID, ok := ruleCWEMap[id]
	if ok && cweID != "" {
		return cwe.Get(cweID)
	}
	return nil
}

// New creates a new Issue for the given program point
func New(className, methodName, descriptor string, pc int, ruleID, what string, priority int, confidence Score) *Issue {
	return &Issue{
		Class:      className,
		Method:     methodName,
		Descriptor: descriptor,
		PC:         pc,
		RuleID:     ruleID,
		What:       what,
		Priority:   priority,
		Severity:   SeverityForPriority(priority),
		Confidence: confidence,
		Cwe:        GetCweByRule(ruleID),
	}
}
