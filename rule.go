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

package classlint

import "github.com/classlint/classlint/issue"

// Rule is an analysis rule dispatched on scan events. Match returns any
// issues discovered for the event; most events yield none, correlating
// rules return their whole batch on MethodExited.
type Rule interface {
	ID() string
	Match(e Event, ctx *Context) ([]*issue.Issue, error)
}

// RuleSet maps event kinds to the rules registered for them.
type RuleSet map[EventKind][]Rule

// NewRuleSet constructs a new RuleSet
func NewRuleSet() RuleSet {
	return make(RuleSet)
}

// Register adds a rule to the set for the given event kinds. A rule
// registered for no kinds is never invoked.
func (r RuleSet) Register(rule Rule, events ...EventKind) {
	for _, e := range events {
		r[e] = append(r[e], rule)
	}
}

// RegisteredFor returns all rules registered for the given event kind.
func (r RuleSet) RegisteredFor(kind EventKind) []Rule {
	if rules, found := r[kind]; found {
		return rules
	}
	return nil
}
