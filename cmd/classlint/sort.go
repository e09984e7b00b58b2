package main

import (
	"sort"

	"github.com/classlint/classlint/issue"
)

// sortIssues orders the findings by descending severity, then by class name
// and bytecode offset for stable output.
func sortIssues(issues []*issue.Issue) {
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Severity != issues[j].Severity {
			return issues[i].Severity > issues[j].Severity
		}
		if issues[i].Class != issues[j].Class {
			return issues[i].Class < issues[j].Class
		}
		return issues[i].PC < issues[j].PC
	})
}
