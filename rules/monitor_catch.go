package rules

import (
	"github.com/classlint/classlint"
	"github.com/classlint/classlint/issue"
)

// monitorCatch flags handlers that catch IllegalMonitorStateException.
// That exception signals a broken locking protocol and catching it hides
// the bug instead of fixing the synchronization.
type monitorCatch struct {
	issue.MetaData
	target    string
	handlerPC []int
}

func (r *monitorCatch) ID() string {
	return r.MetaData.ID
}

func (r *monitorCatch) Match(e classlint.Event, ctx *classlint.Context) ([]*issue.Issue, error) {
	switch e := e.(type) {
	case *classlint.MethodEntered:
		r.handlerPC = r.handlerPC[:0]
	case *classlint.HandlerObserved:
		entry := e.Entry
		if entry.IsCatchAll() || entry.StartPC >= entry.EndPC {
			return nil, nil
		}
		if entry.CatchTypeName == r.target {
			r.handlerPC = append(r.handlerPC, entry.HandlerPC)
		}
	case *classlint.MethodExited:
		var issues []*issue.Issue
		for _, pc := range r.handlerPC {
			issues = append(issues, issue.New(
				ctx.Class.Name, ctx.Method.Name, ctx.Method.Descriptor,
				pc, r.ID(), r.What, r.Priority, r.Confidence))
		}
		return issues, nil
	}
	return nil, nil
}

// NewMonitorCatch detects catch clauses for IllegalMonitorStateException.
func NewMonitorCatch(id string, conf classlint.Config) (classlint.Rule, []classlint.EventKind) {
	return &monitorCatch{
		target: "java.lang.IllegalMonitorStateException",
		MetaData: issue.MetaData{
			ID:         id,
			Priority:   issue.PriorityHigh,
			Confidence: issue.High,
			What:       "IllegalMonitorStateException is caught; fix the synchronization instead",
		},
	}, []classlint.EventKind{
		classlint.MethodEnteredKind,
		classlint.HandlerObservedKind,
		classlint.MethodExitedKind,
	}
}
