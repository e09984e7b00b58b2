package rules

import (
	"github.com/classlint/classlint"
	"github.com/classlint/classlint/issue"
	"github.com/classlint/classlint/jvm"
)

type caughtException struct {
	name      string
	startPC   int
	endPC     int
	handlerPC int
	seen      bool
	dead      bool
}

type thrownException struct {
	name string
	pc   int
}

// broadCatch flags catch clauses for a very generic exception type when no
// code path inside the guarded region can raise that exact type and no
// sibling clause already covers unchecked failures.
type broadCatch struct {
	issue.MetaData
	genericException string
	runtimeException string

	catches          []caughtException
	throws           []thrownException
	structuralFailed bool
}

func (r *broadCatch) ID() string {
	return r.MetaData.ID
}

func (r *broadCatch) Match(e classlint.Event, ctx *classlint.Context) ([]*issue.Issue, error) {
	switch e := e.(type) {
	case *classlint.MethodEntered:
		r.catches = r.catches[:0]
		r.throws = r.throws[:0]
		r.structuralFailed = false
	case *classlint.HandlerObserved:
		r.onHandler(e.Entry, ctx)
	case *classlint.InstructionSeen:
		r.onInstruction(e.Instruction, ctx)
	case *classlint.MethodExited:
		return r.correlate(ctx), nil
	}
	return nil, nil
}

// onHandler records one handler range. Wildcard entries are not tracked and
// degenerate intervals are skipped outright; real compilers do emit
// equal-boundary ranges.
func (r *broadCatch) onHandler(entry jvm.ExceptionTableEntry, ctx *classlint.Context) {
	if entry.IsCatchAll() {
		return
	}
	if entry.StartPC >= entry.EndPC {
		return
	}
	caught := caughtException{
		name:      entry.CatchTypeName,
		startPC:   entry.StartPC,
		endPC:     entry.EndPC,
		handlerPC: entry.HandlerPC,
	}
	caught.dead = r.storeIsDead(entry.HandlerPC, ctx)
	r.catches = append(r.catches, caught)
}

// storeIsDead checks whether the store that saves the caught exception is
// alive or dead. Compilers emit an astore at the handler entry to save the
// caught value; if the liveness fact right after that store says the slot is
// not live, the handler never reads the exception. Without positive evidence
// the store is assumed live.
func (r *broadCatch) storeIsDead(handlerPC int, ctx *classlint.Context) bool {
	if r.structuralFailed {
		return false
	}
	graph, err := ctx.CFGs.CFGFor(ctx.Method)
	if err != nil {
		r.failStructural(ctx, err)
		return false
	}
	liveness, err := ctx.Liveness.LivenessFor(ctx.Method)
	if err != nil {
		r.failStructural(ctx, err)
		return false
	}
	for _, block := range graph.BlocksContaining(handlerPC) {
		first := block.First()
		if first == nil || first.PC != handlerPC || first.Op != jvm.Astore {
			continue
		}
		fact, ok := liveness.FactAfter(first.PC)
		if !ok {
			continue
		}
		if !fact.Get(first.VarIndex) {
			// The astore storing the exception object is dead.
			return true
		}
	}
	return false
}

// failStructural downgrades liveness to "live" for the rest of the method
// and reports the failure once.
func (r *broadCatch) failStructural(ctx *classlint.Context, err error) {
	ctx.LogError("Error checking for dead exception store", err)
	r.structuralFailed = true
}

func (r *broadCatch) onInstruction(ins jvm.Instruction, ctx *classlint.Context) {
	switch ins.Op.Category() {
	case jvm.CategoryThrow:
		if sig, ok := ctx.Stack.SignatureAt(0); ok {
			r.throws = append(r.throws, thrownException{
				name: jvm.SignatureToDotted(sig),
				pc:   ins.PC,
			})
		}
	case jvm.CategoryInvoke:
		if jvm.IsArrayName(ins.ClassName) {
			return
		}
		cls, err := ctx.Repository.Lookup(ins.ClassName)
		if err != nil {
			ctx.ReportMissingClass(err)
			return
		}
		if m := cls.Method(ins.Name, ins.Descriptor); m != nil {
			for _, name := range m.Exceptions {
				r.throws = append(r.throws, thrownException{name: name, pc: ins.PC})
			}
		}
	}
}

// correlate matches every handler range against the throw sites inside it
// and classifies the unmatched generic catches. Sibling counting rescans the
// whole catch list per candidate; quadratic, but methods have a handful of
// catch clauses at most (an index keyed by (start,end) would remove this).
func (r *broadCatch) correlate(ctx *classlint.Context) []*issue.Issue {
	var issues []*issue.Issue
	for i := range r.catches {
		caught := &r.catches[i]
		thrownSet := make(map[string]bool)
		for _, thrown := range r.throws {
			if thrown.pc >= caught.startPC && thrown.pc < caught.endPC {
				thrownSet[thrown.name] = true
				if thrown.name == caught.name {
					caught.seen = true
				}
			}
		}
		if caught.name != r.genericException || caught.seen {
			continue
		}

		catchClauses := 0
		runtimeCaught := false
		for _, other := range r.catches {
			if other.startPC == caught.startPC && other.endPC == caught.endPC {
				catchClauses++
				if other.name == r.runtimeException {
					runtimeCaught = true
				}
			}
		}
		if runtimeCaught {
			continue
		}

		priority := r.Priority
		width := caught.endPC - caught.startPC
		if width > 300 {
			priority--
		} else if width < 30 {
			priority++
		}
		if catchClauses > 1 {
			priority++
		}
		if len(thrownSet) > 1 {
			priority--
		}
		if caught.dead {
			priority--
		}
		issues = append(issues, issue.New(
			ctx.Class.Name, ctx.Method.Name, ctx.Method.Descriptor,
			caught.handlerPC, r.ID(), r.What, priority, r.Confidence))
	}
	return issues
}

// NewBroadCatch detects handlers that catch a very generic exception type
// that nothing inside the guarded region throws. The caught and sibling type
// names can be overridden through the rule's configuration section.
func NewBroadCatch(id string, conf classlint.Config) (classlint.Rule, []classlint.EventKind) {
	rule := &broadCatch{
		genericException: "java.lang.Exception",
		runtimeException: "java.lang.RuntimeException",
		MetaData: issue.MetaData{
			ID:         id,
			Priority:   issue.PriorityLow + 1,
			Confidence: issue.Medium,
			What:       "Caught exception is overly broad and is never thrown within the guarded region",
		},
	}
	if section, err := conf.Get(id); err == nil {
		if settings, ok := section.(map[string]interface{}); ok {
			if generic, ok := settings["generic"].(string); ok {
				rule.genericException = generic
			}
			if runtime, ok := settings["runtime"].(string); ok {
				rule.runtimeException = runtime
			}
		}
	}
	return rule, []classlint.EventKind{
		classlint.MethodEnteredKind,
		classlint.HandlerObservedKind,
		classlint.InstructionSeenKind,
		classlint.MethodExitedKind,
	}
}
