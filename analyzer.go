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

// Package classlint holds the central scanning logic used by classlint. It
// walks each compiled method body once, feeds exception table and
// instruction events to the registered rules, and collects their findings.
package classlint

import (
	"log"
	"os"

	"github.com/classlint/classlint/cfg"
	"github.com/classlint/classlint/issue"
	"github.com/classlint/classlint/jvm"
)

// CFGProvider supplies control flow graphs for scanned methods.
type CFGProvider interface {
	CFGFor(m *jvm.Method) (*cfg.CFG, error)
}

// LivenessProvider supplies live-variable facts for scanned methods.
type LivenessProvider interface {
	LivenessFor(m *jvm.Method) (*cfg.Liveness, error)
}

// The Context is populated as class bytecode is scanned. It is passed
// through to all rule functions as they are called, and is reset at every
// method boundary.
type Context struct {
	Class      *jvm.Class
	Method     *jvm.Method
	Repository jvm.Repository
	Stack      *jvm.OpcodeStack
	CFGs       CFGProvider
	Liveness   LivenessProvider
	Config     Config
	Logger     *log.Logger
}

// LogError reports an analysis error to the diagnostic sink. Fire and
// forget: it never changes control flow.
func (ctx *Context) LogError(msg string, err error) {
	if ctx.Logger != nil {
		ctx.Logger.Printf("%s: %v", msg, err)
	}
}

// ReportMissingClass reports a failed class lookup to the diagnostic sink.
func (ctx *Context) ReportMissingClass(err error) {
	if ctx.Logger != nil {
		ctx.Logger.Printf("failed to resolve invoked class: %v", err)
	}
}

// Metrics used when reporting information about a scanning run.
type Metrics struct {
	NumClasses      int `json:"classes"`
	NumMethods      int `json:"methods"`
	NumInstructions int `json:"instructions"`
	NumFound        int `json:"found"`
}

// Analyzer object is the main object of classlint. It walks method bodies
// and invokes the correct checking rules on each scan event as required.
type Analyzer struct {
	ruleset RuleSet
	context *Context
	config  Config
	logger  *log.Logger
	issues  []*issue.Issue
	errors  map[string][]Error
	stats   *Metrics
}

// NewAnalyzer builds a new analyzer.
func NewAnalyzer(conf Config, logger *log.Logger) *Analyzer {
	if logger == nil {
		logger = log.New(os.Stderr, "[classlint] ", log.LstdFlags)
	}
	return &Analyzer{
		ruleset: NewRuleSet(),
		context: &Context{
			Stack:  jvm.NewOpcodeStack(),
			Config: conf,
			Logger: logger,
		},
		config: conf,
		logger: logger,
		issues: make([]*issue.Issue, 0, 16),
		errors: make(map[string][]Error),
		stats:  &Metrics{},
	}
}

// LoadRules instantiates all the rules to be used when analyzing classes.
func (c *Analyzer) LoadRules(ruleDefinitions map[string]RuleBuilder) {
	for id, def := range ruleDefinitions {
		r, events := def(id, c.config)
		c.ruleset.Register(r, events...)
	}
}

// RuleBuilder builds a rule for the given id and configuration, and names
// the event kinds the rule wants to observe.
type RuleBuilder func(id string, c Config) (Rule, []EventKind)

// Process scans the given classes, resolving invoked methods through repo.
// Methods without code (abstract, native) are skipped. Scan errors are
// recorded per class and never abort the run.
func (c *Analyzer) Process(repo jvm.Repository, classes ...*jvm.Class) error {
	structural := newStructuralAnalysis()
	c.context.Repository = repo
	c.context.CFGs = structural
	c.context.Liveness = structural

	for _, cls := range classes {
		c.stats.NumClasses++
		for _, m := range cls.Methods {
			if m.Code == nil {
				continue
			}
			c.stats.NumMethods++
			c.scanMethod(cls, m)
		}
	}
	return nil
}

// scanMethod performs the single forward pass over one method body. Handler
// ranges are delivered first so they are captured independent of
// instruction order; findings are buffered and flushed as one batch when
// the scan completes.
func (c *Analyzer) scanMethod(cls *jvm.Class, m *jvm.Method) {
	ctx := c.context
	ctx.Class = cls
	ctx.Method = m
	ctx.Stack.Reset()

	var batch []*issue.Issue
	dispatch := func(e Event) {
		for _, rule := range c.ruleset.RegisteredFor(e.Kind()) {
			found, err := rule.Match(e, ctx)
			if err != nil {
				c.logger.Printf("rule %s failed on %s.%s: %v", rule.ID(), cls.Name, m.Name, err)
				c.errors[cls.Name] = append(c.errors[cls.Name], *NewError(m.Name, err.Error()))
				continue
			}
			batch = append(batch, found...)
		}
	}

	dispatch(&MethodEntered{})
	for _, entry := range m.Code.ExceptionTable {
		dispatch(&HandlerObserved{Entry: entry})
	}
	for _, ins := range m.Code.Instructions {
		dispatch(&InstructionSeen{Instruction: ins})
		ctx.Stack.Observe(ins)
		c.stats.NumInstructions++
	}
	dispatch(&MethodExited{})

	c.issues = append(c.issues, batch...)
	c.stats.NumFound += len(batch)
}

// Report returns the accumulated issues and scan metrics.
func (c *Analyzer) Report() ([]*issue.Issue, *Metrics) {
	return c.issues, c.stats
}

// Errors returns the per-class scan errors, sorted for stable output.
func (c *Analyzer) Errors() map[string][]Error {
	sortErrors(c.errors)
	return c.errors
}

// Reset clears all issues, errors and metrics so the analyzer can be reused.
func (c *Analyzer) Reset() {
	c.context.Class = nil
	c.context.Method = nil
	c.context.Stack.Reset()
	c.issues = make([]*issue.Issue, 0, 16)
	c.errors = make(map[string][]Error)
	c.stats = &Metrics{}
}

// structuralAnalysis memoizes per-method CFG and liveness results,
// including failures, so a method's structural failure is computed and
// logged at most once.
type structuralAnalysis struct {
	graphs map[*jvm.Method]*cfg.CFG
	facts  map[*jvm.Method]*cfg.Liveness
	errs   map[*jvm.Method]error
}

func newStructuralAnalysis() *structuralAnalysis {
	return &structuralAnalysis{
		graphs: make(map[*jvm.Method]*cfg.CFG),
		facts:  make(map[*jvm.Method]*cfg.Liveness),
		errs:   make(map[*jvm.Method]error),
	}
}

// CFGFor implements CFGProvider.
func (s *structuralAnalysis) CFGFor(m *jvm.Method) (*cfg.CFG, error) {
	if err, ok := s.errs[m]; ok {
		return nil, err
	}
	if g, ok := s.graphs[m]; ok {
		return g, nil
	}
	g, err := cfg.Build(m)
	if err != nil {
		s.errs[m] = err
		return nil, err
	}
	s.graphs[m] = g
	return g, nil
}

// LivenessFor implements LivenessProvider.
func (s *structuralAnalysis) LivenessFor(m *jvm.Method) (*cfg.Liveness, error) {
	if lv, ok := s.facts[m]; ok {
		return lv, nil
	}
	g, err := s.CFGFor(m)
	if err != nil {
		return nil, err
	}
	maxLocals := 0
	if m.Code != nil {
		maxLocals = m.Code.MaxLocals
	}
	lv := cfg.LiveVariables(g, maxLocals)
	s.facts[m] = lv
	return lv, nil
}
