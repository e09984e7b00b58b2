package classlint_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/classlint/classlint"
	"github.com/classlint/classlint/issue"
	"github.com/classlint/classlint/rules"
	"github.com/classlint/classlint/testutils"
)

// stubRule emits one fixed finding per method, or fails when told to.
type stubRule struct {
	id   string
	fail bool
}

func (r *stubRule) ID() string { return r.id }

func (r *stubRule) Match(e classlint.Event, ctx *classlint.Context) ([]*issue.Issue, error) {
	if r.fail {
		return nil, errors.New("stub rule failure")
	}
	return []*issue.Issue{
		issue.New(ctx.Class.Name, ctx.Method.Name, ctx.Method.Descriptor, 0,
			r.id, "stub finding", issue.PriorityLow, issue.Low),
	}, nil
}

func stubBuilder(fail bool) classlint.RuleBuilder {
	return func(id string, c classlint.Config) (classlint.Rule, []classlint.EventKind) {
		return &stubRule{id: id, fail: fail}, []classlint.EventKind{classlint.MethodExitedKind}
	}
}

var _ = Describe("Analyzer", func() {
	var analyzer *classlint.Analyzer

	BeforeEach(func() {
		logger, _ := testutils.NewLogger()
		analyzer = classlint.NewAnalyzer(classlint.NewConfig(), logger)
	})

	Context("when processing classes", func() {
		It("should count classes, methods and instructions", func() {
			analyzer.LoadRules(rules.Generate().Builders())
			cls := testutils.SampleClassWideCatch
			repo := testutils.NewSampleRepository(cls)
			Expect(analyzer.Process(repo, cls)).ShouldNot(HaveOccurred())

			_, metrics := analyzer.Report()
			Expect(metrics.NumClasses).To(Equal(1))
			Expect(metrics.NumMethods).To(Equal(1))
			Expect(metrics.NumInstructions).To(Equal(len(cls.Methods[0].Code.Instructions)))
			Expect(metrics.NumFound).To(Equal(1))
		})

		It("should skip methods without code", func() {
			analyzer.LoadRules(map[string]classlint.RuleBuilder{"X100": stubBuilder(false)})
			cls := testutils.LibraryClasses()[0]
			Expect(analyzer.Process(testutils.NewSampleRepository(), cls)).ShouldNot(HaveOccurred())

			issues, metrics := analyzer.Report()
			Expect(issues).To(BeEmpty())
			Expect(metrics.NumClasses).To(Equal(1))
			Expect(metrics.NumMethods).To(Equal(0))
		})

		It("should report nothing when no rules are loaded", func() {
			cls := testutils.SampleClassWideCatch
			Expect(analyzer.Process(testutils.NewSampleRepository(cls), cls)).ShouldNot(HaveOccurred())

			issues, _ := analyzer.Report()
			Expect(issues).To(BeEmpty())
		})

		It("should accumulate issues across calls until reset", func() {
			analyzer.LoadRules(map[string]classlint.RuleBuilder{"X100": stubBuilder(false)})
			cls := testutils.SampleClassWideCatch
			repo := testutils.NewSampleRepository(cls)
			Expect(analyzer.Process(repo, cls)).ShouldNot(HaveOccurred())
			Expect(analyzer.Process(repo, cls)).ShouldNot(HaveOccurred())

			issues, _ := analyzer.Report()
			Expect(issues).To(HaveLen(2))

			analyzer.Reset()
			issues, metrics := analyzer.Report()
			Expect(issues).To(BeEmpty())
			Expect(metrics.NumClasses).To(Equal(0))
		})
	})

	Context("when a rule fails", func() {
		It("should record the error and keep scanning", func() {
			analyzer.LoadRules(map[string]classlint.RuleBuilder{
				"X100": stubBuilder(true),
				"X200": stubBuilder(false),
			})
			cls := testutils.SampleClassWideCatch
			Expect(analyzer.Process(testutils.NewSampleRepository(cls), cls)).ShouldNot(HaveOccurred())

			issues, _ := analyzer.Report()
			Expect(issues).To(HaveLen(1))
			Expect(issues[0].RuleID).To(Equal("X200"))

			scanErrors := analyzer.Errors()
			Expect(scanErrors).To(HaveKey("com.example.WideCatch"))
			Expect(scanErrors["com.example.WideCatch"][0].Err).To(ContainSubstring("stub rule failure"))
		})
	})
})
