package rules_test

import (
	"bytes"
	"fmt"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/classlint/classlint"
	"github.com/classlint/classlint/issue"
	"github.com/classlint/classlint/jvm"
	"github.com/classlint/classlint/rules"
	"github.com/classlint/classlint/testutils"
)

var _ = Describe("classlint rules", func() {
	var (
		logger *log.Logger
		output *bytes.Buffer
		config classlint.Config
		runner func(string, []testutils.ClassSample)
		scan   func(string, *jvm.Class) []*issue.Issue
	)

	BeforeEach(func() {
		logger, output = testutils.NewLogger()
		config = classlint.NewConfig()
		runner = func(rule string, samples []testutils.ClassSample) {
			analyzer := classlint.NewAnalyzer(config, logger)
			analyzer.LoadRules(rules.Generate(rules.NewRuleFilter(false, rule)).Builders())
			for n, sample := range samples {
				analyzer.Reset()
				repo := testutils.NewSampleRepository(sample.Class)
				err := analyzer.Process(repo, sample.Class)
				Expect(err).ShouldNot(HaveOccurred())
				issues, _ := analyzer.Report()
				Expect(issues).To(HaveLen(sample.Errors),
					fmt.Sprintf("sample %d (%s) found: %#v", n, sample.Class.Name, issues))
			}
		}
		scan = func(rule string, cls *jvm.Class) []*issue.Issue {
			analyzer := classlint.NewAnalyzer(config, logger)
			analyzer.LoadRules(rules.Generate(rules.NewRuleFilter(false, rule)).Builders())
			repo := testutils.NewSampleRepository(cls)
			Expect(analyzer.Process(repo, cls)).ShouldNot(HaveOccurred())
			issues, _ := analyzer.Report()
			return issues
		}
	})

	Context("B101 broad exception catch", func() {
		It("should detect the expected findings in all samples", func() {
			runner("B101", testutils.SampleClassesBroadCatch)
		})

		It("should report a wide unmatched catch at base priority", func() {
			issues := scan("B101", testutils.SampleClassWideCatch)
			Expect(issues).To(HaveLen(1))
			found := issues[0]
			Expect(found.RuleID).To(Equal("B101"))
			Expect(found.Class).To(Equal("com.example.WideCatch"))
			Expect(found.Method).To(Equal("run"))
			Expect(found.PC).To(Equal(320))
			Expect(found.Priority).To(Equal(issue.PriorityLow + 1))
			Expect(found.Severity).To(Equal(issue.Low))
			Expect(found.Cwe).ToNot(BeNil())
			Expect(found.Cwe.ID).To(Equal("396"))
		})

		It("should cancel the narrow width penalty against thrown type diversity", func() {
			issues := scan("B101", testutils.SampleClassNarrowCatch)
			Expect(issues).To(HaveLen(1))
			Expect(issues[0].Priority).To(Equal(issue.PriorityLow + 1))
		})

		It("should stay silent when a sibling clause catches RuntimeException", func() {
			issues := scan("B101", testutils.SampleClassRuntimeSibling)
			Expect(issues).To(BeEmpty())
		})

		It("should raise the priority when the caught exception is never read", func() {
			dead := scan("B101", testutils.SampleClassDeadStore)
			Expect(dead).To(HaveLen(1))
			live := scan("B101", testutils.SampleClassLiveStore)
			Expect(live).To(HaveLen(1))
			Expect(dead[0].Priority).To(Equal(live[0].Priority - 1))
		})

		It("should log unresolvable callees and keep scanning", func() {
			issues := scan("B101", testutils.SampleClassMissingCallee)
			Expect(issues).To(HaveLen(1))
			Expect(output.String()).To(ContainSubstring("failed to resolve invoked class"))
			Expect(output.String()).To(ContainSubstring("com.example.Vanished"))
		})

		It("should accept a catch whose exact type is thrown inside the region", func() {
			issues := scan("B101", testutils.SampleClassRethrow)
			Expect(issues).To(BeEmpty())
		})

		It("should ignore wildcard and degenerate table rows", func() {
			Expect(scan("B101", testutils.SampleClassFinally)).To(BeEmpty())
			Expect(scan("B101", testutils.SampleClassDegenerate)).To(BeEmpty())
		})

		It("should report duplicated table rows independently", func() {
			issues := scan("B101", testutils.SampleClassDuplicate)
			Expect(issues).To(HaveLen(2))
			Expect(issues[0].PC).To(Equal(issues[1].PC))
		})

		It("should honor a configured generic exception type", func() {
			config.Set("B101", map[string]interface{}{
				"generic": "java.io.IOException",
				"runtime": "java.lang.RuntimeException",
			})
			issues := scan("B101", testutils.SampleClassWideCatch)
			Expect(issues).To(BeEmpty())
		})
	})

	Context("B102 monitor state catch", func() {
		It("should detect the expected findings in all samples", func() {
			runner("B102", testutils.SampleClassesMonitorCatch)
		})

		It("should flag the handler at high priority", func() {
			issues := scan("B102", testutils.SampleClassMonitorCatch)
			Expect(issues).To(HaveLen(1))
			Expect(issues[0].Priority).To(Equal(issue.PriorityHigh))
			Expect(issues[0].Severity).To(Equal(issue.High))
			Expect(issues[0].PC).To(Equal(30))
		})
	})
})
