package issue_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/classlint/classlint/issue"
)

var _ = Describe("Issue", func() {
	Context("when creating a new issue", func() {
		It("should record the program point it was found at", func() {
			i := issue.New("com.example.Server", "start", "()V", 42, "B101", "broad catch", issue.PriorityLow, issue.Medium)
			Expect(i.Class).Should(Equal("com.example.Server"))
			Expect(i.Method).Should(Equal("start"))
			Expect(i.PC).Should(Equal(42))
			Expect(i.Location()).Should(Equal("com.example.Server.start:42"))
		})

		It("should derive the severity from the priority", func() {
			Expect(issue.New("a.B", "m", "()V", 0, "B101", "w", issue.PriorityHigh, issue.High).Severity).Should(Equal(issue.High))
			Expect(issue.New("a.B", "m", "()V", 0, "B101", "w", issue.PriorityNormal, issue.High).Severity).Should(Equal(issue.Medium))
			Expect(issue.New("a.B", "m", "()V", 0, "B101", "w", issue.PriorityExperimental, issue.High).Severity).Should(Equal(issue.Low))
		})

		It("should resolve the CWE for a known rule", func() {
			i := issue.New("a.B", "m", "()V", 0, "B101", "w", issue.PriorityLow, issue.Medium)
			Expect(i.Cwe).ShouldNot(BeNil())
			Expect(i.Cwe.SprintID()).Should(Equal("CWE-396"))
		})

		It("should leave the CWE empty for an unknown rule", func() {
			Expect(issue.GetCweByRule("X999")).Should(BeNil())
		})

		It("should marshal scores as strings", func() {
			i := issue.New("a.B", "m", "()V", 7, "B102", "w", issue.PriorityHigh, issue.Medium)
			raw, err := json.Marshal(i)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(string(raw)).Should(ContainSubstring(`"severity":"HIGH"`))
			Expect(string(raw)).Should(ContainSubstring(`"confidence":"MEDIUM"`))
		})
	})
})
