package report

import (
	"bytes"
	"encoding/json"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/classlint/classlint"
	"github.com/classlint/classlint/issue"
)

func createReportInfo() *classlint.ReportInfo {
	broadCatch := issue.New(
		"com.example.WideCatch", "run", "()V", 320,
		"B101", "Caught exception is overly broad and is never thrown within the guarded region",
		issue.PriorityLow+1, issue.Medium)
	monitorCatch := issue.New(
		"com.example.MonitorCatcher", "sync", "()V", 30,
		"B102", "IllegalMonitorStateException is caught; fix the synchronization instead",
		issue.PriorityHigh, issue.High)
	errors := map[string][]classlint.Error{
		"com.example.Broken": {*classlint.NewError("run", "instruction offsets must increase")},
	}
	metrics := &classlint.Metrics{NumClasses: 2, NumMethods: 2, NumInstructions: 12, NumFound: 2}
	return classlint.NewReportInfo([]*issue.Issue{broadCatch, monitorCatch}, metrics, errors).
		WithVersion("v1.0.0")
}

var _ = Describe("Formatters", func() {
	var (
		data *classlint.ReportInfo
		buf  *bytes.Buffer
	)

	BeforeEach(func() {
		data = createReportInfo()
		buf = new(bytes.Buffer)
	})

	Context("when generating a json report", func() {
		It("should emit the findings with their rule ids and locations", func() {
			err := CreateReport(buf, "json", false, data)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(buf.String()).To(ContainSubstring(`"rule_id": "B101"`))
			Expect(buf.String()).To(ContainSubstring(`"class": "com.example.WideCatch"`))
			Expect(buf.String()).To(ContainSubstring("https://cwe.mitre.org/data/definitions/396.html"))

			decoded := map[string]interface{}{}
			Expect(json.Unmarshal(buf.Bytes(), &decoded)).ShouldNot(HaveOccurred())
			Expect(decoded).To(HaveKey("Issues"))
			Expect(decoded).To(HaveKey("Scan errors"))
		})
	})

	Context("when generating a yaml report", func() {
		It("should emit findings and statistics", func() {
			err := CreateReport(buf, "yaml", false, data)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(buf.String()).To(ContainSubstring("ruleid: B101"))
			Expect(buf.String()).To(ContainSubstring("com.example.MonitorCatcher"))
			Expect(buf.String()).To(ContainSubstring("numfound: 2"))
		})
	})

	Context("when generating a csv report", func() {
		It("should emit one row per finding", func() {
			err := CreateReport(buf, "csv", false, data)
			Expect(err).ShouldNot(HaveOccurred())
			rows := strings.Split(strings.TrimSpace(buf.String()), "\n")
			Expect(rows).To(HaveLen(2))
			Expect(rows[0]).To(ContainSubstring("com.example.WideCatch,run,320"))
			Expect(rows[0]).To(ContainSubstring("CWE-396"))
			Expect(rows[1]).To(ContainSubstring("CWE-667"))
		})
	})

	Context("when generating a text report", func() {
		It("should contain the findings and the summary", func() {
			err := CreateReport(buf, "text", false, data)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(buf.String()).To(ContainSubstring("com.example.WideCatch.run:320"))
			Expect(buf.String()).To(ContainSubstring("B101 (CWE-396)"))
			Expect(buf.String()).To(ContainSubstring("Summary:"))
			Expect(buf.String()).To(ContainSubstring("Classes      : 2"))
		})

		It("should list the scan errors", func() {
			err := CreateReport(buf, "text", false, data)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(buf.String()).To(ContainSubstring("com.example.Broken.run: instruction offsets must increase"))
		})

		It("should be the fallback format", func() {
			err := CreateReport(buf, "", false, data)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(buf.String()).To(ContainSubstring("Summary:"))
		})
	})

	Context("when generating a sarif report", func() {
		It("should emit a valid 2.1.0 document", func() {
			err := CreateReport(buf, "sarif", false, data)
			Expect(err).ShouldNot(HaveOccurred())

			decoded := map[string]interface{}{}
			Expect(json.Unmarshal(buf.Bytes(), &decoded)).ShouldNot(HaveOccurred())
			Expect(decoded["version"]).To(Equal("2.1.0"))
			Expect(buf.String()).To(ContainSubstring(`"ruleId": "B101"`))
			Expect(buf.String()).To(ContainSubstring("com/example/WideCatch.class"))
			Expect(buf.String()).To(ContainSubstring(`"fullyQualifiedName": "com.example.WideCatch.run()V"`))
			Expect(buf.String()).To(ContainSubstring(`"name": "CWE"`))
		})
	})
})
