package cwe_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/classlint/classlint/cwe"
)

var _ = Describe("CWE data", func() {
	Context("when consulting cwe data", func() {
		It("it should retrieves the weakness", func() {
			weakness := cwe.Get("396")
			Expect(weakness).ShouldNot(BeNil())
			Expect(weakness.ID).Should(Equal("396"))
			Expect(weakness.Name).ShouldNot(BeEmpty())
			Expect(weakness.Description).ShouldNot(BeEmpty())
		})

		It("it should return nil for an unknown id", func() {
			Expect(cwe.Get("0")).Should(BeNil())
		})
	})
})
