package classlint_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/classlint/classlint"
)

var _ = Describe("Configuration", func() {
	var configuration classlint.Config

	BeforeEach(func() {
		configuration = classlint.NewConfig()
	})

	Context("when loading from disk", func() {
		It("should be possible to load configuration from a file", func() {
			json := `{"B101": {"generic": "java.lang.Throwable"}}`
			buffer := bytes.NewBufferString(json)
			nread, err := configuration.ReadFrom(buffer)
			Expect(nread).To(Equal(int64(len(json))))
			Expect(err).ShouldNot(HaveOccurred())
		})

		It("should return an error if the configuration is invalid", func() {
			invalidBuffer := bytes.NewBufferString("}{")
			_, err := configuration.ReadFrom(invalidBuffer)
			Expect(err).Should(HaveOccurred())
		})

		It("should convert the global settings", func() {
			json := `{"global": {"no-fail": "true"}}`
			_, err := configuration.ReadFrom(strings.NewReader(json))
			Expect(err).ShouldNot(HaveOccurred())
			value, err := configuration.GetGlobal(classlint.NoFail)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(value).To(Equal("true"))
		})
	})

	Context("when saving to disk", func() {
		It("should be possible to save an empty configuration to a file", func() {
			expected := `{"global":{}}`
			buffer := bytes.NewBuffer([]byte{})
			nbytes, err := configuration.WriteTo(buffer)
			Expect(int(nbytes)).To(Equal(len(expected)))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(buffer.String()).To(Equal(expected))
		})
	})

	Context("when configuring rules", func() {
		It("should be possible to get configuration for a rule", func() {
			settings := map[string]interface{}{"generic": "java.lang.Throwable"}
			configuration.Set("B101", settings)
			retrieved, err := configuration.Get("B101")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(retrieved).To(Equal(settings))
		})

		It("should return an error for a missing section", func() {
			_, err := configuration.Get("B999")
			Expect(err).Should(HaveOccurred())
		})
	})

	Context("when using global configuration options", func() {
		It("should be possible to set and get global options", func() {
			configuration.SetGlobal(classlint.SortFindings, "true")
			value, err := configuration.GetGlobal(classlint.SortFindings)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(value).To(Equal("true"))
		})

		It("should report enabled global options", func() {
			configuration.SetGlobal(classlint.NoFail, "enabled")
			enabled, err := configuration.IsGlobalEnabled(classlint.NoFail)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(enabled).To(BeTrue())
		})

		It("should return an error for unset global options", func() {
			_, err := configuration.GetGlobal(classlint.AIApiKey)
			Expect(err).Should(HaveOccurred())
		})
	})
})
