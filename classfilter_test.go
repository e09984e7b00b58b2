package classlint_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/classlint/classlint"
)

var _ = Describe("ClassFilter", func() {
	var filter classlint.ClassFilter

	BeforeEach(func() {
		filter = classlint.ClassFilter{}
	})

	It("should match nothing when empty", func() {
		Expect(filter.Matches("com.example.Widget")).To(BeFalse())
	})

	It("should match exact class names", func() {
		Expect(filter.Set("com.example.Widget")).ShouldNot(HaveOccurred())
		Expect(filter.Matches("com.example.Widget")).To(BeTrue())
		Expect(filter.Matches("com.example.Gadget")).To(BeFalse())
	})

	It("should match glob patterns", func() {
		Expect(filter.Set("com.example.*Test")).ShouldNot(HaveOccurred())
		Expect(filter.Matches("com.example.WidgetTest")).To(BeTrue())
		Expect(filter.Matches("com.example.Widget")).To(BeFalse())
	})

	It("should render the pattern list", func() {
		Expect(filter.Set("a.B")).ShouldNot(HaveOccurred())
		Expect(filter.Set("c.D")).ShouldNot(HaveOccurred())
		Expect(filter.String()).To(Equal("a.B, c.D"))
	})
})
