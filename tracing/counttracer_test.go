package tracing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CountTracer", func() {
	var t *CountTracer

	BeforeEach(func() {
		t = NewCountTracer(nil)
	})

	It("should count dispatches per slot", func() {
		t.StartDispatch(DispatchRecord{ID: "1", Slot: "add"})
		t.StartDispatch(DispatchRecord{ID: "2", Slot: "add"})
		t.StartDispatch(DispatchRecord{ID: "3", Slot: "concat"})

		Expect(t.Count("add")).To(Equal(uint64(2)))
		Expect(t.Count("concat")).To(Equal(uint64(1)))
		Expect(t.TotalCount()).To(Equal(uint64(3)))
	})

	It("should list slot names in first-seen order", func() {
		t.StartDispatch(DispatchRecord{ID: "1", Slot: "add"})
		t.StartDispatch(DispatchRecord{ID: "2", Slot: "concat"})
		t.StartDispatch(DispatchRecord{ID: "3", Slot: "add"})

		Expect(t.SlotNames()).To(Equal([]string{"add", "concat"}))
	})

	It("should respect the filter", func() {
		t = NewCountTracer(func(r DispatchRecord) bool {
			return r.Slot == "add"
		})

		t.StartDispatch(DispatchRecord{ID: "1", Slot: "add"})
		t.StartDispatch(DispatchRecord{ID: "2", Slot: "concat"})

		Expect(t.Count("add")).To(Equal(uint64(1)))
		Expect(t.Count("concat")).To(Equal(uint64(0)))
	})
})

var _ = Describe("TotalTimeTracer", func() {
	var t *TotalTimeTracer

	BeforeEach(func() {
		t = NewTotalTimeTracer(nil)
	})

	It("should sum dispatch durations", func() {
		t.EndDispatch(DispatchRecord{ID: "1", Slot: "add", StartTime: 1, EndTime: 2})
		t.EndDispatch(DispatchRecord{ID: "2", Slot: "add", StartTime: 3, EndTime: 5})

		Expect(t.TotalTime()).To(Equal(3.0))
	})

	It("should respect the filter", func() {
		t = NewTotalTimeTracer(func(r DispatchRecord) bool {
			return r.Slot == "add"
		})

		t.EndDispatch(DispatchRecord{ID: "1", Slot: "add", StartTime: 1, EndTime: 2})
		t.EndDispatch(DispatchRecord{ID: "2", Slot: "concat", StartTime: 3, EndTime: 5})

		Expect(t.TotalTime()).To(Equal(1.0))
	})
})

var _ = Describe("AverageTimeTracer", func() {
	var t *AverageTimeTracer

	BeforeEach(func() {
		t = NewAverageTimeTracer(nil)
	})

	It("should average dispatch durations", func() {
		t.EndDispatch(DispatchRecord{ID: "1", Slot: "add", StartTime: 1, EndTime: 2})
		t.EndDispatch(DispatchRecord{ID: "2", Slot: "add", StartTime: 3, EndTime: 6})

		Expect(t.AverageTime()).To(Equal(2.0))
		Expect(t.TotalCount()).To(Equal(uint64(2)))
	})
})
