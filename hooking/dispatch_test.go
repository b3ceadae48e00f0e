package hooking

import (
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	gm "github.com/onsi/gomega"
	"github.com/onsi/gomega/gmeasure"
)

var _ = Describe("Dispatch", func() {
	var (
		originCalls atomic.Int64
		slot        *Slot
	)

	BeforeEach(func() {
		originCalls.Store(0)
		slot = newSlot("add", TagFor[addArgs, int64](), func(args any) any {
			originCalls.Add(1)
			a := args.(addArgs)
			return a.left + a.right
		})
	})

	It("should call the origin directly with no hooks", func() {
		res, err := slot.Dispatch(addArgs{left: 1, right: 2})

		gm.Expect(err).ToNot(gm.HaveOccurred())
		gm.Expect(res).To(gm.Equal(int64(3)))
		gm.Expect(originCalls.Load()).To(gm.Equal(int64(1)))
	})

	It("should let a hook transform arguments and result", func() {
		hook := NewFuncHook(func(args addArgs, next func(addArgs) int64) int64 {
			shifted := addArgs{left: args.left + 1, right: args.right + 1}
			return next(shifted) + 1
		})
		slot.AddHook(hook)

		res, err := slot.Dispatch(addArgs{left: 1, right: 2})

		gm.Expect(err).ToNot(gm.HaveOccurred())
		gm.Expect(res).To(gm.Equal(int64(6)))
	})

	It("should let a hook short-circuit without reaching the origin", func() {
		hook := NewFuncHook(func(args addArgs, next func(addArgs) int64) int64 {
			return 42
		})
		slot.AddHook(hook)

		res, err := slot.Dispatch(addArgs{left: 1, right: 2})

		gm.Expect(err).ToNot(gm.HaveOccurred())
		gm.Expect(res).To(gm.Equal(int64(42)))
		gm.Expect(originCalls.Load()).To(gm.Equal(int64(0)))
	})

	It("should let a hook invoke the continuation multiple times", func() {
		hook := NewFuncHook(func(args addArgs, next func(addArgs) int64) int64 {
			return next(args) + next(args)
		})
		slot.AddHook(hook)

		res, err := slot.Dispatch(addArgs{left: 1, right: 2})

		gm.Expect(err).ToNot(gm.HaveOccurred())
		gm.Expect(res).To(gm.Equal(int64(6)))
		gm.Expect(originCalls.Load()).To(gm.Equal(int64(2)))
	})

	It("should restore origin behavior after add and remove", func() {
		hook := NewFuncHook(func(args addArgs, next func(addArgs) int64) int64 {
			return next(args) + 100
		})
		token, _ := slot.AddHook(hook)
		gm.Expect(slot.RemoveHook(token)).To(gm.Succeed())

		res, err := slot.Dispatch(addArgs{left: 1, right: 2})

		gm.Expect(err).ToNot(gm.HaveOccurred())
		gm.Expect(res).To(gm.Equal(int64(3)))
	})

	It("should convert a hook panic into an error", func() {
		hook := NewFuncHook(func(args addArgs, next func(addArgs) int64) int64 {
			panic("hook exploded")
		})
		slot.AddHook(hook)

		res, err := slot.Dispatch(addArgs{left: 1, right: 2})

		gm.Expect(err).To(gm.MatchError(ErrHookPanicked))
		gm.Expect(err.Error()).To(gm.ContainSubstring("hook exploded"))
		gm.Expect(res).To(gm.BeNil())
	})

	It("should keep dispatching after a hook panicked", func() {
		panicky := NewFuncHook(func(args addArgs, next func(addArgs) int64) int64 {
			panic("hook exploded")
		})
		token, _ := slot.AddHook(panicky)

		_, err := slot.Dispatch(addArgs{left: 1, right: 2})
		gm.Expect(err).To(gm.MatchError(ErrHookPanicked))

		gm.Expect(slot.RemoveHook(token)).To(gm.Succeed())

		res, err := slot.Dispatch(addArgs{left: 1, right: 2})
		gm.Expect(err).ToNot(gm.HaveOccurred())
		gm.Expect(res).To(gm.Equal(int64(3)))
	})

	It("should expose the slot through the envelope", func() {
		var seen *Slot
		hook := NewFuncHook(func(args addArgs, next func(addArgs) int64) int64 {
			return next(args)
		})
		probe := probeHook{tag: slot.Tag(), onCall: func(env Envelope) {
			seen = env.Slot
		}}
		slot.AddHook(hook)
		slot.AddHook(probe)

		slot.Dispatch(addArgs{left: 1, right: 2})

		gm.Expect(seen).To(gm.BeIdenticalTo(slot))
	})

	It("should measure the unhooked fast path", Serial, func() {
		experiment := gmeasure.NewExperiment("fast path dispatch")
		AddReportEntry(experiment.Name, experiment)

		experiment.Sample(func(idx int) {
			experiment.MeasureDuration("dispatch, no hooks", func() {
				for i := 0; i < 10000; i++ {
					slot.Dispatch(addArgs{left: 1, right: 2})
				}
			})
		}, gmeasure.SamplingConfig{N: 10})
	})
})

// probeHook observes envelopes without touching the call.
type probeHook struct {
	tag    TypeTag
	onCall func(env Envelope)
}

func (h probeHook) Tag() TypeTag {
	return h.tag
}

func (h probeHook) Call(env Envelope, next Next) any {
	h.onCall(env)
	return next(env.Args)
}
