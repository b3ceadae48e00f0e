package hooking

import (
	"sync"

	. "github.com/onsi/ginkgo/v2"
	gm "github.com/onsi/gomega"
)

var _ = Describe("Concurrent dispatch and mutation", func() {
	var slot *Slot

	BeforeEach(func() {
		slot = newSlot("add", TagFor[addArgs, int64](), addOrigin)
	})

	// Every hook adds 10 to the origin result, so any observed result must
	// be 3 plus 10 times the number of hooks in the chain version that the
	// dispatch captured.
	plusTen := func() Hook {
		return NewFuncHook(func(args addArgs, next func(addArgs) int64) int64 {
			return next(args) + 10
		})
	}

	It("should always observe a result matching some published chain", func() {
		const (
			dispatchers = 4
			mutators    = 3
			dispatches  = 2000
			mutations   = 300
		)

		var wg sync.WaitGroup

		bad := make(chan int64, dispatchers*dispatches)

		for i := 0; i < dispatchers; i++ {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()

				for j := 0; j < dispatches; j++ {
					res, err := slot.Dispatch(addArgs{left: 1, right: 2})
					gm.Expect(err).ToNot(gm.HaveOccurred())

					v := res.(int64)
					if v < 3 || v > 3+10*mutators || (v-3)%10 != 0 {
						bad <- v
					}
				}
			}()
		}

		for i := 0; i < mutators; i++ {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()

				for j := 0; j < mutations; j++ {
					token, err := slot.AddHook(plusTen())
					gm.Expect(err).ToNot(gm.HaveOccurred())
					gm.Expect(slot.RemoveHook(token)).To(gm.Succeed())
				}
			}()
		}

		wg.Wait()
		close(bad)

		gm.Expect(bad).To(gm.BeEmpty())
	})

	It("should serialize mutations without losing hooks", func() {
		const mutators = 8

		var wg sync.WaitGroup

		for i := 0; i < mutators; i++ {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()

				_, err := slot.AddHook(plusTen())
				gm.Expect(err).ToNot(gm.HaveOccurred())
			}()
		}

		wg.Wait()

		gm.Expect(slot.NumHooks()).To(gm.Equal(mutators))

		res, err := slot.Dispatch(addArgs{left: 1, right: 2})
		gm.Expect(err).ToNot(gm.HaveOccurred())
		gm.Expect(res).To(gm.Equal(int64(3 + 10*mutators)))
	})
})
