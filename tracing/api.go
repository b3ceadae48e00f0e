package tracing

import (
	"fmt"
	"reflect"

	"github.com/rs/xid"

	"github.com/rick-200/safehook/hooking"
)

// tracePriority places trace hooks outside regular hooks, so that recorded
// times cover the whole chain below them.
const tracePriority = 1 << 20

// CollectTrace attaches a tracer to a hookable slot. The tracer observes
// every dispatch that traverses the slot; arguments and results pass through
// unchanged. The returned token detaches the tracer again.
func CollectTrace(
	slot *hooking.Slot,
	timeTeller TimeTeller,
	tracer Tracer,
) hooking.HookToken {
	for _, hook := range slot.Hooks() {
		th, ok := hook.(*traceHook)
		if ok && th.tracer == tracer {
			panic(fmt.Sprintf("slot %s already has tracer %s",
				slot.Name(), reflect.TypeOf(tracer)))
		}
	}

	h := &traceHook{
		slot:       slot,
		timeTeller: timeTeller,
		tracer:     tracer,
	}

	token, err := slot.AddHookWithPriority(h, tracePriority)
	if err != nil {
		panic(fmt.Sprintf("cannot trace slot %s: %v", slot.Name(), err))
	}

	return token
}

// A traceHook feeds dispatch records to a tracer.
type traceHook struct {
	slot       *hooking.Slot
	timeTeller TimeTeller
	tracer     Tracer
}

// Tag mirrors the traced slot's tag. The hook never touches the arguments,
// so mirroring is safe for any signature.
func (h *traceHook) Tag() hooking.TypeTag {
	return h.slot.Tag()
}

// Call records the dispatch around the rest of the chain.
func (h *traceHook) Call(env hooking.Envelope, next hooking.Next) any {
	r := DispatchRecord{
		ID:        xid.New().String(),
		Slot:      h.slot.Name(),
		StartTime: h.timeTeller.Now(),
	}
	h.tracer.StartDispatch(r)

	result := next(env.Args)

	r.EndTime = h.timeTeller.Now()
	h.tracer.EndDispatch(r)

	return result
}
