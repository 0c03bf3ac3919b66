package logging

import "matchbook/internal/common"

// EventKind tags which field set of a TaggedEvent is valid. Modeled on
// the teacher's wire MessageType/Message pattern (internal/net/messages.go
// in the reference tree), reincarnated here as an in-process union instead
// of a wire format.
type EventKind uint8

const (
	KindSubmission EventKind = iota
	KindTrade
	KindCancel
	KindFilled
)

// TaggedEvent is a flat value type carrying any one of the four domain
// events across the async-event writer's queue. Because it is a plain
// struct rather than an interface, enqueueing one never allocates for
// the union itself — only Order/Trade's own string and time.Time fields
// carry pre-existing heap references. This is the "no per-event
// allocation" strategy called out in spec.md §4.5, modeled directly on
// ejyy-femto_go's OutputEvent (events_ring.go / message_bus.go).
type TaggedEvent struct {
	Kind          EventKind
	Order         common.Order // valid for KindSubmission, KindFilled
	Trade         common.Trade // valid for KindTrade
	CancelID      string       // valid for KindCancel
	CancelSuccess bool         // valid for KindCancel
}

func (e TaggedEvent) format() string {
	switch e.Kind {
	case KindSubmission:
		return formatSubmission(e.Order)
	case KindTrade:
		return formatTrade(e.Trade)
	case KindCancel:
		return formatCancel(e.CancelID, e.CancelSuccess)
	case KindFilled:
		return formatFilled(e.Order)
	default:
		return ""
	}
}
