package models

type EventKind string

const (
	EventCreated        EventKind = "CREATED"
	EventBooked         EventKind = "BOOKED"
	EventDepartedPort   EventKind = "DEPARTED_PORT"
	EventArrivedPort    EventKind = "ARRIVED_PORT"
	EventDischarged     EventKind = "DISCHARGED"
	EventGateIn         EventKind = "GATE_IN"
	EventGateOut        EventKind = "GATE_OUT"
	EventCustomsHold    EventKind = "CUSTOMS_HOLD"
	EventCustomsRelease EventKind = "CUSTOMS_RELEASE"
	EventHandoff        EventKind = "HANDOFF"
	EventOutForDelivery EventKind = "OUT_FOR_DELIVERY"
	EventDelivered      EventKind = "DELIVERED"
	EventDelay          EventKind = "DELAY"
	EventETAUpdate      EventKind = "ETA_UPDATE"
	EventExceptionNote  EventKind = "EXCEPTION_NOTE"
)

func (k EventKind) Valid() bool {
	switch k {
	case EventCreated, EventBooked, EventDepartedPort, EventArrivedPort,
		EventDischarged, EventGateIn, EventGateOut, EventCustomsHold,
		EventCustomsRelease, EventHandoff, EventOutForDelivery,
		EventDelivered, EventDelay, EventETAUpdate, EventExceptionNote:
		return true
	}
	return false
}
