package models

import "fmt"

type ShipmentStatus string

const (
	StatusCreated        ShipmentStatus = "CREATED"
	StatusBooked         ShipmentStatus = "BOOKED"
	StatusInTransit      ShipmentStatus = "IN_TRANSIT"
	StatusAtPort         ShipmentStatus = "AT_PORT"
	StatusCustomsHold    ShipmentStatus = "CUSTOMS_HOLD"
	StatusCustomsCleared ShipmentStatus = "CUSTOMS_CLEARED"
	StatusOutForDelivery ShipmentStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      ShipmentStatus = "DELIVERED"
	StatusCancelled      ShipmentStatus = "CANCELLED"
	StatusException      ShipmentStatus = "EXCEPTION"
)

// statusRank defines forward progress along the normal lifecycle.
// CANCELLED and EXCEPTION are side branches, not part of the ordering.
var statusRank = map[ShipmentStatus]int{
	StatusCreated:        1,
	StatusBooked:         2,
	StatusInTransit:      3,
	StatusAtPort:         4,
	StatusCustomsHold:    5,
	StatusCustomsCleared: 6,
	StatusOutForDelivery: 7,
	StatusDelivered:      8,
}

func (s ShipmentStatus) Valid() bool {
	switch s {
	case StatusCreated, StatusBooked, StatusInTransit, StatusAtPort,
		StatusCustomsHold, StatusCustomsCleared, StatusOutForDelivery,
		StatusDelivered, StatusCancelled, StatusException:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are accepted.
func (s ShipmentStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ApplyHint decides whether a status hint moves a shipment forward.
// Hints are applied only when they represent forward progress along the
// rank ordering; CANCELLED and EXCEPTION are absorbing from any
// non-terminal state. Out-of-order hints are ignored so a late replayed
// event can never regress status.
func ApplyHint(current, hint ShipmentStatus) (ShipmentStatus, bool) {
	if current.IsTerminal() {
		return current, false
	}
	switch hint {
	case StatusCancelled, StatusException:
		return hint, true
	}
	curRank, ok := statusRank[current]
	if !ok {
		// Current status is EXCEPTION: any ranked hint resumes the lifecycle.
		if current == StatusException {
			if _, ranked := statusRank[hint]; ranked {
				return hint, true
			}
		}
		return current, false
	}
	hintRank, ok := statusRank[hint]
	if !ok || hintRank <= curRank {
		return current, false
	}
	return hint, true
}

type LegStatus string

const (
	LegPending   LegStatus = "PENDING"
	LegDeparted  LegStatus = "DEPARTED"
	LegArrived   LegStatus = "ARRIVED"
	LegDelayed   LegStatus = "DELAYED"
	LegCancelled LegStatus = "CANCELLED"
)

func (s LegStatus) Valid() bool {
	switch s {
	case LegPending, LegDeparted, LegArrived, LegDelayed, LegCancelled:
		return true
	}
	return false
}

type ContainerType string

const (
	ContainerDry     ContainerType = "DRY"
	ContainerReefer  ContainerType = "REEFER"
	ContainerOpenTop ContainerType = "OPEN_TOP"
	ContainerTank    ContainerType = "TANK"
)

func (t ContainerType) Valid() bool {
	switch t {
	case ContainerDry, ContainerReefer, ContainerOpenTop, ContainerTank:
		return true
	}
	return false
}

// ErrInvalidEnum is returned when a closed-vocabulary value is outside
// its enumeration. Rejected at the boundary, never stored.
type ErrInvalidEnum struct {
	Field string
	Value string
}

func (e *ErrInvalidEnum) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}
