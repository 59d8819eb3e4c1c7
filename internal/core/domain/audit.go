package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type AuditEvent string

const (
	EventCreated  AuditEvent = "CREATED"
	EventRented   AuditEvent = "RENTED"
	EventReturned AuditEvent = "RETURNED"
)

// AuditTimeLayout is the timestamp layout used inside audit lines.
const AuditTimeLayout = "2006-01-02T15:04:05.000000"

// AuditRecord is one entry of the append-only audit trail.
type AuditRecord struct {
	ID        uuid.UUID  `json:"id"`
	Event     AuditEvent `json:"event"`
	BikeID    string     `json:"bike_id"`
	BikeType  BikeType   `json:"bike_type,omitempty"`
	Catalog   string     `json:"catalog,omitempty"`
	FirstName string     `json:"first_name,omitempty"`
	LastName  string     `json:"last_name,omitempty"`
	At        time.Time  `json:"at"`
}

func NewCreationRecord(bike *Bike, catalog *Catalog, at time.Time) AuditRecord {
	return AuditRecord{
		ID:       uuid.New(),
		Event:    EventCreated,
		BikeID:   bike.ID,
		BikeType: bike.Type,
		Catalog:  catalog.String(),
		At:       at,
	}
}

func NewRentalRecord(bike *Bike, firstName, lastName string, at time.Time) AuditRecord {
	return newCustomerRecord(EventRented, bike, firstName, lastName, at)
}

func NewReturnRecord(bike *Bike, firstName, lastName string, at time.Time) AuditRecord {
	return newCustomerRecord(EventReturned, bike, firstName, lastName, at)
}

func newCustomerRecord(event AuditEvent, bike *Bike, firstName, lastName string, at time.Time) AuditRecord {
	return AuditRecord{
		ID:        uuid.New(),
		Event:     event,
		BikeID:    bike.ID,
		BikeType:  bike.Type,
		FirstName: firstName,
		LastName:  lastName,
		At:        at,
	}
}

// Line renders the record as a single human-readable line, without a trailing newline.
func (r AuditRecord) Line() string {
	ts := r.At.Format(AuditTimeLayout)
	if r.Event == EventCreated {
		return fmt.Sprintf("[%s] %s | Bike=%s | Type=%s | Catalog=%s",
			ts, r.Event, r.BikeID, r.BikeType, r.Catalog)
	}
	return fmt.Sprintf("[%s] %s | Bike=%s | First Name=%s | Last Name=%s",
		ts, r.Event, r.BikeID, r.FirstName, r.LastName)
}
