package table

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidCapacity = errors.New("table capacity must be positive")

// Status is the cached occupancy flag on a table. It is denormalized state:
// the authoritative answer is whether an active order targets the table, and
// the seat flow heals this flag when the two disagree.
type Status string

const (
	StatusFree     Status = "free"
	StatusReserved Status = "reserved"
	StatusOccupied Status = "occupied"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusFree, StatusReserved, StatusOccupied:
		return true
	default:
		return false
	}
}

type Table struct {
	id       uuid.UUID
	number   int
	zone     string
	capacity int
	status   Status
}

func NewTable(number int, zone string, capacity int) (*Table, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Table{
		id:       uuid.New(),
		number:   number,
		zone:     zone,
		capacity: capacity,
		status:   StatusFree,
	}, nil
}

func ReconstructTable(id uuid.UUID, number int, zone string, capacity int, status Status) *Table {
	return &Table{
		id:       id,
		number:   number,
		zone:     zone,
		capacity: capacity,
		status:   status,
	}
}

func (t *Table) MarkOccupied() {
	t.status = StatusOccupied
}

func (t *Table) MarkFree() {
	t.status = StatusFree
}

func (t *Table) Fits(guests int) bool {
	return guests <= t.capacity
}

func (t *Table) ID() uuid.UUID  { return t.id }
func (t *Table) Number() int    { return t.number }
func (t *Table) Zone() string   { return t.zone }
func (t *Table) Capacity() int  { return t.capacity }
func (t *Table) Status() Status { return t.status }
