package get_available_slots

import (
	"time"

	"github.com/logisync/scheduling-service/internal/domain"
	"github.com/logisync/scheduling-service/pkg/types"
)

// Request is the input of the availability computation.
type Request struct {
	Date time.Time          // calendar date, time part ignored
	Type domain.BookingType // carga or descarga
}

// Response is the ordered list of slots for the requested date and type.
type Response struct {
	Date  time.Time
	Type  domain.BookingType
	Slots []Slot
}

// Slot is one bookable interval inside the working window.
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Booked    bool
}
