package get_available_slots

import (
	"time"

	"github.com/logisync/scheduling-service/internal/domain"
	getAvailableSlots "github.com/logisync/scheduling-service/internal/usecase/get_available_slots"
)

// AvailableSlot is one entry of the JSON array returned by the endpoint.
type AvailableSlot struct {
	StartTime string `json:"horarioInicio"`
	EndTime   string `json:"horarioFim"`
	Booked    bool   `json:"agendado"`
}

// FromUseCaseResponse converts the use case response into the HTTP body.
func FromUseCaseResponse(resp *getAvailableSlots.Response) []AvailableSlot {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Booked:    slot.Booked,
		}
	}
	return slots
}

// ToUseCaseRequest builds the use case request from the query parameters.
func ToUseCaseRequest(dateStr, typeStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Date: date,
		Type: domain.BookingType(typeStr),
	}, nil
}
