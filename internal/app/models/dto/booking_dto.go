package dto

import "encoding/json"

// BookingTransitionRequest is the optional body of decline and cancel
type BookingTransitionRequest struct {
	Reason *string `json:"reason" binding:"omitempty,max=1000" example:"Schedule conflict"`
}

// ReasonValue returns the trimmed reason, or nil when none was given
func (r BookingTransitionRequest) ReasonValue() *string {
	if r.Reason == nil {
		return nil
	}
	reason := trimmed(*r.Reason)
	if reason == "" {
		return nil
	}
	return &reason
}

// BookingTransitionResponse relays the booking returned by a booking procedure
type BookingTransitionResponse struct {
	Success bool            `json:"success" example:"true"`
	Booking json.RawMessage `json:"booking" swaggertype:"object"`
}
