package appointment

type AvailabilityInput struct {
	BarberID  uint
	ServiceID uint
	Date      string
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}
