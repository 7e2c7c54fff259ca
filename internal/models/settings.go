package models

type ShopSettings struct {
	ShopName        string `json:"shop_name"`
	ShopPhone       string `json:"shop_phone"`
	ShopAddress     string `json:"shop_address"`
	ShopDescription string `json:"shop_description"`

	OpeningTime     string `json:"opening_time"` // HH:MM
	ClosingTime     string `json:"closing_time"` // HH:MM
	SlotDuration    int    `json:"slot_duration"`
	MaxAppointments int    `json:"max_appointments"`

	Timezone string `json:"timezone"`
}

type NotificationSettings struct {
	Email     bool `json:"email"`
	SMS       bool `json:"sms"`
	Reminders bool `json:"reminders"`
}
