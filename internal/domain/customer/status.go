package customer

// Status values. Status is always derived from the appointment count; a
// stored "inactive" is kept only until the next write.
const (
	StatusNew      = "new"
	StatusActive   = "active"
	StatusVIP      = "vip"
	StatusInactive = "inactive"

	VIPThreshold = 10
	// FirstID is the identifier given to the first customer of an empty collection.
	FirstID uint = 1001
)

func DeriveStatus(appointments int) string {
	switch {
	case appointments >= VIPThreshold:
		return StatusVIP
	case appointments > 0:
		return StatusActive
	default:
		return StatusNew
	}
}
