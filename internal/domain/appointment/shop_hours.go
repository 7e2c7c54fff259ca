package appointment

import (
	"github.com/BruksfildServices01/quickcut/internal/models"
	"github.com/BruksfildServices01/quickcut/internal/timeofday"
)

// ShopHours returns opening and closing as minute-of-day. Unparseable
// settings fall back to 09:00-20:00.
func ShopHours(s models.ShopSettings) (opening, closing int) {
	opening, err := timeofday.Parse(s.OpeningTime)
	if err != nil {
		opening = 9 * 60
	}
	closing, err = timeofday.Parse(s.ClosingTime)
	if err != nil {
		closing = 20 * 60
	}
	return opening, closing
}
