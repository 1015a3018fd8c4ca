package timeutil

import (
	"time"
)

const ShopTZ = "Africa/Johannesburg"

var shopLoc = func() *time.Location {
	loc, err := time.LoadLocation(ShopTZ)
	if err != nil {
		return time.FixedZone("SAST", 2*60*60)
	}
	return loc
}()

func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatShop renders t for human-facing messages.
func FormatShop(t time.Time) string {
	return t.In(shopLoc).Format("2006-01-02 15:04:05")
}
