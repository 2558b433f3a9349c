package presence

import (
	"strconv"

	"github.com/Amaspm/driver-management/internal/domain"
)

// Merge joins the driver list with a presence snapshot for display. Pure:
// neither input is modified, identical inputs give identical output. Drivers
// absent from the snapshot are offline with no city.
func Merge(drivers []domain.Driver, snap Snapshot) []domain.DriverPresence {
	out := make([]domain.DriverPresence, 0, len(drivers))
	for _, d := range drivers {
		dp := domain.DriverPresence{Driver: d}
		if entry, ok := snap[strconv.FormatInt(d.IDDriver, 10)]; ok {
			dp.Online = true
			dp.OnlineKota = entry.Kota
		}
		out = append(out, dp)
	}
	return out
}
