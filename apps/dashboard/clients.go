package dashboard

import (
	"dashboard.xdoubleu.com/apps/dashboard/pkg/garmin"
	"dashboard.xdoubleu.com/apps/dashboard/pkg/gcal"
	"dashboard.xdoubleu.com/apps/dashboard/pkg/openweather"
	"dashboard.xdoubleu.com/apps/dashboard/pkg/openwebui"
)

// Clients holds the vendor clients. A nil client marks its source as not
// configured.
type Clients struct {
	Calendar gcal.Client
	Weather  openweather.Client
	Garmin   garmin.Client
	AI       openwebui.Client
}
