package societycal

import (
	"societycal.app/apps/societycal/pkg/icsfeed"
	"societycal.app/apps/societycal/pkg/noticeboard"
	"societycal.app/apps/societycal/pkg/societyapi"
)

// Clients holds the configured event sources. A nil client means the source
// is not configured and is skipped.
type Clients struct {
	API   societyapi.Client
	Feed  icsfeed.Client
	Board noticeboard.Client
}
