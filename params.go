// Validated observation parameters.

package vaod

import "time"

// AveragingPeriod is the temporal aggregation of a gridded product.
type AveragingPeriod string

const (
	Daily   AveragingPeriod = "daily"
	Weekly  AveragingPeriod = "weekly"
	Monthly AveragingPeriod = "monthly"
)

// ProductFamily distinguishes the two upstream product lines, which differ
// in latency, naming convention and hosting location.
type ProductFamily int

const (
	// Operational files are produced with near-real-time latency and are
	// hosted on the STAR online archive.
	Operational ProductFamily = iota
	// Reprocessed files are regenerated with a consistent algorithm
	// version and are hosted on the NODD object store.
	Reprocessed
)

func (f ProductFamily) String() string {
	if f == Operational {
		return "operational"
	}
	return "reprocessed"
}

// Resolutions offered per product family, in the spelling embedded in file
// names. Weekly and monthly products exist only at 0.250 degrees.
var (
	OperationalResolutions = []string{"0.100", "0.250"}
	ReprocessedResolutions = []string{"0.050", "0.100", "0.250"}
)

// FixedResolution is the only resolution weekly and monthly files come in.
const FixedResolution = "0.250"

// A DateRange is an inclusive span of calendar days. Once constructed by the
// prompt loop it satisfies Start <= End <= today.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Days enumerates every day in the range in ascending order.
func (r DateRange) Days() []time.Time {
	var days []time.Time
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// ObservationParams is the fully validated parameter set a download run
// operates on. It is immutable once built from console input.
type ObservationParams struct {
	Range      DateRange
	Satellites []Satellite
	Period     AveragingPeriod
	Resolution string
	Family     ProductFamily
}
