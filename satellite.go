// Satellite platforms carrying the VIIRS instrument.

package vaod

// A Satellite describes one VIIRS-carrying platform and the various names
// the upstream archives use for it. The archive naming conventions are not
// uniform: the same platform is tagged "npp" in daily file names but "snpp"
// in monthly ones. That is a quirk of the archive, not of this package.
type Satellite struct {
	DisplayName string // human-readable name used in plot titles
	DailyTag    string // tag embedded in daily file names
	MonthlyTag  string // tag embedded in monthly file names
	StarPath    string // path segment under the STAR archive root
	NODDName    string // directory name within the NODD bucket
}

var (
	SatSNPP = Satellite{
		DisplayName: "S-NPP",
		DailyTag:    "npp",
		MonthlyTag:  "snpp",
		StarPath:    "snpp",
		NODDName:    "SNPP",
	}
	SatNOAA20 = Satellite{
		DisplayName: "NOAA-20",
		DailyTag:    "noaa20",
		MonthlyTag:  "noaa20",
		StarPath:    "noaa20",
		NODDName:    "NOAA20",
	}
)

// Satellites lists all supported platforms in the order candidates are
// generated for a "both" selection.
var Satellites = []Satellite{SatSNPP, SatNOAA20}

// SatelliteByTag looks a platform up by any of its file-name tags.
func SatelliteByTag(tag string) (Satellite, bool) {
	for _, sat := range Satellites {
		if tag == sat.DailyTag || tag == sat.MonthlyTag {
			return sat, true
		}
	}
	return Satellite{}, false
}

// SelectSatellites maps a validated console answer to the platforms it
// names. The operational prompt accepts "NOAA-20" while the reprocessed one
// accepts "NOAA20"; both spellings are handled here.
func SelectSatellites(choice string) []Satellite {
	switch choice {
	case "SNPP":
		return []Satellite{SatSNPP}
	case "NOAA-20", "NOAA20":
		return []Satellite{SatNOAA20}
	case "both":
		return Satellites
	}
	return nil
}
