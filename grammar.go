// The archive file-name grammar.
//
// Remote file names encode product family, satellite, resolution and period.
// The grammar lives in one place and runs in both directions: Encode builds
// a name from parameters for the resolver and the download loop, and
// ParseFileName recovers parameters from a name for the plotter and for
// weekly listing. Keeping both directions together removes the drift the
// original scripts suffered from, where three independent copies of the
// field layout disagreed with each other.
//
// Shapes produced by Encode:
//
//	operational daily    viirs_eps_<tag>_aod_<res>_deg_<YYYYMMDD>_nrt.nc
//	operational monthly  viirs_aod_monthly_<tag>_0.250_<YYYYMM>_nrt.nc
//	reprocessed daily    viirs_eps_<tag>_aod_<res>_deg_<YYYYMMDD>.nc
//	reprocessed monthly  viirs_aod_monthly_<tag>_0.250_deg_<YYYYMM>.nc
//	reprocessed weekly   viirs_eps_<tag>_aod_0.250_deg_weekly_<YYYYMMDD>-<YYYYMMDD>.nc
//
// Note the archive's own quirks, preserved as-is: monthly names tag S-NPP
// "snpp" where daily names use "npp", and only the reprocessed monthly name
// carries a "deg" token.

package vaod

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const dayLayout = "20060102"

// A FileName is the decoded form of a remote gridded-AOD file name. Exactly
// one of Day, YearMonth or WeekStart/WeekEnd is meaningful, selected by
// Period.
type FileName struct {
	Family     ProductFamily
	Period     AveragingPeriod
	SatTag     string // tag exactly as embedded in the name
	Resolution string // "0.050", "0.100" or "0.250"

	Day                time.Time // daily
	YearMonth          string    // monthly, "YYYYMM"
	WeekStart, WeekEnd time.Time // weekly, inclusive
}

// Encode renders the file name for this parameter combination.
func (fn FileName) Encode() string {
	switch fn.Period {
	case Monthly:
		if fn.Family == Operational {
			return "viirs_aod_monthly_" + fn.SatTag + "_" + FixedResolution + "_" + fn.YearMonth + "_nrt.nc"
		}
		return "viirs_aod_monthly_" + fn.SatTag + "_" + FixedResolution + "_deg_" + fn.YearMonth + ".nc"
	case Weekly:
		return "viirs_eps_" + fn.SatTag + "_aod_" + FixedResolution + "_deg_weekly_" +
			fn.WeekStart.Format(dayLayout) + "-" + fn.WeekEnd.Format(dayLayout) + ".nc"
	default:
		name := "viirs_eps_" + fn.SatTag + "_aod_" + fn.Resolution + "_deg_" + fn.Day.Format(dayLayout)
		if fn.Family == Operational {
			name += "_nrt"
		}
		return name + ".nc"
	}
}

var (
	resolutionToken = regexp.MustCompile(`^\d\.\d{3}$`)
	weekRangeToken  = regexp.MustCompile(`^(\d{8})-(\d{8})$`)
	yearMonthToken  = regexp.MustCompile(`^\d{6}$`)
)

// ParseFileName decodes a file base name back into its parameters. It
// accepts every shape Encode produces. Weekly names are decoded by token
// scan rather than fixed field positions, so the variant layouts observed
// in the archive all parse.
func ParseFileName(base string) (FileName, error) {
	stem, found := strings.CutSuffix(base, ".nc")
	if !found {
		return FileName{}, fmt.Errorf("not a netCDF file name: %q", base)
	}

	fn := FileName{Family: Reprocessed}
	if s, nrt := strings.CutSuffix(stem, "_nrt"); nrt {
		fn.Family = Operational
		stem = s
	}

	parts := strings.Split(stem, "_")
	switch {
	case len(parts) > 2 && parts[2] == "monthly":
		return parseMonthly(base, fn, parts)
	case containsToken(parts, "weekly"):
		return parseWeekly(base, fn, parts)
	default:
		return parseDaily(base, fn, parts)
	}
}

func parseDaily(base string, fn FileName, parts []string) (FileName, error) {
	if len(parts) < 7 {
		return FileName{}, fmt.Errorf("malformed daily file name: %q", base)
	}
	fn.Period = Daily
	fn.SatTag = parts[2]
	fn.Resolution = parts[4]
	if !resolutionToken.MatchString(fn.Resolution) {
		return FileName{}, fmt.Errorf("malformed resolution in %q", base)
	}
	day, err := time.Parse(dayLayout, parts[6])
	if err != nil {
		return FileName{}, fmt.Errorf("malformed date in %q: %w", base, err)
	}
	fn.Day = day
	return fn, nil
}

func parseMonthly(base string, fn FileName, parts []string) (FileName, error) {
	if len(parts) < 6 {
		return FileName{}, fmt.Errorf("malformed monthly file name: %q", base)
	}
	fn.Period = Monthly
	fn.SatTag = parts[3]
	fn.Resolution = parts[4]
	for _, part := range parts[5:] {
		if yearMonthToken.MatchString(part) {
			fn.YearMonth = part
			return fn, nil
		}
	}
	return FileName{}, fmt.Errorf("no year-month in %q", base)
}

func parseWeekly(base string, fn FileName, parts []string) (FileName, error) {
	fn.Period = Weekly
	fn.Resolution = FixedResolution
	for _, part := range parts {
		if _, ok := SatelliteByTag(part); ok && fn.SatTag == "" {
			fn.SatTag = part
		}
		if m := weekRangeToken.FindStringSubmatch(part); m != nil {
			start, err := time.Parse(dayLayout, m[1])
			if err != nil {
				return FileName{}, fmt.Errorf("malformed week range in %q: %w", base, err)
			}
			end, err := time.Parse(dayLayout, m[2])
			if err != nil {
				return FileName{}, fmt.Errorf("malformed week range in %q: %w", base, err)
			}
			fn.WeekStart, fn.WeekEnd = start, end
		}
	}
	if fn.SatTag == "" || fn.WeekStart.IsZero() {
		return FileName{}, fmt.Errorf("malformed weekly file name: %q", base)
	}
	return fn, nil
}

func containsToken(parts []string, token string) bool {
	for _, p := range parts {
		if p == token {
			return true
		}
	}
	return false
}

// StarURL builds the full STAR archive URL for an operational file.
// Daily files live under per-satellite, per-year directories; monthly files
// under a flat aod_monthly directory.
func (fn FileName) StarURL(root string) string {
	sat, _ := SatelliteByTag(fn.SatTag)
	if fn.Period == Monthly {
		return root + sat.StarPath + "/aod_monthly/" + fn.Encode()
	}
	return root + sat.StarPath + "/aod/eps/" + fn.Day.Format("2006") + "/" + fn.Encode()
}

// NODDKey builds the object key for a reprocessed file within the NODD
// bucket.
func (fn FileName) NODDKey() string {
	return fn.NODDPrefix() + fn.Encode()
}

// NODDPrefix builds the object key prefix a reprocessed file lives under.
// The weekly prefix is also what the weekly resolver lists.
func (fn FileName) NODDPrefix() string {
	sat, _ := SatelliteByTag(fn.SatTag)
	prefix := sat.NODDName + "/VIIRS/" + sat.NODDName + "_VIIRS_Aerosol_Optical_Depth_Gridded_Reprocessed/"
	switch fn.Period {
	case Monthly:
		prefix += "0.25_Degrees_Monthly/"
	case Weekly:
		prefix += "0.25_Degrees_Weekly/" + fn.WeekStart.Format("2006") + "/"
	default:
		prefix += fn.Resolution[:4] + "_Degrees_Daily/" + fn.Day.Format("2006") + "/"
	}
	return prefix
}

// NODDWeeklyPrefix is the listing prefix for a satellite's weekly files in
// the given year. Weekly file names cannot be derived from a requested date;
// they are discovered by listing this prefix.
func NODDWeeklyPrefix(sat Satellite, year int) string {
	return fmt.Sprintf("%s/VIIRS/%s_VIIRS_Aerosol_Optical_Depth_Gridded_Reprocessed/0.25_Degrees_Weekly/%d/",
		sat.NODDName, sat.NODDName, year)
}

// DisplaySatellite maps a file-name tag to the platform name used in plot
// titles.
func DisplaySatellite(tag string) string {
	if sat, ok := SatelliteByTag(tag); ok {
		return sat.DisplayName
	}
	return tag
}

// displayResolution shortens a file-name resolution ("0.250") to the form
// used in titles and output names ("0.25").
func displayResolution(res string) string {
	if len(res) > 4 {
		return res[:4]
	}
	return res
}

// PlotTitle derives the map title from the decoded name.
func (fn FileName) PlotTitle() string {
	var date string
	switch fn.Period {
	case Monthly:
		if t, err := time.Parse("200601", fn.YearMonth); err == nil {
			date = t.Format("January 2006")
		} else {
			date = fn.YearMonth
		}
	case Weekly:
		date = "Week " + fn.WeekStart.Format("0102") + ", " + fn.WeekStart.Format("2006")
	default:
		date = fn.Day.Format("02 Jan 2006")
	}
	return fmt.Sprintf("%s/VIIRS Aerosol Optical Depth (%s° resolution)  %s",
		DisplaySatellite(fn.SatTag), displayResolution(fn.Resolution), date)
}

// PlotSaveName derives the deterministic image file name for this input.
// format is the extension without a dot ("png", "jpg" or "pdf").
func (fn FileName) PlotSaveName(format string) string {
	satName := fn.SatTag
	if satName == "npp" {
		satName = "snpp"
	}
	var date string
	switch fn.Period {
	case Monthly:
		date = fn.YearMonth
	case Weekly:
		date = fn.WeekStart.Format(dayLayout) + "-" + fn.WeekEnd.Format(dayLayout)
	default:
		date = fn.Day.Format(dayLayout)
	}
	return satName + "_viirs_aod_" + displayResolution(fn.Resolution) + "-deg_" +
		string(fn.Period) + "_" + date + "_" + fn.Family.String() + "." + format
}
