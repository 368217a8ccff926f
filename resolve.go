// Candidate enumeration.
//
// For daily and monthly products the remote file names are fully determined
// by the observation parameters, so the resolver enumerates them without
// touching the network. Weekly names cannot be derived and are discovered by
// listing; see ResolveWeekly in probe.go.

package vaod

// A Candidate is one expected remote file, derived from the observation
// parameters before its existence has been checked.
type Candidate struct {
	Satellite Satellite
	PeriodKey string // YYYYMMDD for daily, YYYYMM for monthly
	Name      FileName
}

// RemoteName is the file's base name per the archive naming convention.
func (c Candidate) RemoteName() string {
	return c.Name.Encode()
}

// A Missing descriptor identifies a (satellite, period) combination for
// which no remote file was found.
type Missing struct {
	SatTag    string
	PeriodKey string
}

// Resolve enumerates the candidate files for a parameter set in
// deterministic order: date-ascending, satellite-within-date. Monthly
// parameters yield one candidate per distinct year-month per satellite.
// Weekly parameters have no derivable candidates and return nil.
func Resolve(p ObservationParams) []Candidate {
	switch p.Period {
	case Monthly:
		return resolveMonthly(p)
	case Weekly:
		return nil
	default:
		return resolveDaily(p)
	}
}

func resolveDaily(p ObservationParams) []Candidate {
	var candidates []Candidate
	for _, day := range p.Range.Days() {
		for _, sat := range p.Satellites {
			candidates = append(candidates, Candidate{
				Satellite: sat,
				PeriodKey: day.Format(dayLayout),
				Name: FileName{
					Family:     p.Family,
					Period:     Daily,
					SatTag:     sat.DailyTag,
					Resolution: p.Resolution,
					Day:        day,
				},
			})
		}
	}
	return candidates
}

func resolveMonthly(p ObservationParams) []Candidate {
	var candidates []Candidate
	seen := map[string]bool{}
	for _, day := range p.Range.Days() {
		yearMonth := day.Format("200601")
		if seen[yearMonth] {
			continue
		}
		seen[yearMonth] = true
		for _, sat := range p.Satellites {
			candidates = append(candidates, Candidate{
				Satellite: sat,
				PeriodKey: yearMonth,
				Name: FileName{
					Family:     p.Family,
					Period:     Monthly,
					SatTag:     sat.MonthlyTag,
					Resolution: FixedResolution,
					YearMonth:  yearMonth,
				},
			})
		}
	}
	return candidates
}
