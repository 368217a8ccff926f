// Existence probing.
//
// Candidates are checked against their archive one at a time, in the order
// the resolver generated them, and partitioned into available files and
// missing descriptors. A probe that fails with a transport error is treated
// the same as a missing file; upstream never distinguished the two cases and
// this keeps that behavior, logging the error so it is at least observable.

package vaod

import (
	"context"
	"io"

	"github.com/rs/zerolog"
)

// An Object is one remote object returned by a listing.
type Object struct {
	Key  string
	Size int64
}

// ObjectStore is the subset of object-store operations the prober and the
// download loop consume. *NODDStore implements it.
type ObjectStore interface {
	Stat(ctx context.Context, key string) (size int64, exists bool, err error)
	List(ctx context.Context, prefix string) ([]Object, error)
	Fetch(ctx context.Context, key string, w io.Writer) error
}

// HTTPArchive is the subset of HTTP archive operations the prober and the
// download loop consume. *StarArchive implements it.
type HTTPArchive interface {
	Exists(url string) bool
	Fetch(url string, w io.Writer) error
}

// A RemoteFile is a confirmed-available remote file ready for transfer.
// Exactly one of URL or Key is set, by product family. Size is zero where
// the archive does not expose it.
type RemoteFile struct {
	Name      string // base file name
	URL       string // operational: full STAR URL
	Key       string // reprocessed: NODD object key
	Size      int64
	SatTag    string
	PeriodKey string
}

// An Availability is the outcome of probing a candidate list.
type Availability struct {
	Available []RemoteFile
	Missing   []Missing
	TotalSize int64 // sum of known sizes, bytes
}

// ProbeOperational checks each candidate against the STAR archive with a
// HEAD request. The archive does not expose sizes this way, so TotalSize
// stays zero.
func ProbeOperational(arch HTTPArchive, root string, candidates []Candidate) Availability {
	var avail Availability
	for _, c := range candidates {
		url := c.Name.StarURL(root)
		if arch.Exists(url) {
			avail.Available = append(avail.Available, RemoteFile{
				Name:      c.RemoteName(),
				URL:       url,
				SatTag:    c.Name.SatTag,
				PeriodKey: c.PeriodKey,
			})
		} else {
			avail.Missing = append(avail.Missing, Missing{SatTag: c.Name.SatTag, PeriodKey: c.PeriodKey})
		}
	}
	return avail
}

// ProbeReprocessed checks each candidate against the NODD object store and
// accumulates the total byte size of the available files.
func ProbeReprocessed(ctx context.Context, store ObjectStore, log zerolog.Logger, candidates []Candidate) Availability {
	var avail Availability
	for _, c := range candidates {
		key := c.Name.NODDKey()
		size, exists, err := store.Stat(ctx, key)
		if err != nil {
			// Conflated with "missing" on purpose.
			log.Debug().Err(err).Str("key", key).Msg("existence probe failed")
		}
		if err == nil && exists {
			avail.Available = append(avail.Available, RemoteFile{
				Name:      c.RemoteName(),
				Key:       key,
				Size:      size,
				SatTag:    c.Name.SatTag,
				PeriodKey: c.PeriodKey,
			})
			avail.TotalSize += size
		} else {
			avail.Missing = append(avail.Missing, Missing{SatTag: c.Name.SatTag, PeriodKey: c.PeriodKey})
		}
	}
	return avail
}

// ResolveWeekly discovers weekly files by listing the year's weekly prefix
// once per (satellite, year) and keeping every file whose embedded date
// range covers a requested day. Both endpoints are inclusive, and a file
// covering several requested days is kept once.
func ResolveWeekly(ctx context.Context, store ObjectStore, log zerolog.Logger, p ObservationParams) Availability {
	var avail Availability
	listings := map[string][]Object{}
	included := map[string]bool{}

	for _, day := range p.Range.Days() {
		for _, sat := range p.Satellites {
			prefix := NODDWeeklyPrefix(sat, day.Year())
			objects, listed := listings[prefix]
			if !listed {
				var err error
				objects, err = store.List(ctx, prefix)
				if err != nil {
					// A failed listing yields no files for the year,
					// matching the probe-failure conflation above.
					log.Debug().Err(err).Str("prefix", prefix).Msg("weekly listing failed")
					objects = nil
				}
				listings[prefix] = objects
			}
			for _, obj := range objects {
				if included[obj.Key] {
					continue
				}
				base := baseName(obj.Key)
				fn, err := ParseFileName(base)
				if err != nil || fn.Period != Weekly {
					continue
				}
				if day.Before(fn.WeekStart) || day.After(fn.WeekEnd) {
					continue
				}
				included[obj.Key] = true
				avail.Available = append(avail.Available, RemoteFile{
					Name:      base,
					Key:       obj.Key,
					Size:      obj.Size,
					SatTag:    fn.SatTag,
					PeriodKey: fn.WeekStart.Format(dayLayout) + "-" + fn.WeekEnd.Format(dayLayout),
				})
				avail.TotalSize += obj.Size
			}
		}
	}
	return avail
}

func baseName(key string) string {
	for i := len(key) - 1; i >= 0; i-- {
		if key[i] == '/' {
			return key[i+1:]
		}
	}
	return key
}
