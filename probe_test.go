package vaod

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
)

type fakeArchive struct {
	present map[string]bool
}

func (a *fakeArchive) Exists(url string) bool              { return a.present[url] }
func (a *fakeArchive) Fetch(url string, w io.Writer) error { return nil }

type fakeStore struct {
	sizes     map[string]int64 // key -> size; absent keys do not exist
	failStat  map[string]error
	objects   map[string][]Object // prefix -> listing
	failList  map[string]error
	listCalls map[string]int
}

func (s *fakeStore) Stat(ctx context.Context, key string) (int64, bool, error) {
	if err := s.failStat[key]; err != nil {
		return 0, false, err
	}
	size, ok := s.sizes[key]
	return size, ok, nil
}

func (s *fakeStore) List(ctx context.Context, prefix string) ([]Object, error) {
	if s.listCalls == nil {
		s.listCalls = map[string]int{}
	}
	s.listCalls[prefix]++
	if err := s.failList[prefix]; err != nil {
		return nil, err
	}
	return s.objects[prefix], nil
}

func (s *fakeStore) Fetch(ctx context.Context, key string, w io.Writer) error { return nil }

func TestProbeOperationalPartitions(t *testing.T) {
	p := ObservationParams{
		Family:     Operational,
		Period:     Daily,
		Satellites: Satellites,
		Resolution: "0.100",
		Range:      DateRange{Start: day("20230401"), End: day("20230401")},
	}
	candidates := Resolve(p)
	root := "https://example.org/"
	arch := &fakeArchive{present: map[string]bool{
		candidates[0].Name.StarURL(root): true,
	}}

	avail := ProbeOperational(arch, root, candidates)
	if len(avail.Available) != 1 {
		t.Fatalf("available = %d, want 1", len(avail.Available))
	}
	if avail.Available[0].Name != "viirs_eps_npp_aod_0.100_deg_20230401_nrt.nc" {
		t.Errorf("available name = %q", avail.Available[0].Name)
	}
	if avail.Available[0].URL == "" || avail.Available[0].Key != "" {
		t.Error("operational files must carry a URL, not a key")
	}
	if len(avail.Missing) != 1 {
		t.Fatalf("missing = %d, want 1", len(avail.Missing))
	}
	if avail.Missing[0].SatTag != "noaa20" || avail.Missing[0].PeriodKey != "20230401" {
		t.Errorf("missing descriptor = %+v", avail.Missing[0])
	}
}

func TestProbeReprocessedSizesAndErrors(t *testing.T) {
	p := ObservationParams{
		Family:     Reprocessed,
		Period:     Daily,
		Satellites: []Satellite{SatSNPP},
		Resolution: "0.250",
		Range:      DateRange{Start: day("20190701"), End: day("20190703")},
	}
	candidates := Resolve(p)
	if len(candidates) != 3 {
		t.Fatalf("candidates = %d, want 3", len(candidates))
	}

	store := &fakeStore{
		sizes: map[string]int64{
			candidates[0].Name.NODDKey(): 4_000_000,
			candidates[1].Name.NODDKey(): 6_000_000,
		},
		// A transport failure is reported as missing, not as an error.
		failStat: map[string]error{
			candidates[2].Name.NODDKey(): errors.New("dial tcp: timeout"),
		},
	}

	avail := ProbeReprocessed(context.Background(), store, zerolog.Nop(), candidates)
	if len(avail.Available) != 2 {
		t.Fatalf("available = %d, want 2", len(avail.Available))
	}
	if avail.TotalSize != 10_000_000 {
		t.Errorf("total size = %d, want 10000000", avail.TotalSize)
	}
	if len(avail.Missing) != 1 || avail.Missing[0].PeriodKey != "20190703" {
		t.Errorf("missing = %+v, want only 20190703", avail.Missing)
	}
	for _, f := range avail.Available {
		if f.Key == "" || f.URL != "" {
			t.Error("reprocessed files must carry a key, not a URL")
		}
	}
}

func TestResolveWeekly(t *testing.T) {
	prefix := NODDWeeklyPrefix(SatSNPP, 2018)
	store := &fakeStore{
		objects: map[string][]Object{
			prefix: {
				{Key: prefix + "viirs_eps_npp_aod_0.250_deg_weekly_20180701-20180707.nc", Size: 100},
				{Key: prefix + "viirs_eps_npp_aod_0.250_deg_weekly_20180708-20180714.nc", Size: 200},
				{Key: prefix + "viirs_eps_npp_aod_0.250_deg_weekly_20180715-20180721.nc", Size: 300},
				{Key: prefix + "unrelated_readme.txt", Size: 1},
			},
		},
	}

	// The range ends exactly on a file's last covered day; that file is
	// still included.
	p := ObservationParams{
		Family:     Reprocessed,
		Period:     Weekly,
		Satellites: []Satellite{SatSNPP},
		Resolution: FixedResolution,
		Range:      DateRange{Start: day("20180705"), End: day("20180714")},
	}
	avail := ResolveWeekly(context.Background(), store, zerolog.Nop(), p)
	if len(avail.Available) != 2 {
		t.Fatalf("available = %d, want 2", len(avail.Available))
	}
	want := []string{
		"viirs_eps_npp_aod_0.250_deg_weekly_20180701-20180707.nc",
		"viirs_eps_npp_aod_0.250_deg_weekly_20180708-20180714.nc",
	}
	for i, f := range avail.Available {
		if f.Name != want[i] {
			t.Errorf("available %d = %q, want %q", i, f.Name, want[i])
		}
	}
	if avail.TotalSize != 300 {
		t.Errorf("total size = %d, want 300", avail.TotalSize)
	}
	if store.listCalls[prefix] != 1 {
		t.Errorf("prefix listed %d times, want 1", store.listCalls[prefix])
	}
}

func TestResolveWeeklyListFailureYieldsNoFiles(t *testing.T) {
	prefix := NODDWeeklyPrefix(SatSNPP, 2018)
	store := &fakeStore{
		failList: map[string]error{prefix: errors.New("connection reset")},
	}
	p := ObservationParams{
		Family:     Reprocessed,
		Period:     Weekly,
		Satellites: []Satellite{SatSNPP},
		Resolution: FixedResolution,
		Range:      DateRange{Start: day("20180708"), End: day("20180714")},
	}
	avail := ResolveWeekly(context.Background(), store, zerolog.Nop(), p)
	if len(avail.Available) != 0 {
		t.Errorf("available = %d, want 0", len(avail.Available))
	}
	// The failed listing is cached; the store is not hammered per day.
	if store.listCalls[prefix] != 1 {
		t.Errorf("prefix listed %d times, want 1", store.listCalls[prefix])
	}
}
