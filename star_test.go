package vaod

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func newTestArchive(handler http.Handler) (*StarArchive, *httptest.Server) {
	srv := httptest.NewServer(handler)
	arch := NewStarArchive(srv.URL+"/", zerolog.Nop())
	return arch, srv
}

func TestStarArchiveExists(t *testing.T) {
	arch, srv := newTestArchive(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("existence check used %s, want HEAD", r.Method)
		}
		if r.URL.Path == "/present.nc" {
			w.WriteHeader(http.StatusOK)
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if !arch.Exists(srv.URL + "/present.nc") {
		t.Error("Exists(present) = false, want true")
	}
	if arch.Exists(srv.URL + "/absent.nc") {
		t.Error("Exists(absent) = true, want false")
	}
}

func TestStarArchiveExistsTransportError(t *testing.T) {
	arch := NewStarArchive("http://127.0.0.1:0/", zerolog.Nop())
	if arch.Exists("http://127.0.0.1:0/file.nc") {
		t.Error("Exists must report false on a transport error")
	}
}

func TestStarArchiveFetch(t *testing.T) {
	arch, srv := newTestArchive(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/data.nc" {
			w.Write([]byte("netcdf bytes"))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	if err := arch.Fetch(srv.URL+"/data.nc", &buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "netcdf bytes" {
		t.Errorf("fetched %q", buf.String())
	}

	if err := arch.Fetch(srv.URL+"/gone.nc", &buf); err == nil {
		t.Error("Fetch of a 404 must return an error")
	}
}

const indexPage = `<html><body><pre>
<a href="../">Parent Directory</a>
<a href="viirs_eps_npp_aod_0.100_deg_20230401_nrt.nc">viirs_eps_npp_aod_0.100_deg_20230401_nrt.nc</a>
<a href="viirs_eps_npp_aod_0.250_deg_20230401_nrt.nc">viirs_eps_npp_aod_0.250_deg_20230401_nrt.nc</a>
<a href="viirs_eps_npp_aod_0.100_deg_20230331_nrt.nc">viirs_eps_npp_aod_0.100_deg_20230331_nrt.nc</a>
<a href="readme.txt">readme.txt</a>
</pre></body></html>`

func TestStarArchiveList(t *testing.T) {
	arch, srv := newTestArchive(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/snpp/aod/eps/2023/" {
			t.Errorf("index request path = %q", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(indexPage))
	}))
	defer srv.Close()

	names, err := arch.List(SatSNPP, 2023)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"viirs_eps_npp_aod_0.100_deg_20230331_nrt.nc",
		"viirs_eps_npp_aod_0.100_deg_20230401_nrt.nc",
		"viirs_eps_npp_aod_0.250_deg_20230401_nrt.nc",
	}
	if len(names) != len(want) {
		t.Fatalf("got %d names, want %d: %v", len(names), len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
