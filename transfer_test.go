package vaod

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDownloadWritesAllFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out") // does not exist yet
	files := []RemoteFile{
		{Name: "viirs_eps_npp_aod_0.100_deg_20230401_nrt.nc"},
		{Name: "viirs_eps_noaa20_aod_0.100_deg_20230401_nrt.nc"},
	}
	fetch := func(ctx context.Context, f RemoteFile, w io.Writer) error {
		_, err := w.Write([]byte("contents of " + f.Name))
		return err
	}

	var out strings.Builder
	n, err := Download(context.Background(), files, dir, fetch, &out, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("completed = %d, want 2", n)
	}
	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(dir, f.Name))
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "contents of "+f.Name {
			t.Errorf("wrong contents for %s", f.Name)
		}
	}
	if !strings.Contains(out.String(), `To stop download prior to completion, press "Ctrl+C"`) {
		t.Error("missing interrupt hint")
	}
	if !strings.Contains(out.String(), "Download complete!") {
		t.Error("missing completion notice")
	}
}

// Cancelling mid-run stops the loop between files: completed files stay on
// disk, later files are never fetched.
func TestDownloadInterrupted(t *testing.T) {
	dir := t.TempDir()
	files := []RemoteFile{
		{Name: "a.nc"}, {Name: "b.nc"}, {Name: "c.nc"},
	}

	ctx, cancel := context.WithCancel(context.Background())
	fetched := 0
	fetch := func(ctx context.Context, f RemoteFile, w io.Writer) error {
		fetched++
		if fetched == 2 {
			cancel()
		}
		_, err := w.Write([]byte("x"))
		return err
	}

	var out strings.Builder
	n, err := Download(ctx, files, dir, fetch, &out, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("completed = %d, want 2", n)
	}
	if fetched != 2 {
		t.Errorf("fetch called %d times, want 2", fetched)
	}
	if _, err := os.Stat(filepath.Join(dir, "b.nc")); err != nil {
		t.Error("completed file b.nc missing after interrupt")
	}
	if _, err := os.Stat(filepath.Join(dir, "c.nc")); !errors.Is(err, os.ErrNotExist) {
		t.Error("c.nc should never have been written")
	}
	if !strings.Contains(out.String(), "Download was interrupted by user.") {
		t.Error("missing interrupted notice")
	}
	if strings.Contains(out.String(), "Download complete!") {
		t.Error("completion notice printed after an interrupt")
	}
}

// A file that fails to fetch is skipped; the rest of the run continues.
func TestDownloadSkipsFailedFile(t *testing.T) {
	dir := t.TempDir()
	files := []RemoteFile{
		{Name: "a.nc"}, {Name: "b.nc"}, {Name: "c.nc"},
	}
	fetch := func(ctx context.Context, f RemoteFile, w io.Writer) error {
		if f.Name == "b.nc" {
			return errors.New("HTTP 500")
		}
		_, err := w.Write([]byte("x"))
		return err
	}

	var out strings.Builder
	n, err := Download(context.Background(), files, dir, fetch, &out, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("completed = %d, want 2", n)
	}
	if _, err := os.Stat(filepath.Join(dir, "c.nc")); err != nil {
		t.Error("c.nc missing; run did not continue past the failure")
	}
}
