// Sequential download of confirmed files.

package vaod

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
)

// A FetchFunc fetches one remote file's bytes into w. The operational and
// reprocessed commands bind this to their archive client, re-deriving the
// remote location from the file name through the grammar.
type FetchFunc func(ctx context.Context, f RemoteFile, w io.Writer) error

// Download fetches each file in order into destDir, named after the remote
// base name. The directory is created if absent. Cancellation is checked
// between iterations: when ctx is done the loop stops, files already written
// stay in place, and an interrupted notice is printed. A file that fails to
// fetch is logged and skipped; nothing is retried.
//
// Returns the number of files written.
func Download(ctx context.Context, files []RemoteFile, destDir string, fetch FetchFunc, out io.Writer, log zerolog.Logger) (int, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return 0, err
	}

	fmt.Fprintln(out, "\nTo stop download prior to completion, press \"Ctrl+C\"")
	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("Downloading"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("files"),
	)

	completed := 0
	for _, f := range files {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\nDownload was interrupted by user.")
			return completed, nil
		default:
		}

		if err := downloadOne(ctx, f, destDir, fetch); err != nil {
			log.Error().Err(err).Str("file", f.Name).Msg("download failed")
			continue
		}
		completed++
		bar.Add(1)
	}
	fmt.Fprintln(out, "\nDownload complete!")
	return completed, nil
}

func downloadOne(ctx context.Context, f RemoteFile, destDir string, fetch FetchFunc) error {
	destPath := filepath.Join(destDir, f.Name)
	output, err := os.Create(destPath)
	if err != nil {
		return err
	}
	if err := fetch(ctx, f, output); err != nil {
		output.Close()
		return err
	}
	return output.Close()
}
