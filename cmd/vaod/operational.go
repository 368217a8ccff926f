package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/star-aerosol/vaod"
)

var cmdOperational = &Command{
	UsageLine: "operational [-config file]",
	Short:     "download operational gridded AOD from the STAR archive",
	Long: `
Operational downloads operational (near-real-time) VIIRS gridded level 3 AOD
files from the NOAA/STAR online archive.

The command prompts for the observation start and end dates, the satellite
(SNPP or NOAA-20 or both), the averaging period (daily or monthly), the data
resolution (0.100 or 0.250 degrees; monthly files only exist at 0.250), and
the directory to save downloaded files to. It then lists the files actually
present on the archive, reports any missing dates, and downloads the
available files after confirmation.

All files have global coverage, contain high quality AOD only, and are in
netCDF4 format. Operational gridded AOD is available from Oct 29 2022
onward. Press Ctrl+C to stop a download in progress; files already
downloaded are kept.

The -config option names an optional YAML settings file overriding the
archive root URL.
`,
}

var operationalConfigPath string

func init() {
	cmdOperational.Run = runOperational // break init cycle
	cmdOperational.Flag.StringVar(&operationalConfigPath, "config", "", "settings file")
}

func runOperational(ctx context.Context, cmd *Command, args []string) {
	logger := newLogger()
	cfg := loadConfig(operationalConfigPath, logger)
	prompter := vaod.NewPrompter(os.Stdin, os.Stdout)

	dates, err := prompter.ObservationDates()
	if err != nil {
		return
	}
	satellite, err := prompter.Choice(
		`Enter the satellite for VIIRS data (SNPP or NOAA-20; to download data from both satellites, enter "both"): `,
		[]string{"SNPP", "NOAA-20", "both"},
		`Satellite name was not recognized; must be SNPP or NOAA-20 or "both". Try again.`)
	if err != nil {
		return
	}
	averaging, err := prompter.Choice(
		"Enter the averaging period for the VIIRS gridded data (daily or monthly): ",
		[]string{"daily", "monthly"},
		"Averaging period was not recognized; must be daily or monthly. Try again.")
	if err != nil {
		return
	}
	resolution, err := prompter.Choice(
		"Enter the resolution in degrees of the VIIRS gridded data (0.100 or 0.250)\n(monthly data only available at 0.250° resolution): ",
		vaod.OperationalResolutions,
		"Resolution was not recognized; must be 0.100 or 0.250. Try again.")
	if err != nil {
		return
	}
	saveDir, err := prompter.Directory("to save downloaded files")
	if err != nil {
		return
	}

	params := vaod.ObservationParams{
		Range:      dates,
		Satellites: vaod.SelectSatellites(satellite),
		Period:     vaod.AveragingPeriod(averaging),
		Resolution: resolution,
		Family:     vaod.Operational,
	}

	fmt.Println("\nGenerating list of available files...")
	archive := vaod.NewStarArchive(cfg.StarRoot, logger)
	avail := vaod.ProbeOperational(archive, cfg.StarRoot, vaod.Resolve(params))

	reportMissing(avail.Missing)
	if len(avail.Available) == 0 {
		fmt.Println("\nNo data files are available for download. Check settings and try again.")
		return
	}

	fmt.Println("\nList of available data files:")
	for _, f := range avail.Available {
		fmt.Println(f.Name)
	}
	fmt.Println("\nData files will be saved to:", saveDir)

	// The download loop re-derives each URL from the file name alone; the
	// grammar is the single source of the URL structure.
	fetch := func(ctx context.Context, f vaod.RemoteFile, w io.Writer) error {
		fn, err := vaod.ParseFileName(f.Name)
		if err != nil {
			return err
		}
		return archive.Fetch(fn.StarURL(cfg.StarRoot), w)
	}

	question := fmt.Sprintf("Would you like to download the %d files?\nType \"yes\" or \"no\" and hit \"Enter\"", len(avail.Available))
	err = confirmAndDownload(os.Stdout, prompter, question, "Files are not being downloaded.", func() error {
		_, err := vaod.Download(ctx, avail.Available, saveDir, fetch, os.Stdout, logger)
		return err
	})
	if err != nil {
		logger.Error().Err(err).Msg("download failed")
		setExitStatus(1)
	}
}
