package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/star-aerosol/vaod"
)

var cmdReprocessed = &Command{
	UsageLine: "reprocessed [-config file]",
	Short:     "download reprocessed gridded AOD from the NODD archive",
	Long: `
Reprocessed downloads reprocessed VIIRS gridded level 3 AOD files from the
JPSS NODD object store on AWS, using anonymous read access.

The command prompts for the observation start and end dates, the satellite
(SNPP or NOAA20 or both), the averaging period (daily, weekly, or monthly),
the data resolution (0.050, 0.100, or 0.250 degrees; weekly and monthly
files only exist at 0.250), and the directory to save downloaded files to.
It then reports the number and approximate total size of the available
files and downloads them after confirmation.

Weekly files are named for the averaging window they cover, not for a
single date, so they are discovered by listing the year's weekly directory
and keeping files whose window overlaps the requested dates.

Reprocessed gridded AOD is available for SNPP from 2012-2020 and for NOAA20
from 2018-2020. Press Ctrl+C to stop a download in progress; files already
downloaded are kept.

The -config option names an optional YAML settings file overriding the NODD
bucket name.
`,
}

var reprocessedConfigPath string

func init() {
	cmdReprocessed.Run = runReprocessed // break init cycle
	cmdReprocessed.Flag.StringVar(&reprocessedConfigPath, "config", "", "settings file")
}

func runReprocessed(ctx context.Context, cmd *Command, args []string) {
	logger := newLogger()
	cfg := loadConfig(reprocessedConfigPath, logger)
	prompter := vaod.NewPrompter(os.Stdin, os.Stdout)

	dates, err := prompter.ObservationDates()
	if err != nil {
		return
	}
	satellite, err := prompter.Choice(
		`Enter the satellite for VIIRS data (SNPP or NOAA20; to download data from both satellites, enter "both"): `,
		[]string{"SNPP", "NOAA20", "both"},
		`Satellite name was not recognized; must be SNPP or NOAA20 or "both". Try again.`)
	if err != nil {
		return
	}
	averaging, err := prompter.Choice(
		"Enter the averaging period for the VIIRS gridded data (daily, weekly, or monthly): ",
		[]string{"daily", "weekly", "monthly"},
		"Averaging period was not recognized; must be daily, weekly, or monthly. Try again.")
	if err != nil {
		return
	}
	resolution, err := prompter.Choice(
		"Enter the resolution in degrees of the VIIRS gridded data (0.050, 0.100, or 0.250)\n(weekly & monthly data only available at 0.250° resolution): ",
		vaod.ReprocessedResolutions,
		"Resolution was not recognized; must be 0.050, 0.100, or 0.250. Try again.")
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
		Family:     vaod.Reprocessed,
	}

	store, err := vaod.NewNODDStore(ctx, cfg.NODDBucket, logger)
	if err != nil {
		logger.Error().Err(err).Msg("cannot connect to the NODD archive")
		setExitStatus(1)
		return
	}

	fmt.Println("\nGenerating list of available files...")
	var avail vaod.Availability
	if params.Period == vaod.Weekly {
		avail = vaod.ResolveWeekly(ctx, store, logger, params)
	} else {
		avail = vaod.ProbeReprocessed(ctx, store, logger, vaod.Resolve(params))
	}

	reportMissing(avail.Missing)
	if len(avail.Available) == 0 {
		fmt.Println("\nNo files retrieved. Check settings and try again.")
		return
	}

	fmt.Println("\nTotal number of available files:", len(avail.Available))
	fmt.Printf("Approximate total size of download: %d MB\n", avail.TotalSize/1e6)
	fmt.Println("\nData files will be saved to:", saveDir)

	fetch := func(ctx context.Context, f vaod.RemoteFile, w io.Writer) error {
		return store.Fetch(ctx, f.Key, w)
	}

	question := "\nWould you like to download the files?\nType \"yes\" or \"no\" and hit \"Enter\""
	err = confirmAndDownload(os.Stdout, prompter, question, "\nFiles are not being downloaded.", func() error {
		_, err := vaod.Download(ctx, avail.Available, saveDir, fetch, os.Stdout, logger)
		return err
	})
	if err != nil {
		logger.Error().Err(err).Msg("download failed")
		setExitStatus(1)
	}
}
