package main

import (
	"context"
	"fmt"
	"time"

	"github.com/star-aerosol/vaod"
)

var cmdLs = &Command{
	UsageLine: "ls [-satellite name] [-year YYYY] [-config file]",
	Short:     "list gridded AOD files on the STAR archive",
	Long: `
Ls lists the operational daily gridded AOD files actually present on the
STAR online archive for one satellite and year, by parsing the archive's
HTML index page. It is useful for finding which dates exist before running
an interactive download.

The -satellite option selects the platform, SNPP (the default), NOAA-20, or
both.
The -year option selects the archive year directory; it defaults to the
current year.
`,
}

var (
	lsSatellite  string
	lsYear       int
	lsConfigPath string
)

func init() {
	cmdLs.Run = runLs // break init cycle
	cmdLs.Flag.StringVar(&lsSatellite, "satellite", "SNPP", "satellite, SNPP or NOAA-20")
	cmdLs.Flag.IntVar(&lsYear, "year", time.Now().Year(), "archive year to list")
	cmdLs.Flag.StringVar(&lsConfigPath, "config", "", "settings file")
}

func runLs(ctx context.Context, cmd *Command, args []string) {
	logger := newLogger()
	cfg := loadConfig(lsConfigPath, logger)

	sats := vaod.SelectSatellites(lsSatellite)
	if sats == nil {
		fmt.Printf("Satellite name was not recognized; must be SNPP or NOAA-20.\n")
		setExitStatus(2)
		return
	}

	archive := vaod.NewStarArchive(cfg.StarRoot, logger)
	found := 0
	for _, sat := range sats {
		names, err := archive.List(sat, lsYear)
		if err != nil {
			logger.Error().Err(err).Msg("cannot list archive index")
			setExitStatus(1)
			return
		}
		found += len(names)
		for _, name := range names {
			fmt.Println(name)
		}
	}
	if found == 0 {
		fmt.Printf("No gridded AOD files found for %s in %d.\n", lsSatellite, lsYear)
	}
}
