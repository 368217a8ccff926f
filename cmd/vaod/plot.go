package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/star-aerosol/vaod"
)

var cmdPlot = &Command{
	UsageLine: "plot [-config file]",
	Short:     "plot gridded AOD files on a global map",
	Long: `
Plot opens VIIRS gridded level 3 AOD files in netCDF4 format and plots each
on a global equidistant cylindrical map, along with the global AOD max, min
and mean. It accommodates daily, weekly, or monthly averaged files, at
0.050, 0.100, or 0.250 degree resolution, from either the operational or
the reprocessed product family; all display metadata is derived from the
file name.

The command prompts for the directory holding the data files, the directory
to save map images to, the maximum AOD value of the color scale (1 to 5;
larger values are shown in a single dark red), the image resolution in DPI
(100 to 900), and the image format (png, jpg, or pdf). Every file matching
*aod*.nc in the data directory is plotted.

The -config option names an optional YAML settings file. Its
coastline_geojson entry points at a Natural Earth GeoJSON file drawn over
the data as coastlines, borders and lakes; without it maps are drawn with
no overlay. Its plot section seeds the AOD maximum, DPI and format prompts,
where a blank answer keeps the seeded value.
`,
}

var plotConfigPath string

func init() {
	cmdPlot.Run = runPlot // break init cycle
	cmdPlot.Flag.StringVar(&plotConfigPath, "config", "", "settings file")
}

func runPlot(ctx context.Context, cmd *Command, args []string) {
	logger := newLogger()
	cfg := loadConfig(plotConfigPath, logger)

	// Report every missing runtime requirement up front, before any prompt.
	var missing []string
	if cfg.CoastlineGeoJSON != "" {
		if _, err := os.Stat(cfg.CoastlineGeoJSON); err != nil {
			missing = append(missing, cfg.CoastlineGeoJSON)
		}
	}
	if len(missing) > 0 {
		fmt.Println("The following required files are not present:")
		for _, m := range missing {
			fmt.Println(m)
		}
		fmt.Println("\nYou must provide the indicated file(s) in order to run the command.")
		setExitStatus(1)
		return
	}

	var overlay *vaod.Overlay
	if cfg.CoastlineGeoJSON != "" {
		var err error
		overlay, err = vaod.LoadOverlay(cfg.CoastlineGeoJSON)
		if err != nil {
			logger.Error().Err(err).Msg("cannot load coastline overlay")
			setExitStatus(1)
			return
		}
	}

	prompter := vaod.NewPrompter(os.Stdin, os.Stdout)

	dataDir, err := prompter.Directory("where VIIRS AOD data files are located")
	if err != nil {
		return
	}
	saveDir, err := prompter.Directory("where map image files will be saved")
	if err != nil {
		return
	}

	// The settings file seeds each plotting prompt; a blank answer keeps
	// the seeded value.
	fmt.Println("\nThe valid data range of VIIRS AOD is [-0.05, 5]. You will be asked to enter the maximum value for plotting AOD data; AODs > this value up to 5 will be plotted, but represented by a single color (e.g., dark red).")
	aodMax, err := prompter.IntInRangeDefault(
		fmt.Sprintf("Enter the maximum value for the AOD plotting range, as an integer from 1 to 5 (press Enter for %d): ", cfg.Plot.AODMax),
		cfg.Plot.AODMax, 1, 5,
		"Value must be 1, 2, 3, 4, or 5. Try again.")
	if err != nil {
		return
	}

	fmt.Println("\nYou will be asked to enter the dots per inch (DPI) image resolution for the map plots. As DPI increases, image resolution and file size both increase.\nFor reference:\n100 = low resolution\n300 = moderate resolution\n600 = high resolution\n900 = very high resolution")
	dpi, err := prompter.IntInRangeDefault(
		fmt.Sprintf("Enter the DPI as an integer from 100 to 900 (press Enter for %d): ", cfg.Plot.DPI),
		cfg.Plot.DPI, 100, 900,
		"Value must be between 100 and 900. Try again.")
	if err != nil {
		return
	}

	format, err := prompter.ChoiceDefault(
		fmt.Sprintf("Enter the format for saved map image files (png, jpg, or pdf; press Enter for %s): ", cfg.Plot.Format),
		vaod.PlotFormats, cfg.Plot.Format,
		"Format must be png, jpg, or pdf. Try again.")
	if err != nil {
		return
	}

	opts := vaod.PlotOptions{AODMax: aodMax, DPI: dpi, Format: format, Overlay: overlay}

	files, err := filepath.Glob(filepath.Join(dataDir, "*aod*.nc"))
	if err != nil {
		logger.Error().Err(err).Msg("cannot list data files")
		setExitStatus(1)
		return
	}
	sort.Strings(files)

	for _, file := range files {
		fmt.Println("\nNow plotting:", filepath.Base(file))
		if _, err := vaod.RenderFile(file, opts, saveDir); err != nil {
			logger.Error().Err(err).Str("file", filepath.Base(file)).Msg("plotting failed")
			setExitStatus(1)
		}
	}
	fmt.Println("\nDone!")
}
