package main

import (
	"fmt"
	"os"
)

func usage() {
	fmt.Fprint(os.Stderr, `Vaod is a tool for downloading and plotting VIIRS gridded AOD data.

Usage:

        vaod command [arguments]

The commands are:

`)
	for _, cmd := range commands {
		if cmd.Runnable() {
			fmt.Fprintf(os.Stderr, "    %-12s %s\n", cmd.Name(), cmd.Short)
		}
	}
	fmt.Fprint(os.Stderr, `
Use "vaod help [command]" for more information about a command.

Additional help topics:

`)
	for _, cmd := range commands {
		if !cmd.Runnable() {
			fmt.Fprintf(os.Stderr, "    %-12s %s\n", cmd.Name(), cmd.Short)
		}
	}
	fmt.Fprint(os.Stderr, `
Use "vaod help [topic]" for more information about that topic.
`)
	os.Exit(2)
}

func help(args []string) {
	if len(args) == 0 {
		usage()
	}
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: vaod help command\n\nToo many arguments given.\n")
		os.Exit(2)
	}

	arg := args[0]
	for _, cmd := range commands {
		if cmd.Name() == arg {
			if cmd.Runnable() {
				fmt.Fprintf(os.Stdout, "usage: vaod %s\n", cmd.UsageLine)
			}
			fmt.Fprintln(os.Stdout, cmd.Long)
			return
		}
	}

	fmt.Fprintf(os.Stderr, "Unknown help topic %q. Run 'vaod help'.\n", arg)
	os.Exit(2)
}

var helpNaming = &Command{
	UsageLine: "naming",
	Short:     "archive file-name conventions",
	Long: `
The archives name gridded AOD files by product family, satellite, resolution
and averaging period:

    operational daily    viirs_eps_<sat>_aod_<res>_deg_<YYYYMMDD>_nrt.nc
    operational monthly  viirs_aod_monthly_<sat>_0.250_<YYYYMM>_nrt.nc
    reprocessed daily    viirs_eps_<sat>_aod_<res>_deg_<YYYYMMDD>.nc
    reprocessed monthly  viirs_aod_monthly_<sat>_0.250_deg_<YYYYMM>.nc
    reprocessed weekly   viirs_eps_<sat>_aod_0.250_deg_weekly_<start>-<end>.nc

The satellite tag is "npp" or "noaa20" in daily and weekly names but "snpp"
or "noaa20" in monthly names; that inconsistency comes from the archives
themselves. Daily resolutions are 0.100 or 0.250 degrees for operational
files and 0.050, 0.100 or 0.250 for reprocessed ones; weekly and monthly
files exist only at 0.250 degrees.

Weekly file names embed the averaging window rather than a single date, so
they cannot be derived from a requested day. The reprocessed command instead
lists the year's weekly files and keeps those whose window covers a requested
day, endpoints inclusive.
`,
}
