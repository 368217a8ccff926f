/*
Vaod is a tool for downloading and plotting VIIRS gridded (level 3) aerosol
optical depth data.

Usage:

	vaod command [arguments]

The commands are:

	operational  download operational gridded AOD from the STAR archive
	reprocessed  download reprocessed gridded AOD from the NODD archive
	plot         plot gridded AOD files on a global map
	ls           list gridded AOD files on the STAR archive

Use "vaod help [command]" for more information about a command.

Additional help topics:

	naming       archive file-name conventions

Use "vaod help [topic]" for more information about that topic.
*/
package main
