// Package vaod provides support for downloading VIIRS gridded (level 3)
// aerosol optical depth data products from the NOAA/STAR online archive and
// the JPSS NODD object store, and for plotting downloaded files as global
// maps.
package vaod

// Default archive locations. Both archives allow anonymous read access.
const (
	// DefaultStarRoot is the root URL of the NOAA/STAR online archive of
	// operational gridded AOD files.
	DefaultStarRoot = "https://www.star.nesdis.noaa.gov/pub/smcd/VIIRS_Aerosol/viirs_aerosol_gridded_data/"

	// DefaultNODDBucket is the S3 bucket holding reprocessed gridded AOD
	// files on the JPSS NODD archive.
	DefaultNODDBucket = "noaa-jpss"

	// DefaultNODDRegion is the AWS region the NODD bucket lives in.
	DefaultNODDRegion = "us-east-1"
)
