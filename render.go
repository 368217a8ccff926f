// Global map rendering of gridded AOD files.

package vaod

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fhs/go-netcdf/netcdf"
	"github.com/fogleman/gg"
	"github.com/jung-kurt/gofpdf"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Valid AOD data range. Values outside it are fill values and are neither
// plotted nor included in statistics. Weekly files additionally carry
// sentinel lows below -0.05, which the same bound masks.
const (
	aodValidMin = -0.05
	aodValidMax = 5.0
)

// PlotOptions carries the user's rendering choices.
type PlotOptions struct {
	AODMax  int    // top of the color scale, 1-5
	DPI     int    // output resolution, 100-900
	Format  string // "png", "jpg" or "pdf"
	Overlay *Overlay
}

// PlotFormats are the supported output image formats.
var PlotFormats = []string{"png", "jpg", "pdf"}

// A Grid is one gridded AOD field read from a netCDF file. Values is
// row-major [lat][lon] with NaN in cells holding no valid retrieval.
type Grid struct {
	Lon, Lat []float64
	Values   []float64
}

func (g *Grid) at(i, j int) float64 {
	return g.Values[i*len(g.Lon)+j]
}

// aodVariable names the data variable to read: daily files expose AOD550,
// averaged files expose a generic aod variable.
func aodVariable(period AveragingPeriod) string {
	if period == Daily {
		return "AOD550"
	}
	return "aod"
}

// ReadGrid opens a gridded AOD netCDF file and reads its coordinate and data
// variables. The data variable is selected by the file's averaging period.
func ReadGrid(path string, period AveragingPeriod) (*Grid, error) {
	ds, err := netcdf.OpenFile(path, netcdf.NOWRITE)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer ds.Close()

	lon, err := readCoordinate(ds, "lon")
	if err != nil {
		return nil, err
	}
	lat, err := readCoordinate(ds, "lat")
	if err != nil {
		return nil, err
	}
	values, err := readField(ds, aodVariable(period), len(lat)*len(lon))
	if err != nil {
		return nil, err
	}

	// Mask fill values and out-of-range sentinels.
	for i, v := range values {
		if v < aodValidMin || v > aodValidMax {
			values[i] = math.NaN()
		}
	}
	return &Grid{Lon: lon, Lat: lat, Values: values}, nil
}

func readCoordinate(ds netcdf.Dataset, name string) ([]float64, error) {
	v, err := ds.Var(name)
	if err != nil {
		return nil, fmt.Errorf("variable %s: %w", name, err)
	}
	n, err := v.Len()
	if err != nil {
		return nil, err
	}
	return readFloats(v, int(n))
}

func readField(ds netcdf.Dataset, name string, want int) ([]float64, error) {
	v, err := ds.Var(name)
	if err != nil {
		return nil, fmt.Errorf("variable %s: %w", name, err)
	}
	values, err := readFloats(v, want)
	if err != nil {
		return nil, err
	}
	if len(values) != want {
		return nil, fmt.Errorf("variable %s: got %d values, want %d", name, len(values), want)
	}
	return values, nil
}

// readFloats reads a variable as float64 regardless of its stored width.
func readFloats(v netcdf.Var, n int) ([]float64, error) {
	buf32 := make([]float32, n)
	if err := v.ReadFloat32s(buf32); err == nil {
		out := make([]float64, n)
		for i, x := range buf32 {
			out[i] = float64(x)
		}
		return out, nil
	}
	out := make([]float64, n)
	if err := v.ReadFloat64s(out); err != nil {
		return nil, err
	}
	return out, nil
}

// AODStats are the global summary statistics shown on the plot.
type AODStats struct {
	Max, Min, Mean float64
}

// Stats computes max, min and mean over the valid cells of a grid.
func Stats(g *Grid) AODStats {
	var valid []float64
	for _, v := range g.Values {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	if len(valid) == 0 {
		return AODStats{Max: math.NaN(), Min: math.NaN(), Mean: math.NaN()}
	}
	return AODStats{
		Max:  floats.Max(valid),
		Min:  floats.Min(valid),
		Mean: stat.Mean(valid, nil),
	}
}

// format4 renders a statistic to at most 4 decimal places without trailing
// zeros, matching the original positional formatting.
func format4(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	s := strconv.FormatFloat(v, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func (s AODStats) String() string {
	return "max AOD = " + format4(s.Max) +
		"\nmin AOD = " + format4(s.Min) +
		"\nmean AOD = " + format4(s.Mean)
}

// RenderFile plots one local gridded AOD file and writes the image into
// saveDir. The file's own base name supplies all display metadata through
// the grammar. Returns the saved image name.
func RenderFile(path string, opts PlotOptions, saveDir string) (string, error) {
	fn, err := ParseFileName(filepath.Base(path))
	if err != nil {
		return "", err
	}
	grid, err := ReadGrid(path, fn.Period)
	if err != nil {
		return "", err
	}
	return RenderMap(fn, grid, opts, saveDir)
}

// RenderMap draws the global equirectangular map for a grid and saves it
// under the deterministic output name for fn. Layer order, bottom to top:
// ocean background, data cells, overlay lines, ticks and colorbar, stats
// box.
func RenderMap(fn FileName, grid *Grid, opts PlotOptions, saveDir string) (string, error) {
	scale := float64(opts.DPI) / 100.0
	mapW := 720.0 * scale
	mapH := mapW / 2
	marginL := 50.0 * scale
	marginT := 40.0 * scale
	barBand := 90.0 * scale
	canvasW := int(mapW + marginL + 20.0*scale)
	canvasH := int(mapH + marginT + barBand)

	dc := gg.NewContext(canvasW, canvasH)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	project := func(lon, lat float64) (float64, float64) {
		x := marginL + (lon+180)/360*mapW
		y := marginT + (90-lat)/180*mapH
		return x, y
	}

	// Ocean background.
	dc.SetRGB255(211, 211, 211)
	dc.DrawRectangle(marginL, marginT, mapW, mapH)
	dc.Fill()

	// Data cells.
	colorScale := NewAODScale(opts.AODMax)
	cellW := mapW / float64(len(grid.Lon))
	cellH := mapH / float64(len(grid.Lat))
	for i, lat := range grid.Lat {
		for j, lon := range grid.Lon {
			v := grid.at(i, j)
			if math.IsNaN(v) {
				continue
			}
			x, y := project(lon, lat)
			dc.SetColor(colorScale.At(v))
			dc.DrawRectangle(x-cellW/2, y-cellH/2, cellW, cellH)
			dc.Fill()
		}
	}

	// Coastlines, borders and lakes above the data.
	opts.Overlay.Draw(dc, 0.5*scale, project)

	// Map frame and graticule labels.
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1 * scale)
	dc.DrawRectangle(marginL, marginT, mapW, mapH)
	dc.Stroke()
	drawTicks(dc, project, marginL, marginT, mapW, mapH, scale)

	// Title.
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(fn.PlotTitle(), marginL+mapW/2, marginT-14*scale, 0.5, 0.5)

	// Colorbar, bottom centered.
	drawColorbar(dc, colorScale, opts.AODMax, marginL+mapW/2, marginT+mapH+40*scale, mapW*0.4, 14*scale, scale)

	// Stats box inside the map, lower right.
	drawStatsBox(dc, Stats(grid), marginL+mapW*0.75, marginT+mapH*0.975, scale)

	if err := os.MkdirAll(saveDir, 0o755); err != nil {
		return "", err
	}
	saveName := fn.PlotSaveName(opts.Format)
	if err := saveImage(dc, filepath.Join(saveDir, saveName), opts); err != nil {
		return "", err
	}
	return saveName, nil
}

func formatLon(lon int) string {
	switch {
	case lon == 0 || lon == 180 || lon == -180:
		return fmt.Sprintf("%d°", abs(lon))
	case lon > 0:
		return fmt.Sprintf("%d°E", lon)
	default:
		return fmt.Sprintf("%d°W", -lon)
	}
}

func formatLat(lat int) string {
	switch {
	case lat == 0:
		return "0°"
	case lat > 0:
		return fmt.Sprintf("%d°N", lat)
	default:
		return fmt.Sprintf("%d°S", -lat)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func drawTicks(dc *gg.Context, project func(float64, float64) (float64, float64), x0, y0, mapW, mapH, scale float64) {
	tick := 5 * scale
	for lon := -180; lon <= 180; lon += 60 {
		x, _ := project(float64(lon), 0)
		dc.DrawLine(x, y0+mapH, x, y0+mapH+tick)
		dc.Stroke()
		dc.DrawStringAnchored(formatLon(lon), x, y0+mapH+tick+8*scale, 0.5, 0.5)
	}
	for lat := -90; lat <= 90; lat += 30 {
		_, y := project(0, float64(lat))
		dc.DrawLine(x0-tick, y, x0, y)
		dc.Stroke()
		dc.DrawStringAnchored(formatLat(lat), x0-tick-14*scale, y, 0.5, 0.5)
	}
}

func drawColorbar(dc *gg.Context, cs ColorScale, max int, centerX, y, width, height, scale float64) {
	x0 := centerX - width/2
	steps := int(width)
	for i := 0; i < steps; i++ {
		v := float64(i) / float64(steps-1) * cs.Max
		dc.SetColor(cs.At(v))
		dc.DrawRectangle(x0+float64(i), y, 1, height)
		dc.Fill()
	}
	// Overflow wedge when the scale does not already reach the top of the
	// valid range.
	if max < 5 {
		dc.SetColor(cs.Overflow)
		dc.MoveTo(x0+width, y)
		dc.LineTo(x0+width+height, y+height/2)
		dc.LineTo(x0+width, y+height)
		dc.ClosePath()
		dc.Fill()
	}
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(0.5 * scale)
	dc.DrawRectangle(x0, y, width, height)
	dc.Stroke()
	for t := 0; t <= max; t++ {
		x := x0 + float64(t)/float64(max)*width
		dc.DrawLine(x, y+height, x, y+height+3*scale)
		dc.Stroke()
		dc.DrawStringAnchored(strconv.Itoa(t), x, y+height+10*scale, 0.5, 0.5)
	}
	dc.DrawStringAnchored("Aerosol Optical Depth", centerX, y+height+22*scale, 0.5, 0.5)
}

func drawStatsBox(dc *gg.Context, stats AODStats, x, y float64, scale float64) {
	lines := strings.Split(stats.String(), "\n")
	lineH := 12 * scale
	boxW := 110 * scale
	boxH := lineH*float64(len(lines)) + 8*scale
	dc.SetRGB255(211, 211, 211)
	dc.DrawRoundedRectangle(x, y-boxH, boxW, boxH, 4*scale)
	dc.Fill()
	dc.SetRGB(0, 0, 0)
	for i, line := range lines {
		dc.DrawString(line, x+6*scale, y-boxH+lineH*float64(i+1))
	}
}

func saveImage(dc *gg.Context, path string, opts PlotOptions) error {
	switch opts.Format {
	case "png":
		return dc.SavePNG(path)
	case "jpg":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return jpeg.Encode(f, dc.Image(), &jpeg.Options{Quality: 95})
	case "pdf":
		return savePDF(dc, path, opts.DPI)
	}
	return fmt.Errorf("unsupported image format %q", opts.Format)
}

// savePDF embeds the rendered raster in a single-page PDF sized so the
// nominal print dimensions match the requested DPI.
func savePDF(dc *gg.Context, path string, dpi int) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return err
	}
	wpt := float64(dc.Width()) * 72 / float64(dpi)
	hpt := float64(dc.Height()) * 72 / float64(dpi)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: wpt, Ht: hpt},
	})
	pdf.AddPage()
	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("map", opt, &buf)
	pdf.ImageOptions("map", 0, 0, wpt, hpt, false, opt, 0, "")
	return pdf.OutputFileAndClose(path)
}
