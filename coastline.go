// Map overlay geometry.

package vaod

import (
	"fmt"
	"os"

	"github.com/fogleman/gg"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// An Overlay holds coastline, border and lake geometry in lon/lat
// coordinates, loaded from a Natural Earth GeoJSON feature collection.
type Overlay struct {
	lines []orb.LineString
}

// LoadOverlay reads a GeoJSON feature collection and collects every line and
// polygon boundary it contains.
func LoadOverlay(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	overlay := &Overlay{}
	for _, feature := range fc.Features {
		overlay.collect(feature.Geometry)
	}
	return overlay, nil
}

func (o *Overlay) collect(geom orb.Geometry) {
	switch g := geom.(type) {
	case orb.LineString:
		o.lines = append(o.lines, g)
	case orb.MultiLineString:
		o.lines = append(o.lines, g...)
	case orb.Polygon:
		for _, ring := range g {
			o.lines = append(o.lines, orb.LineString(ring))
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			for _, ring := range poly {
				o.lines = append(o.lines, orb.LineString(ring))
			}
		}
	case orb.Collection:
		for _, sub := range g {
			o.collect(sub)
		}
	}
}

// Draw strokes every overlay line onto the canvas. project maps lon/lat to
// canvas coordinates.
func (o *Overlay) Draw(dc *gg.Context, lineWidth float64, project func(lon, lat float64) (x, y float64)) {
	if o == nil {
		return
	}
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(lineWidth)
	for _, line := range o.lines {
		for i, pt := range line {
			x, y := project(pt[0], pt[1])
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.Stroke()
	}
}
