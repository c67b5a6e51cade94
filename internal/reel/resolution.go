package reel

import "math"

const (
	defaultQuality     = "1080p"
	defaultAspectRatio = "9:16"
	landscapeRatio     = "16:9"
)

var qualityHeights = map[string]int{
	"1080p": 1920,
	"720p":  1280,
	"480p":  854,
}

var aspectRatios = map[string]float64{
	"9:16": 9.0 / 16.0,
	"16:9": 16.0 / 9.0,
	"1:1":  1,
	"4:5":  4.0 / 5.0,
}

// resolution maps a quality tier and aspect ratio to pixel dimensions.
// Unknown values fall back to 1080p and 9:16.
//
// Portrait ratios compute width = round(height * ratio). For 16:9 the two
// sides are swapped: width keeps the tier height and height becomes
// round(height * 16/9). Downstream renderers depend on exactly this shape.
func resolution(quality, aspect string) (width, height int) {
	base, ok := qualityHeights[quality]
	if !ok {
		base = qualityHeights[defaultQuality]
	}
	ratio, ok := aspectRatios[aspect]
	if !ok {
		aspect = defaultAspectRatio
		ratio = aspectRatios[aspect]
	}

	scaled := int(math.Round(float64(base) * ratio))
	if aspect == landscapeRatio {
		return base, scaled
	}
	return scaled, base
}
