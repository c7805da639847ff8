package podplay

import (
	"fmt"
	"net/url"
	"strconv"
)

// DefaultImageBaseURL is the imgix host serving podcast artwork.
const DefaultImageBaseURL = "https://podplay.imgix.net"

// imageWidths are the artwork variants generated for every podcast.
var imageWidths = []int{300, 600, 960, 1280, 1600, 1920}

// ImageFit selects the imgix resize mode.
type ImageFit string

const (
	ImageFitCrop  ImageFit = "crop"
	ImageFitScale ImageFit = "scale"
)

// ImageOptions control the imgix rendering parameters of an artwork URL.
// A zero value requests the original image without transformation.
type ImageOptions struct {
	Fit     ImageFit
	Width   int
	Height  int
	Quality int // imgix "q" parameter, defaults to 75 when resizing
}

// ImageURL builds an imgix URL for a podcast artwork image ID.
func ImageURL(baseURL, imageID string, opts ImageOptions) string {
	if baseURL == "" {
		baseURL = DefaultImageBaseURL
	}

	query := url.Values{}
	if opts.Width > 0 || opts.Height > 0 {
		query.Set("auto", "format,compress")
		if opts.Fit == "" {
			opts.Fit = ImageFitCrop
		}
		query.Set("fit", string(opts.Fit))
		if opts.Width > 0 {
			query.Set("width", strconv.Itoa(opts.Width))
		}
		if opts.Height > 0 {
			query.Set("height", strconv.Itoa(opts.Height))
		}
		if opts.Quality <= 0 {
			opts.Quality = 75
		}
		query.Set("q", strconv.Itoa(opts.Quality))
	}

	if len(query) == 0 {
		return fmt.Sprintf("%s/%s", baseURL, imageID)
	}
	return fmt.Sprintf("%s/%s?%s", baseURL, imageID, query.Encode())
}

// imageVariants builds the standard set of sized artwork URLs for a podcast.
func imageVariants(baseURL, imageID string) []Image {
	images := make([]Image, 0, len(imageWidths))
	for _, w := range imageWidths {
		images = append(images, Image{
			URL:   ImageURL(baseURL, imageID, ImageOptions{Width: w}),
			Width: w,
		})
	}
	return images
}
