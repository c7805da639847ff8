package podplay

import (
	"strings"
	"testing"
)

func TestImageURL(t *testing.T) {
	tests := []struct {
		name string
		opts ImageOptions
		want string
	}{
		{
			name: "original image without transformation",
			opts: ImageOptions{},
			want: "https://podplay.imgix.net/abc123",
		},
		{
			name: "width only uses crop and default quality",
			opts: ImageOptions{Width: 600},
			want: "https://podplay.imgix.net/abc123?auto=format%2Ccompress&fit=crop&q=75&width=600",
		},
		{
			name: "scale fit with explicit quality",
			opts: ImageOptions{Fit: ImageFitScale, Width: 300, Height: 300, Quality: 50},
			want: "https://podplay.imgix.net/abc123?auto=format%2Ccompress&fit=scale&height=300&q=50&width=300",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ImageURL("", "abc123", tt.opts)
			if got != tt.want {
				t.Errorf("ImageURL() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestImageVariants(t *testing.T) {
	images := imageVariants("", "abc123")

	if len(images) != len(imageWidths) {
		t.Fatalf("Expected %d variants, got %d", len(imageWidths), len(images))
	}
	for i, image := range images {
		if image.Width != imageWidths[i] {
			t.Errorf("Variant %d: expected width %d, got %d", i, imageWidths[i], image.Width)
		}
		if !strings.Contains(image.URL, "abc123") {
			t.Errorf("Variant %d: expected image id in URL, got %s", i, image.URL)
		}
	}
}
