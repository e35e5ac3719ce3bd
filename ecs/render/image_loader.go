package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/megaman/assets"
)

var images = map[string]*ebiten.Image{}

// LoadImage loads an image from assets or the filesystem and caches it by key.
func LoadImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("render: empty image key")
	}
	if img := images[key]; img != nil {
		return img, nil
	}
	img, err := loadImageFromAssetsOrFS(key)
	if err != nil {
		return nil, err
	}
	images[key] = img
	return img, nil
}

// MustLoadImage is LoadImage that logs failures and falls back to a
// placeholder of the given size so a missing asset never stops the game.
func MustLoadImage(key string, w, h int) *ebiten.Image {
	img, err := LoadImage(key)
	if err != nil {
		log.Printf("render: %v; using placeholder", err)
		img = assets.Placeholder(w, h)
		images[key] = img
	}
	return img
}

// ImageSize returns an image's pixel size without creating a GPU image.
func ImageSize(key string) (int, int, bool) {
	if img := images[key]; img != nil {
		b := img.Bounds()
		return b.Dx(), b.Dy(), true
	}
	img, err := assets.DecodeImage(key)
	if err != nil {
		return 0, 0, false
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), true
}

func loadImageFromAssetsOrFS(path string) (*ebiten.Image, error) {
	if img, err := assets.LoadImage(path); err == nil {
		return img, nil
	}
	tried := []string{path, filepath.Join("assets", path), filepath.Base(path)}
	for _, p := range tried {
		if b, err := os.ReadFile(p); err == nil {
			if im, _, err := image.Decode(bytes.NewReader(b)); err == nil {
				return ebiten.NewImageFromImage(im), nil
			}
		}
	}
	return nil, fmt.Errorf("render: failed to load image %s", path)
}
