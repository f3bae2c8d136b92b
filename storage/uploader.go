package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// Variant widths follow the CDN presets the frontend expects: a square
// thumbnail plus width-scaled medium and large renditions.
const (
	thumbSize   = 150
	mediumWidth = 600
	largeWidth  = 1200
)

// VariantSet holds the public URLs for an upload and its derived sizes.
type VariantSet struct {
	Original  string
	Thumbnail string
	Medium    string
	Large     string
}

// DiskStore writes originals and derived variants under a local directory
// that is served statically at /uploads.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir, baseURL: baseURL}, nil
}

// VariantNames returns the file names for an upload id, original first.
func VariantNames(id string) (original, thumb, medium, large string) {
	return id + ".jpg", id + "_thumb.jpg", id + "_medium.jpg", id + "_large.jpg"
}

func (s *DiskStore) url(name string) string {
	return s.baseURL + "/uploads/" + name
}

// Save decodes the uploaded image, writes the original plus the three resized
// variants and returns their public URLs.
func (s *DiskStore) Save(r io.Reader) (VariantSet, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return VariantSet{}, fmt.Errorf("decode image: %w", err)
	}

	id := uuid.NewString()
	original, thumb, medium, large := VariantNames(id)

	thumbImg := imaging.Thumbnail(img, thumbSize, thumbSize, imaging.Lanczos)
	mediumImg := imaging.Resize(img, mediumWidth, 0, imaging.Lanczos)
	largeImg := imaging.Resize(img, largeWidth, 0, imaging.Lanczos)

	if err := imaging.Save(img, filepath.Join(s.dir, original)); err != nil {
		return VariantSet{}, fmt.Errorf("save original: %w", err)
	}
	if err := imaging.Save(thumbImg, filepath.Join(s.dir, thumb)); err != nil {
		return VariantSet{}, fmt.Errorf("save thumbnail: %w", err)
	}
	if err := imaging.Save(mediumImg, filepath.Join(s.dir, medium)); err != nil {
		return VariantSet{}, fmt.Errorf("save medium: %w", err)
	}
	if err := imaging.Save(largeImg, filepath.Join(s.dir, large)); err != nil {
		return VariantSet{}, fmt.Errorf("save large: %w", err)
	}

	return VariantSet{
		Original:  s.url(original),
		Thumbnail: s.url(thumb),
		Medium:    s.url(medium),
		Large:     s.url(large),
	}, nil
}
