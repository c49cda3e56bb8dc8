package game

import (
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io/fs"
	"log"

	"github.com/gonewx/shmup/pkg/geom"
	"github.com/gonewx/shmup/pkg/sprites"
	"github.com/hajimehoshi/ebiten/v2"
)

// frameKey identifies one animation frame of one sprite kind.
type frameKey struct {
	kind  sprites.Kind
	frame int
}

// ResourceManager is responsible for centralized management of game resources.
// It decodes the sprite sheet once, keeps the sprite table derived from it and
// hands out cached GPU textures for individual animation frames.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// For the single-threaded game loop, no synchronization is needed.
//
// Usage:
//
//	rm := NewResourceManager(embedded.FS())
//	if err := rm.LoadSpriteSheet("assets/sprites.png", "data/sprites.txt", geom.Pt(600, 600)); err != nil {
//	    log.Fatalf("Failed to load sprites: %v", err)
//	}
type ResourceManager struct {
	fsys fs.FS

	imageCache map[string]*ebiten.Image // Cache for loaded images: path -> Image
	frameCache map[frameKey]*ebiten.Image

	sheet   *ebiten.Image  // Sprite sheet texture
	table   *sprites.Table // Sprite descriptors derived from the sheet
	sheetAt string         // Path of the loaded sprite sheet
}

// NewResourceManager creates a ResourceManager reading from the given file system.
//
// Parameters:
//   - fsys: The file system holding "assets/" and "data/" (embedded or on disk).
func NewResourceManager(fsys fs.FS) *ResourceManager {
	return &ResourceManager{
		fsys:       fsys,
		imageCache: make(map[string]*ebiten.Image),
		frameCache: make(map[frameKey]*ebiten.Image),
	}
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Error handling:
//   - Returns an error if the file does not exist or cannot be opened.
//   - Returns an error if the image format is not supported or the file is corrupted.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := rm.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage returns a previously loaded image, or nil if it was never loaded.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadSpriteSheet decodes the sprite sheet, parses its description and extracts
// the convex hull of every described sprite. Any failure is returned and should
// be treated as fatal by the caller.
//
// Parameters:
//   - sheetPath: Path of the PNG sprite sheet (e.g., "assets/sprites.png").
//   - descPath: Path of the sprite description (e.g., "data/sprites.txt").
//   - virtualDims: Pixel dimensions that map onto the [0,1] world square.
func (rm *ResourceManager) LoadSpriteSheet(sheetPath, descPath string, virtualDims geom.IPoint) error {
	sheet, err := sprites.LoadSheet(rm.fsys, sheetPath, descPath, virtualDims)
	if err != nil {
		return fmt.Errorf("failed to load sprite sheet: %w", err)
	}

	rm.sheet = ebiten.NewImageFromImage(sheet.Image)
	rm.table = sheet.Table
	rm.sheetAt = sheetPath
	rm.imageCache[sheetPath] = rm.sheet
	clear(rm.frameCache)

	for _, k := range sprites.Kinds() {
		d := rm.table.MustGet(k)
		log.Printf("[ResourceManager] Sprite %s: rect=%v frames=%d hull=%d vertices",
			k, d.Rect, d.Frames, len(d.Hull))
	}
	return nil
}

// Sprites returns the sprite table, or nil before LoadSpriteSheet succeeds.
func (rm *ResourceManager) Sprites() *sprites.Table {
	return rm.table
}

// Get returns the descriptor of a sprite kind. It lets the ResourceManager be
// passed wherever object factories need sprite descriptors.
func (rm *ResourceManager) Get(kind sprites.Kind) (*sprites.Descriptor, bool) {
	if rm.table == nil {
		return nil, false
	}
	return rm.table.Get(kind)
}

// Frame returns the texture of one animation frame, cut from the sprite sheet
// and cached on first use.
func (rm *ResourceManager) Frame(kind sprites.Kind, frame int) (*ebiten.Image, bool) {
	key := frameKey{kind: kind, frame: frame}
	if img, ok := rm.frameCache[key]; ok {
		return img, true
	}

	d, ok := rm.Get(kind)
	if !ok || rm.sheet == nil {
		return nil, false
	}

	img := rm.sheet.SubImage(d.FrameRect(frame)).(*ebiten.Image)
	rm.frameCache[key] = img
	return img, true
}
