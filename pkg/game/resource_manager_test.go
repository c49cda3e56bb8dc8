package game

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"
	"testing/fstest"

	"github.com/gonewx/shmup/pkg/geom"
	"github.com/gonewx/shmup/pkg/sprites"
)

// encodeTestImage creates a simple opaque PNG of the given size.
func encodeTestImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	blue := color.RGBA{R: 0, G: 0, B: 255, A: 255}
	for y := range h {
		for x := range w {
			img.Set(x, y, blue)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

// TestLoadImage tests image loading, caching and error handling.
func TestLoadImage(t *testing.T) {
	rm := NewResourceManager(fstest.MapFS{
		"assets/test.png":    {Data: encodeTestImage(t, 10, 10)},
		"assets/corrupt.png": {Data: []byte("not a png")},
	})

	img, err := rm.LoadImage("assets/test.png")
	if err != nil {
		t.Fatalf("LoadImage() error: %v", err)
	}
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 10 || h != 10 {
		t.Errorf("image size: got %dx%d, want 10x10", w, h)
	}

	// 第二次加载返回缓存
	again, _ := rm.LoadImage("assets/test.png")
	if again != img || rm.GetImage("assets/test.png") != img {
		t.Error("image was not cached")
	}

	if _, err := rm.LoadImage("assets/missing.png"); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := rm.LoadImage("assets/corrupt.png"); err == nil {
		t.Error("expected error for corrupt file")
	}
	if rm.GetImage("assets/missing.png") != nil {
		t.Error("failed loads must not be cached")
	}
}

// TestLoadSpriteSheet tests loading the bundled sprite sheet and cutting frames.
func TestLoadSpriteSheet(t *testing.T) {
	rm := NewResourceManager(os.DirFS("../.."))

	if _, ok := rm.Frame(sprites.Player, 0); ok {
		t.Error("Frame() before loading should fail")
	}

	if err := rm.LoadSpriteSheet("assets/sprites.png", "data/sprites.txt", geom.Pt(600, 600)); err != nil {
		t.Fatalf("LoadSpriteSheet() error: %v", err)
	}

	d, ok := rm.Get(sprites.Player)
	if !ok {
		t.Fatal("player sprite not described")
	}

	for frame := range d.Frames {
		img, ok := rm.Frame(sprites.Player, frame)
		if !ok {
			t.Fatalf("Frame(player, %d) missing", frame)
		}
		if img.Bounds() != d.FrameRect(frame) {
			t.Errorf("frame %d bounds: got %v, want %v", frame, img.Bounds(), d.FrameRect(frame))
		}
		if cached, _ := rm.Frame(sprites.Player, frame); cached != img {
			t.Errorf("frame %d not cached", frame)
		}
	}

	if rm.Sprites() == nil || rm.Sprites().Len() != len(sprites.Kinds()) {
		t.Error("sprite table incomplete")
	}
}

// TestLoadSpriteSheetMissing tests that a missing description is reported.
func TestLoadSpriteSheetMissing(t *testing.T) {
	rm := NewResourceManager(fstest.MapFS{
		"assets/sprites.png": {Data: encodeTestImage(t, 4, 4)},
	})
	if err := rm.LoadSpriteSheet("assets/sprites.png", "data/sprites.txt", geom.Pt(100, 100)); err == nil {
		t.Error("expected error for missing description")
	}
	if rm.Sprites() != nil {
		t.Error("failed load must not install a sprite table")
	}
}
