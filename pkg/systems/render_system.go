package systems

import (
	"fmt"
	"image/color"

	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/sprites"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 碰撞框调试颜色
var (
	hullColor   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	hitboxColor = color.RGBA{R: 255, G: 255, B: 0, A: 160}
)

// FrameSource 按精灵种类和帧号提供纹理
type FrameSource interface {
	Frame(kind sprites.Kind, frame int) (*ebiten.Image, bool)
}

// HUD 屏幕上方显示的信息
type HUD struct {
	HighScore int
	GameOver  bool
	FPS       float64
}

// RenderSystem 绘制背景、场景对象、碰撞框调试层和 HUD
type RenderSystem struct {
	frames       FrameSource
	ShowHitboxes bool
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(frames FrameSource, showHitboxes bool) *RenderSystem {
	return &RenderSystem{frames: frames, ShowHitboxes: showHitboxes}
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image, w *World, hud HUD) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	s.drawBackground(screen, w.BackgroundOffset, sw, sh)

	blink := w.Status.Invulnerable > 0 && int(w.Status.Invulnerable*10)%2 == 0
	for i := range w.Player {
		s.drawObject(screen, &w.Player[i], sw, sh, blink)
	}
	for i := range w.EnemyBullets {
		s.drawObject(screen, &w.EnemyBullets[i], sw, sh, false)
	}
	for i := range w.PlayerBullets {
		s.drawObject(screen, &w.PlayerBullets[i], sw, sh, false)
	}

	if s.ShowHitboxes {
		for _, group := range w.Groups() {
			for i := range group {
				drawCollisionOverlay(screen, &group[i], sw, sh)
			}
		}
	}

	text := fmt.Sprintf("SCORE %d  LIVES %d  HIGH %d", w.Status.Score, w.Status.Lives, max(hud.HighScore, w.Status.Score))
	if s.ShowHitboxes {
		text += fmt.Sprintf("\nOBJECTS %d  FPS %.0f", w.Count(), hud.FPS)
	}
	ebitenutil.DebugPrintAt(screen, text, 4, 4)
	if hud.GameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER - PRESS R", sw/2-60, sh/2)
	}
}

// drawBackground 绘制两份纵向拼接的背景实现循环滚动
func (s *RenderSystem) drawBackground(screen *ebiten.Image, offset float64, sw, sh int) {
	bg, ok := s.frames.Frame(sprites.Background, 0)
	if !ok {
		screen.Fill(color.Black)
		return
	}

	bw, bh := bg.Bounds().Dx(), bg.Bounds().Dy()
	for _, y := range []float64{offset - 1, offset} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(sw)/float64(bw), float64(sh)/float64(bh))
		op.GeoM.Translate(0, y*float64(sh))
		screen.DrawImage(bg, op)
	}
}

// drawObject 以对象位置为中心绘制当前帧，依次应用缩放和旋转
func (s *RenderSystem) drawObject(screen *ebiten.Image, o *components.Object, sw, sh int, faded bool) {
	d := o.Sprite()
	if d == nil {
		return
	}
	img, ok := s.frames.Frame(d.Kind, o.Kind.Frame())
	if !ok {
		return
	}

	iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	scale := o.Scale()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-iw/2, -ih/2)
	op.GeoM.Scale(d.VirtualSize.X*float64(sw)/iw*scale.X, d.VirtualSize.Y*float64(sh)/ih*scale.Y)
	op.GeoM.Rotate(o.Angle().Rad())
	op.GeoM.Translate(o.Pos.X*float64(sw), o.Pos.Y*float64(sh))
	op.Filter = ebiten.FilterLinear
	if faded {
		op.ColorScale.ScaleAlpha(0.35)
	}
	screen.DrawImage(img, op)
}

// drawCollisionOverlay 绘制凸包轮廓和轴对齐碰撞框
func drawCollisionOverlay(screen *ebiten.Image, o *components.Object, sw, sh int) {
	data := o.CollisionData()
	if data.Empty() {
		return
	}

	toScreen := func(x, y float64) (float32, float32) {
		return float32(x * float64(sw)), float32(y * float64(sh))
	}

	hb := data.Hitbox()
	x, y := toScreen(o.Pos.X-hb.Left, o.Pos.Y-hb.Top)
	vector.StrokeRect(screen, x, y, float32(hb.Width()*float64(sw)), float32(hb.Height()*float64(sh)), 1, hitboxColor, false)

	pts := data.Hull()
	for k, p := range pts {
		q := pts[(k+1)%len(pts)]
		x0, y0 := toScreen(o.Pos.X+p.X, o.Pos.Y+p.Y)
		x1, y1 := toScreen(o.Pos.X+q.X, o.Pos.Y+q.Y)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, hullColor, true)
	}
}
