package collision

import (
	"math"
	"reflect"
	"testing"

	"github.com/gonewx/shmup/pkg/geom"
	"github.com/gonewx/shmup/pkg/sprites"
)

// squareDescriptor 返回边长为 side、以原点为中心的正方形（y 向下顺时针）
func squareDescriptor(side float64) *sprites.Descriptor {
	h := side / 2
	return &sprites.Descriptor{
		Kind: sprites.EnemyBullet,
		Hull: []geom.FPoint{{X: h, Y: -h}, {X: h, Y: h}, {X: -h, Y: h}, {X: -h, Y: -h}},
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func approxHitbox(a, b Hitbox) bool {
	return approx(a.Left, b.Left) && approx(a.Top, b.Top) &&
		approx(a.Right, b.Right) && approx(a.Bottom, b.Bottom)
}

func TestBuildSquare(t *testing.T) {
	data := Build(squareDescriptor(0.1), geom.FromDeg(0), geom.Pt(1.0, 1.0))

	want := Hitbox{Left: 0.05, Top: 0.05, Right: 0.05, Bottom: 0.05}
	if data.Hitbox() != want {
		t.Errorf("Hitbox: got %+v, want %+v", data.Hitbox(), want)
	}
	if data.Range() != geom.Pt(0.05, 0.05) {
		t.Errorf("Range: got %v", data.Range())
	}

	// 四条边的外法线：右、下、左、上
	normals := data.Normals()
	if len(normals) != 4 {
		t.Fatalf("Normals: got %d, want 4", len(normals))
	}
	wantDirs := [][2]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	for i, n := range normals {
		dir := n.Dir()
		if !approx(dir[0], wantDirs[i][0]) || !approx(dir[1], wantDirs[i][1]) {
			t.Errorf("normal %d: got %v, want %v", i, dir, wantDirs[i])
		}
	}
}

func TestBuildRotationIdentity(t *testing.T) {
	// 不对称凸包：0° 且缩放为 1 时包围盒等于原始凸包的包围盒
	desc := &sprites.Descriptor{
		Hull: []geom.FPoint{{X: 0.02, Y: -0.03}, {X: 0.04, Y: 0.01}, {X: -0.01, Y: 0.05}},
	}

	data := Build(desc, geom.FromDeg(0), geom.Pt(1.0, 1.0))
	want := Hitbox{Left: 0.01, Top: 0.03, Right: 0.04, Bottom: 0.05}
	if data.Hitbox() != want {
		t.Errorf("Hitbox: got %+v, want %+v", data.Hitbox(), want)
	}
	if !reflect.DeepEqual(data.Hull(), desc.Hull) {
		t.Errorf("Hull should be unchanged: got %v", data.Hull())
	}
}

func TestBuildRotated(t *testing.T) {
	// 0.1 x 0.02 的横条旋转 90° 后变为竖条
	desc := &sprites.Descriptor{
		Hull: []geom.FPoint{{X: 0.05, Y: -0.01}, {X: 0.05, Y: 0.01}, {X: -0.05, Y: 0.01}, {X: -0.05, Y: -0.01}},
	}

	data := Build(desc, geom.FromDeg(90), geom.Pt(1.0, 1.0))
	want := Hitbox{Left: 0.01, Top: 0.05, Right: 0.01, Bottom: 0.05}
	if !approxHitbox(data.Hitbox(), want) {
		t.Errorf("Hitbox: got %+v, want %+v", data.Hitbox(), want)
	}
	if !approx(data.Range().X, 0.01) || !approx(data.Range().Y, 0.05) {
		t.Errorf("Range: got %v, want (0.01, 0.05)", data.Range())
	}

	// 旋转 45° 的正方形，包围盒半宽为 0.05*√2
	diag := Build(squareDescriptor(0.1), geom.FromDeg(45), geom.Pt(1.0, 1.0))
	half := 0.05 * math.Sqrt2
	if !approxHitbox(diag.Hitbox(), Hitbox{Left: half, Top: half, Right: half, Bottom: half}) {
		t.Errorf("45° Hitbox: got %+v, want all %v", diag.Hitbox(), half)
	}
}

func TestBuildScaled(t *testing.T) {
	data := Build(squareDescriptor(0.1), geom.FromDeg(0), geom.Pt(2.0, 0.5))
	want := Hitbox{Left: 0.1, Top: 0.025, Right: 0.1, Bottom: 0.025}
	if !approxHitbox(data.Hitbox(), want) {
		t.Errorf("Hitbox: got %+v, want %+v", data.Hitbox(), want)
	}
}

func TestBuildHitboxNonNegative(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 15 {
		data := Build(squareDescriptor(0.08), geom.FromDeg(deg), geom.Pt(1.0, 1.5))
		hb := data.Hitbox()
		if hb.Left < 0 || hb.Top < 0 || hb.Right < 0 || hb.Bottom < 0 {
			t.Errorf("%v°: negative hitbox offset %+v", deg, hb)
		}
	}
}

func TestBuildDegenerate(t *testing.T) {
	single := Build(&sprites.Descriptor{Hull: []geom.FPoint{{X: 0.01, Y: 0.02}}}, geom.FromDeg(0), geom.Pt(1.0, 1.0))
	if len(single.Normals()) != 0 {
		t.Errorf("single vertex hull should have no normals, got %d", len(single.Normals()))
	}
	if single.Empty() {
		t.Error("single vertex hull is not empty")
	}
	if single.Hitbox() != (Hitbox{Right: 0.01, Bottom: 0.02}) {
		t.Errorf("single vertex Hitbox: got %+v", single.Hitbox())
	}

	empty := Build(&sprites.Descriptor{}, geom.FromDeg(30), geom.Pt(1.0, 1.0))
	if !empty.Empty() {
		t.Error("empty hull should report Empty()")
	}
	if empty.Hitbox() != (Hitbox{}) {
		t.Errorf("empty Hitbox: got %+v, want zero", empty.Hitbox())
	}
	if len(empty.Normals()) != 0 {
		t.Error("empty hull should have no normals")
	}

	var missing *Data
	if !missing.Empty() {
		t.Error("nil data should report Empty()")
	}
}

func TestBuildIsPure(t *testing.T) {
	desc := squareDescriptor(0.07)
	a := Build(desc, geom.FromDeg(33), geom.Pt(1.2, 0.8))
	b := Build(desc, geom.FromDeg(33), geom.Pt(1.2, 0.8))
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Build is not deterministic:\n%+v\n%+v", a, b)
	}
}

func TestBuildFromExtractedSprite(t *testing.T) {
	// 从真实描述表构建：4x4 全不透明精灵，虚拟分辨率 100
	desc := &sprites.Descriptor{
		Hull: []geom.FPoint{{X: 0.015, Y: -0.015}, {X: 0.015, Y: 0.015}, {X: -0.015, Y: 0.015}, {X: -0.015, Y: -0.015}},
	}
	data := Build(desc, geom.FromDeg(0), geom.Pt(1.0, 1.0))
	if data.Hitbox().Width() != 0.03 || data.Hitbox().Height() != 0.03 {
		t.Errorf("size: got %v x %v", data.Hitbox().Width(), data.Hitbox().Height())
	}
}
