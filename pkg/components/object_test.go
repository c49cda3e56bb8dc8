package components

import (
	"testing"

	"github.com/gonewx/shmup/pkg/collision"
	"github.com/gonewx/shmup/pkg/geom"
	"github.com/gonewx/shmup/pkg/sprites"
)

func testSprite() *sprites.Descriptor {
	return &sprites.Descriptor{
		Kind: sprites.EnemyBullet,
		Hull: []geom.FPoint{{X: 0.04, Y: -0.01}, {X: 0.04, Y: 0.01}, {X: -0.04, Y: 0.01}, {X: -0.04, Y: -0.01}},
	}
}

func TestKindVariants(t *testing.T) {
	tests := []struct {
		kind   Kind
		sprite sprites.Kind
		frame  int
	}{
		{PlayerKind{State: PlayerTiltedRight}, sprites.Player, 2},
		{PlayerBulletKind{Flicker: 3}, sprites.PlayerBullet, 3},
		{EnemyBulletKind{}, sprites.EnemyBullet, 0},
	}

	for _, tt := range tests {
		if tt.kind.Sprite() != tt.sprite || tt.kind.Frame() != tt.frame {
			t.Errorf("%T: got (%v, %d), want (%v, %d)", tt.kind, tt.kind.Sprite(), tt.kind.Frame(), tt.sprite, tt.frame)
		}
	}
}

func TestObjectRebuildsOnlyOnChange(t *testing.T) {
	o := NewObject(EnemyBulletKind{}, testSprite(), geom.Pt(0.5, 0.5), geom.FromDeg(0), geom.Pt(1.0, 1.0))
	initial := o.CollisionData()
	if initial == nil {
		t.Fatal("collision data should be built on creation")
	}

	// 位置变化不重建
	o.Pos = geom.Pt(0.1, 0.2)
	o.SetAngle(geom.FromDeg(0))
	o.SetScale(geom.Pt(1.0, 1.0))
	o.Rotate(0)
	if o.CollisionData() != initial {
		t.Error("collision data rebuilt without orientation change")
	}

	// 旋转 90° 后横条变竖条
	o.Rotate(90)
	if o.CollisionData() == initial {
		t.Fatal("collision data should be rebuilt after rotation")
	}
	hb := o.CollisionData().Hitbox()
	if hb.Height() <= hb.Width() {
		t.Errorf("rotated hitbox should be taller than wide: %+v", hb)
	}

	rotated := o.CollisionData()
	o.SetScale(geom.Pt(2.0, 2.0))
	if o.CollisionData() == rotated {
		t.Error("collision data should be rebuilt after scaling")
	}
}

func TestObjectWithoutSprite(t *testing.T) {
	o := NewObject(PlayerKind{}, nil, geom.Pt(0.5, 0.5), geom.FromDeg(0), geom.Pt(1.0, 1.0))
	if o.CollisionData() != nil {
		t.Error("object without sprite should have no collision data")
	}
	if !o.CollisionData().Empty() {
		t.Error("nil collision data should be empty")
	}
}

func TestObjectsRemoveMarked(t *testing.T) {
	objs := Objects{
		NewObject(EnemyBulletKind{Flicker: 0}, testSprite(), geom.Pt(0.1, 0.1), geom.FromDeg(0), geom.Pt(1.0, 1.0)),
		NewObject(EnemyBulletKind{Flicker: 1}, testSprite(), geom.Pt(0.2, 0.2), geom.FromDeg(0), geom.Pt(1.0, 1.0)),
		NewObject(EnemyBulletKind{Flicker: 2}, testSprite(), geom.Pt(0.3, 0.3), geom.FromDeg(0), geom.Pt(1.0, 1.0)),
	}
	objs[0].MarkForRemoval()
	objs[2].MarkForRemoval()
	objs[2].MarkForRemoval() // 重复标记是幂等的

	kept, removed := objs.RemoveMarked()
	if removed != 2 || len(kept) != 1 {
		t.Fatalf("got %d kept, %d removed; want 1 kept, 2 removed", len(kept), removed)
	}
	if kept[0].Kind.Frame() != 1 {
		t.Errorf("wrong object kept: %+v", kept[0].Kind)
	}
}

func TestObjectsAsCollisionSet(t *testing.T) {
	// 回调通过下标修改对象，标记删除在同一次检测中可重复发生
	players := Objects{NewObject(PlayerKind{}, testSprite(), geom.Pt(0.5, 0.5), geom.FromDeg(0), geom.Pt(1.0, 1.0))}
	bullets := Objects{
		NewObject(EnemyBulletKind{}, testSprite(), geom.Pt(0.52, 0.5), geom.FromDeg(0), geom.Pt(1.0, 1.0)),
		NewObject(EnemyBulletKind{}, testSprite(), geom.Pt(0.9, 0.9), geom.FromDeg(0), geom.Pt(1.0, 1.0)),
	}

	collision.Detect(0, players, bullets, func(i, j int) {
		bullets[j].MarkForRemoval()
	})

	if !bullets[0].Marked || bullets[1].Marked {
		t.Errorf("marks: got %v %v, want true false", bullets[0].Marked, bullets[1].Marked)
	}
}
