package systems

import (
	"fmt"
	"math"

	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/entities"
	"github.com/gonewx/shmup/pkg/geom"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// tiltThreshold 水平输入超过该值时玩家飞机倾斜
const tiltThreshold = 0.2

// gamepadDeadZone 摇杆死区
const gamepadDeadZone = 0.15

// Intent 一帧的玩家输入
type Intent struct {
	Move           geom.FPoint // 每个分量在 [-1,1]，y 向下为正
	Fire           bool
	ToggleHitboxes bool
	Restart        bool
}

// IntentSource 读取一帧输入
type IntentSource func() Intent

// InputSystem 处理玩家输入：移动、倾斜和射击
type InputSystem struct {
	source  IntentSource
	sprites entities.SpriteSource
	cfg     *config.GameConfig
}

// NewInputSystem 创建输入系统
//
// 参数:
//   - source: 输入来源，nil 时读取键盘和手柄
//   - src: 精灵源（用于创建玩家子弹）
//   - cfg: 游戏配置
func NewInputSystem(source IntentSource, src entities.SpriteSource, cfg *config.GameConfig) *InputSystem {
	if source == nil {
		source = ReadIntent
	}
	return &InputSystem{source: source, sprites: src, cfg: cfg}
}

// Update 读取输入并作用于玩家，返回本帧输入供场景处理全局按键
func (s *InputSystem) Update(w *World, dt float64) (Intent, error) {
	intent := s.source()
	if len(w.Player) == 0 {
		return intent, nil
	}

	p := &w.Player[0]
	move := intent.Move
	if l := math.Hypot(move.X, move.Y); l > 1 {
		move = geom.Pt(move.X/l, move.Y/l)
	}
	p.Velocity = geom.Pt(move.X*s.cfg.Speeds.PlayerX, move.Y*s.cfg.Speeds.PlayerY)

	state := components.PlayerNormal
	switch {
	case move.X < -tiltThreshold:
		state = components.PlayerTiltedLeft
	case move.X > tiltThreshold:
		state = components.PlayerTiltedRight
	}
	p.Kind = components.PlayerKind{State: state}

	if intent.Fire && w.Status.FireCooldown <= 0 {
		muzzle := p.Pos
		if data := p.CollisionData(); data != nil {
			muzzle.Y -= data.Hitbox().Top
		}
		bullet, err := entities.NewPlayerBullet(s.sprites, s.cfg, muzzle)
		if err != nil {
			return intent, fmt.Errorf("failed to fire: %w", err)
		}
		w.PlayerBullets = append(w.PlayerBullets, bullet)
		w.Status.FireCooldown = s.cfg.Player.FireInterval
	}

	return intent, nil
}

// ReadIntent 从键盘和第一个标准布局手柄读取输入
//
// 方向键或 WASD 移动，空格或 Z 射击，H 切换碰撞框显示，R 重新开始。
func ReadIntent() Intent {
	var intent Intent

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		intent.Move.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		intent.Move.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		intent.Move.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		intent.Move.Y++
	}
	intent.Fire = ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyZ)
	intent.ToggleHitboxes = inpututil.IsKeyJustPressed(ebiten.KeyH)
	intent.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(x) > gamepadDeadZone {
			intent.Move.X += x
		}
		if math.Abs(y) > gamepadDeadZone {
			intent.Move.Y += y
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			intent.Fire = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			intent.Restart = true
		}
		break
	}

	return intent
}
