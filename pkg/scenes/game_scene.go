package scenes

import (
	"fmt"
	"log"

	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/entities"
	"github.com/gonewx/shmup/pkg/game"
	"github.com/gonewx/shmup/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// Resources 场景需要的资源：精灵描述和帧纹理
type Resources interface {
	entities.SpriteSource
	systems.FrameSource
}

// Deps GameScene 的外部依赖
type Deps struct {
	Resources    Resources
	SceneManager *game.SceneManager // 用于重新开始，可为 nil
	Config       *config.GameConfig
	Settings     *game.SettingsManager // 可为 nil
	Scores       *game.ScoreManager    // 可为 nil

	// Input 输入来源，nil 时读取键盘和手柄
	Input systems.IntentSource
}

// GameScene represents the main gameplay screen.
//
// 每帧按固定顺序运行各系统：输入、发射器、移动、生命周期、动画、碰撞，
// 最后统一清理本帧被标记的对象。
type GameScene struct {
	deps  Deps
	world *systems.World

	inputSystem     *systems.InputSystem
	emitterSystem   *systems.EmitterSystem
	movementSystem  *systems.MovementSystem
	lifetimeSystem  *systems.LifetimeSystem
	animationSystem *systems.AnimationSystem
	physicsSystem   *systems.PhysicsSystem
	renderSystem    *systems.RenderSystem

	gameOver bool
	elapsed  float64
}

// NewGameScene 创建游戏场景并放置玩家
func NewGameScene(deps Deps) (*GameScene, error) {
	if deps.Resources == nil || deps.Config == nil {
		return nil, fmt.Errorf("game scene requires resources and config")
	}
	cfg := deps.Config

	player, err := entities.NewPlayer(deps.Resources, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	showHitboxes := false
	if deps.Settings != nil {
		showHitboxes = deps.Settings.GetSettings().ShowHitboxes
	}

	s := &GameScene{
		deps: deps,
		world: &systems.World{
			Player: components.Objects{player},
			Status: components.PlayerStatus{Lives: cfg.Player.Lives},
		},
		inputSystem:     systems.NewInputSystem(deps.Input, deps.Resources, cfg),
		emitterSystem:   systems.NewEmitterSystem(deps.Resources, cfg),
		movementSystem:  systems.NewMovementSystem(cfg.Speeds.Background),
		lifetimeSystem:  systems.NewLifetimeSystem(),
		animationSystem: systems.NewAnimationSystem(systems.DefaultFlickerPeriod),
		physicsSystem:   systems.NewPhysicsSystem(cfg),
		renderSystem:    systems.NewRenderSystem(deps.Resources, showHitboxes),
	}

	log.Printf("[GameScene] Started: lives=%d allowance=%.4f dedupe=%v",
		cfg.Player.Lives, cfg.Collision.Allowance, cfg.Collision.DedupePairs)
	return s, nil
}

// World 返回场景中的对象
func (s *GameScene) World() *systems.World {
	return s.world
}

// IsGameOver 玩家是否已耗尽生命
func (s *GameScene) IsGameOver() bool {
	return s.gameOver
}

// ShowHitboxes 是否显示碰撞框调试层
func (s *GameScene) ShowHitboxes() bool {
	return s.renderSystem.ShowHitboxes
}

// SetShowHitboxes 设置碰撞框调试层并写入设置
func (s *GameScene) SetShowHitboxes(show bool) {
	s.renderSystem.ShowHitboxes = show
	if s.deps.Settings == nil {
		return
	}
	s.deps.Settings.SetShowHitboxes(show)
	if err := s.deps.Settings.Save(); err != nil {
		log.Printf("[GameScene] Warning: failed to save settings: %v", err)
	}
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) error {
	s.elapsed += deltaTime
	w := s.world

	intent, err := s.inputSystem.Update(w, deltaTime)
	if err != nil {
		return err
	}
	if intent.ToggleHitboxes {
		s.SetShowHitboxes(!s.renderSystem.ShowHitboxes)
	}
	if s.gameOver && intent.Restart {
		return s.restart()
	}

	w.Status.Tick(deltaTime)

	if _, err := s.emitterSystem.Update(w, deltaTime); err != nil {
		return err
	}
	s.movementSystem.Update(w, deltaTime)
	s.lifetimeSystem.Update(w, deltaTime)
	s.animationSystem.Update(w)
	s.physicsSystem.Update(w)
	w.Sweep()

	if !s.gameOver && !w.Status.Alive() {
		s.gameOver = true
		log.Printf("[GameScene] Game over: score=%d time=%.1fs", w.Status.Score, s.elapsed)
		s.submitScore()
	}
	return nil
}

// Draw 绘制场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	hud := systems.HUD{GameOver: s.gameOver, FPS: ebiten.ActualFPS()}
	if s.deps.Scores != nil {
		hud.HighScore = s.deps.Scores.Best().Score
	}
	s.renderSystem.Draw(screen, s.world, hud)
}

// SaveOnExit 窗口关闭时提交当前成绩
func (s *GameScene) SaveOnExit() bool {
	s.submitScore()
	return true
}

func (s *GameScene) submitScore() {
	if s.deps.Scores == nil {
		return
	}
	s.deps.Scores.Submit(s.world.Status.Score, s.world.Status.Hits)
}

// restart 通过场景管理器重新开始；没有场景管理器时原地重置
func (s *GameScene) restart() error {
	if s.deps.SceneManager != nil {
		return s.deps.SceneManager.Restart()
	}

	fresh, err := NewGameScene(s.deps)
	if err != nil {
		return err
	}
	*s = *fresh
	return nil
}
