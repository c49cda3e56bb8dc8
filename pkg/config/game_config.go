package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 配置校验失败
var ErrInvalidConfig = errors.New("invalid game config")

// GameConfig 游戏配置
//
// 配置文件位置: data/game.yaml
// 所有速度、坐标和容差都使用世界单位（[0,1]² 空间），时间单位为秒。
type GameConfig struct {
	Window            WindowConfig    `yaml:"window"`
	VirtualDimensions DimensionConfig `yaml:"virtualDimensions"`
	Speeds            SpeedConfig     `yaml:"speeds"`
	Collision         CollisionConfig `yaml:"collision"`
	Player            PlayerConfig    `yaml:"player"`
	Emitter           EmitterConfig   `yaml:"emitter"`
	Bullets           BulletConfig    `yaml:"bullets"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// DimensionConfig 虚拟分辨率
//
// 精灵的像素尺寸除以虚拟分辨率得到世界单位尺寸。
type DimensionConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig 移动速度（世界单位/秒）
type SpeedConfig struct {
	PlayerX      float64 `yaml:"playerX"`
	PlayerY      float64 `yaml:"playerY"`
	Background   float64 `yaml:"background"`
	PlayerBullet float64 `yaml:"playerBullet"`
	EnemyBullet  float64 `yaml:"enemyBullet"`
}

// CollisionConfig 碰撞检测配置
type CollisionConfig struct {
	// Allowance 容差：间隙小于该值即视为碰撞
	Allowance float64 `yaml:"allowance"`
	// DedupePairs 为 true 时同一对实体每次检测只回调一次
	DedupePairs bool `yaml:"dedupePairs"`
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	Lives            int     `yaml:"lives"`
	FireInterval     float64 `yaml:"fireInterval"`     // 两次射击的最小间隔（秒）
	InvulnerableTime float64 `yaml:"invulnerableTime"` // 被击中后的无敌时间（秒）
	StartX           float64 `yaml:"startX"`
	StartY           float64 `yaml:"startY"`
}

// EmitterConfig 敌方弹幕发射器配置
type EmitterConfig struct {
	Interval         float64 `yaml:"interval"`         // 两轮齐射的间隔（秒）
	BulletsPerVolley int     `yaml:"bulletsPerVolley"` // 每轮子弹数，均匀分布在整圆上
	SpinDegrees      float64 `yaml:"spinDegrees"`      // 每轮齐射起始角的增量（度）
	OriginX          float64 `yaml:"originX"`
	OriginY          float64 `yaml:"originY"`
}

// BulletConfig 子弹配置
type BulletConfig struct {
	Lifetime             float64 `yaml:"lifetime"`             // 最长存活时间（秒）
	SpinDegreesPerSecond float64 `yaml:"spinDegreesPerSecond"` // 敌方子弹自转速度
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  "Shmup",
		},
		VirtualDimensions: DimensionConfig{
			Width:  VirtualWidth,
			Height: VirtualHeight,
		},
		Speeds: SpeedConfig{
			PlayerX:      0.6,
			PlayerY:      0.6,
			Background:   0.05,
			PlayerBullet: 1.2,
			EnemyBullet:  0.25,
		},
		Collision: CollisionConfig{
			Allowance:   0.002,
			DedupePairs: false,
		},
		Player: PlayerConfig{
			Lives:            3,
			FireInterval:     0.12,
			InvulnerableTime: 1.5,
			StartX:           0.5,
			StartY:           0.85,
		},
		Emitter: EmitterConfig{
			Interval:         0.25,
			BulletsPerVolley: 12,
			SpinDegrees:      7,
			OriginX:          0.5,
			OriginY:          0.25,
		},
		Bullets: BulletConfig{
			Lifetime:             6,
			SpinDegreesPerSecond: 180,
		},
	}
}

// LoadGameConfig 从文件加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 校验通过的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 格式的游戏配置
//
// 未出现在 YAML 中的字段保留 DefaultGameConfig 的值。
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 窗口尺寸和虚拟分辨率为正
//   - 容差非负
//   - 速度、坐标为有限值
//   - 每轮齐射至少一颗子弹
func (c *GameConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d",
			ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}

	if c.VirtualDimensions.Width <= 0 || c.VirtualDimensions.Height <= 0 {
		return fmt.Errorf("%w: virtual dimensions must be positive, got %dx%d",
			ErrInvalidConfig, c.VirtualDimensions.Width, c.VirtualDimensions.Height)
	}

	if !finite(c.Collision.Allowance) || c.Collision.Allowance < 0 {
		return fmt.Errorf("%w: collision allowance must be >= 0, got %v",
			ErrInvalidConfig, c.Collision.Allowance)
	}

	values := map[string]float64{
		"speeds.playerX":               c.Speeds.PlayerX,
		"speeds.playerY":               c.Speeds.PlayerY,
		"speeds.background":            c.Speeds.Background,
		"speeds.playerBullet":          c.Speeds.PlayerBullet,
		"speeds.enemyBullet":           c.Speeds.EnemyBullet,
		"player.startX":                c.Player.StartX,
		"player.startY":                c.Player.StartY,
		"emitter.originX":              c.Emitter.OriginX,
		"emitter.originY":              c.Emitter.OriginY,
		"emitter.spinDegrees":          c.Emitter.SpinDegrees,
		"bullets.spinDegreesPerSecond": c.Bullets.SpinDegreesPerSecond,
	}
	for name, v := range values {
		if !finite(v) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidConfig, name, v)
		}
	}

	if c.Player.Lives <= 0 {
		return fmt.Errorf("%w: player.lives must be positive, got %d", ErrInvalidConfig, c.Player.Lives)
	}

	if c.Player.FireInterval <= 0 || c.Emitter.Interval <= 0 {
		return fmt.Errorf("%w: fire and emitter intervals must be positive", ErrInvalidConfig)
	}

	if c.Emitter.BulletsPerVolley < 1 {
		return fmt.Errorf("%w: emitter.bulletsPerVolley must be >= 1, got %d",
			ErrInvalidConfig, c.Emitter.BulletsPerVolley)
	}

	if c.Bullets.Lifetime < 0 {
		return fmt.Errorf("%w: bullets.lifetime must be >= 0, got %v", ErrInvalidConfig, c.Bullets.Lifetime)
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
