// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"

	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/embedded"
	"github.com/gonewx/shmup/pkg/game"
	"github.com/gonewx/shmup/pkg/geom"
	"github.com/gonewx/shmup/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// appName gdata 存储目录名
const appName = "gonewx_shmup"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部游戏配置文件路径，为空则使用嵌入的 data/game.yaml
	ConfigPath string
	// ShowHitboxes 启动时显示碰撞框（覆盖已保存的设置）
	ShowHitboxes bool
	// Resources 资源文件系统，为空则使用嵌入资源
	Resources fs.FS
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	gameConfig   *config.GameConfig
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入资源时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	resources := cfg.Resources
	if resources == nil {
		if !embedded.IsInitialized() {
			return nil, embedded.ErrNotInitialized
		}
		resources = embedded.FS()
	}

	gameConfig, err := loadGameConfig(cfg.ConfigPath, resources)
	if err != nil {
		return nil, err
	}

	resourceManager := game.NewResourceManager(resources)
	dims := geom.Pt(gameConfig.VirtualDimensions.Width, gameConfig.VirtualDimensions.Height)
	if err := resourceManager.LoadSpriteSheet(config.SpriteSheetPath, config.SpriteDescriptionPath, dims); err != nil {
		return nil, fmt.Errorf("精灵资源加载失败: %w", err)
	}

	// gdata 打开失败时进入降级模式（设置和最高分只保存在内存中）
	gdataManager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		gdataManager = nil
	}
	settings := game.NewSettingsManager(gdataManager)
	if cfg.ShowHitboxes {
		settings.SetShowHitboxes(true)
	}
	scores := game.NewScoreManager(gdataManager)

	sceneManager := game.NewSceneManager()
	deps := scenes.Deps{
		Resources:    resourceManager,
		SceneManager: sceneManager,
		Config:       gameConfig,
		Settings:     settings,
		Scores:       scores,
	}
	sceneManager.SetSceneFactory(func() (game.Scene, error) {
		return scenes.NewGameScene(deps)
	})
	if err := sceneManager.Restart(); err != nil {
		return nil, fmt.Errorf("游戏场景创建失败: %w", err)
	}

	log.Printf("[App] Started: window=%dx%d virtual=%dx%d",
		gameConfig.Window.Width, gameConfig.Window.Height, dims.X, dims.Y)

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		gameConfig:   gameConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// loadGameConfig 优先读取外部配置文件，否则解析资源中的 data/game.yaml
func loadGameConfig(path string, resources fs.FS) (*config.GameConfig, error) {
	if path != "" {
		gameConfig, err := config.LoadGameConfig(path)
		if err != nil {
			return nil, fmt.Errorf("游戏配置加载失败: %w", err)
		}
		log.Printf("[Config] 加载游戏配置: %s", path)
		return gameConfig, nil
	}

	data, err := fs.ReadFile(resources, config.GameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置读取失败: %w", err)
	}
	gameConfig, err := config.ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	return gameConfig, nil
}

// GameConfig 返回生效的游戏配置
func (a *App) GameConfig() *config.GameConfig {
	return a.gameConfig
}

// Fullscreen 返回已保存的全屏设置
func (a *App) Fullscreen() bool {
	return a.settings.GetSettings().Fullscreen
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.sceneManager.SaveOnExit()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.gameConfig.Window.Width, a.gameConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		if !fullscreen {
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		}
		a.settings.SetFullscreen(fullscreen)
		if err := a.settings.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	return a.sceneManager.Update(deltaTime)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.Window.Width, a.gameConfig.Window.Height
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
