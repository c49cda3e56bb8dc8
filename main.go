package main

import (
	"flag"
	"log"
	"os"

	"github.com/gonewx/shmup/pkg/app"
	"github.com/gonewx/shmup/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "外部游戏配置文件（默认使用内置 data/game.yaml）")
	hitboxes := flag.Bool("hitboxes", false, "启动时显示碰撞框调试层")
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		ConfigPath:   *configPath,
		ShowHitboxes: *hitboxes,
	})
	if err != nil {
		// 非 verbose 模式下日志被丢弃，致命错误仍需输出
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	window := gameApp.GameConfig().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetFullscreen(gameApp.Fullscreen())

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
