package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/embedded"
	"github.com/gonewx/shmup/pkg/scenes"
)

// isolateHome 将 gdata 存储目录指向临时目录
func isolateHome(t *testing.T) {
	t.Helper()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })
}

// TestNewApp 测试使用仓库资源启动
func TestNewApp(t *testing.T) {
	isolateHome(t)

	a, err := NewApp(Config{Verbose: true, Resources: os.DirFS("../.."), ShowHitboxes: true})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}

	w, h := a.Layout(1920, 1080)
	if w != a.GameConfig().Window.Width || h != a.GameConfig().Window.Height {
		t.Errorf("Layout() = %dx%d", w, h)
	}

	scene, ok := a.GetSceneManager().GetCurrentScene().(*scenes.GameScene)
	if !ok {
		t.Fatalf("current scene: got %T, want *scenes.GameScene", a.GetSceneManager().GetCurrentScene())
	}
	if !scene.ShowHitboxes() {
		t.Error("--hitboxes should enable the overlay")
	}
	if !a.IsVerbose() {
		t.Error("IsVerbose() = false")
	}
}

// TestNewAppConfigPath 测试外部配置文件覆盖嵌入配置
func TestNewAppConfigPath(t *testing.T) {
	isolateHome(t)

	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte("window: {width: 400, height: 300}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := NewApp(Config{Verbose: true, Resources: os.DirFS("../.."), ConfigPath: path})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	if w, h := a.Layout(0, 0); w != 400 || h != 300 {
		t.Errorf("Layout() = %dx%d, want 400x300", w, h)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("collision: {allowance: -1}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewApp(Config{Verbose: true, Resources: os.DirFS("../.."), ConfigPath: bad}); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("invalid config error = %v, want ErrInvalidConfig", err)
	}
}

// TestNewAppWithoutResources 测试未初始化嵌入资源时的错误
func TestNewAppWithoutResources(t *testing.T) {
	if embedded.IsInitialized() {
		t.Skip("embedded resources already initialized")
	}
	if _, err := NewApp(Config{Verbose: true}); !errors.Is(err, embedded.ErrNotInitialized) {
		t.Errorf("error = %v, want ErrNotInitialized", err)
	}
}
