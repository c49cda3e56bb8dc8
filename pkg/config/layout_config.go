package config

// 布局配置常量
// 世界坐标系为 [0,1]²，原点在左上角，y 轴向下

const (
	// WindowWidth 默认窗口宽度（像素）
	WindowWidth = 600

	// WindowHeight 默认窗口高度（像素）
	WindowHeight = 600

	// VirtualWidth 默认虚拟分辨率宽度
	// 精灵像素宽度 / VirtualWidth = 世界单位宽度
	// 虚拟分辨率为正方形，旋转后的碰撞外形不会被拉伸
	VirtualWidth = 600

	// VirtualHeight 默认虚拟分辨率高度
	VirtualHeight = 600

	// SpriteSheetPath 精灵图集在嵌入资源中的路径
	SpriteSheetPath = "assets/sprites.png"

	// SpriteDescriptionPath 精灵描述文件路径
	SpriteDescriptionPath = "data/sprites.txt"

	// GameConfigPath 默认游戏配置文件路径
	GameConfigPath = "data/game.yaml"
)

// WorldToScreen 将世界坐标转换为屏幕像素坐标
func WorldToScreen(x, y float64, screenW, screenH int) (float64, float64) {
	return x * float64(screenW), y * float64(screenH)
}

// ScreenToWorld 将屏幕像素坐标转换为世界坐标
func ScreenToWorld(x, y float64, screenW, screenH int) (float64, float64) {
	if screenW <= 0 || screenH <= 0 {
		return 0, 0
	}
	return x / float64(screenW), y / float64(screenH)
}
