package sprites

import (
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io/fs"

	"github.com/gonewx/shmup/pkg/geom"
	"github.com/gonewx/shmup/pkg/hull"
)

// Sheet 解码后的精灵图及其描述表
type Sheet struct {
	Image image.Image
	Table *Table
}

// LoadSheet 从文件系统读取精灵图和描述文件并构建描述表
//
// 描述表必须包含全部精灵种类；任何读取、解码或描述错误都返回给调用方，
// 启动阶段应将其视为致命错误。
//
// 参数:
//   - fsys: 资源文件系统（嵌入资源或磁盘目录）
//   - sheetPath: 精灵图路径（PNG）
//   - descPath: 描述文件路径
//   - virtualDims: 虚拟分辨率
func LoadSheet(fsys fs.FS, sheetPath, descPath string, virtualDims geom.IPoint) (*Sheet, error) {
	f, err := fsys.Open(sheetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sprite sheet %s: %w", sheetPath, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite sheet %s: %w", sheetPath, err)
	}

	text, err := fs.ReadFile(fsys, descPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite description %s: %w", descPath, err)
	}

	entries, err := ParseDescription(string(text))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", descPath, err)
	}

	pixels := hull.PixelsFromImage(img)
	table, err := NewTable(pixels, pixels.Size(), entries, virtualDims)
	if err != nil {
		return nil, err
	}
	if err := table.Require(Kinds()...); err != nil {
		return nil, fmt.Errorf("%s: %w", descPath, err)
	}

	return &Sheet{Image: img, Table: table}, nil
}
