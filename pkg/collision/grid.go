package collision

import (
	"math"

	"github.com/gonewx/shmup/pkg/geom"
)

// GridSize 网格在每个轴上的格子数，覆盖世界坐标 [0,1]×[0,1]
const GridSize = 10

// cellSpan 实体包围盒覆盖的格子范围（两端包含）
type cellSpan struct {
	x0, y0, x1, y1 int
}

// spatialGrid 均匀网格，每次检测时重新构建，不跨帧保留
type spatialGrid struct {
	n     int
	cells [][]int // 格子索引 (y*n + x) -> B 组实体下标
}

func newSpatialGrid(n int) *spatialGrid {
	return &spatialGrid{
		n:     n,
		cells: make([][]int, n*n),
	}
}

// insert 将实体下标登记到 span 覆盖的每一个格子
func (g *spatialGrid) insert(index int, span cellSpan) {
	for y := span.y0; y <= span.y1; y++ {
		for x := span.x0; x <= span.x1; x++ {
			c := y*g.n + x
			g.cells[c] = append(g.cells[c], index)
		}
	}
}

// at 返回格子 (x, y) 中登记的下标
func (g *spatialGrid) at(x, y int) []int {
	return g.cells[y*g.n+x]
}

// spanOf 计算位于 pos、包围盒为 hb 的实体覆盖的格子范围
// 包围盒先向四周扩展 inflate，再裁剪到 [0,1]²。
// 坐标不是有限值时返回 ok=false，该实体不参与本次检测。
func spanOf(pos geom.FPoint, hb Hitbox, inflate float64, n int) (span cellSpan, ok bool) {
	left := pos.X - hb.Left - inflate
	right := pos.X + hb.Right + inflate
	top := pos.Y - hb.Top - inflate
	bottom := pos.Y + hb.Bottom + inflate

	if !finite(left) || !finite(right) || !finite(top) || !finite(bottom) {
		return cellSpan{}, false
	}

	return cellSpan{
		x0: cellCoord(left, n),
		y0: cellCoord(top, n),
		x1: cellCoord(right, n),
		y1: cellCoord(bottom, n),
	}, true
}

// firstShared 返回两个范围交集的左上角格子
func firstShared(a, b cellSpan) (x, y int) {
	return max(a.x0, b.x0), max(a.y0, b.y0)
}

func cellCoord(v float64, n int) int {
	c := int(math.Max(0, math.Min(1, v)) * float64(n))
	if c >= n {
		c = n - 1
	}
	return c
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
