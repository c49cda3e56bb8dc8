package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/shmup/pkg/geom"
)

// Body 参与检测的实体视图：世界坐标位置及其碰撞数据
type Body struct {
	Pos  geom.FPoint
	Data *Data
}

// Set 一组参与检测的实体
//
// 检测期间通过下标访问实体，回调同样以下标回传，
// 调用方据此修改自己持有的实体（例如打上删除标记）。
type Set interface {
	Len() int
	Body(i int) Body
}

// Bodies 是最简单的 Set 实现
type Bodies []Body

func (b Bodies) Len() int        { return len(b) }
func (b Bodies) Body(i int) Body { return b[i] }

// Detector 碰撞检测器
//
// 除容差配置外不持有任何状态，Detect 可重入。
type Detector struct {
	// Allowance 容差（世界单位）：间隙小于该值的两个实体也视为碰撞
	Allowance float64

	// UniquePairs 为 true 时，同一对实体在一次 Detect 中最多回调一次。
	// 默认 false：实体跨越多个共享格子时，同一对可能被重复测试并重复回调。
	UniquePairs bool
}

// NewDetector 创建检测器
func NewDetector(allowance float64) *Detector {
	return &Detector{Allowance: allowance}
}

// Detect 使用给定容差检测 a、b 两组实体之间的碰撞
func Detect(allowance float64, a, b Set, onCollision func(i, j int)) {
	NewDetector(allowance).Detect(a, b, onCollision)
}

// Detect 检测 a、b 两组实体之间的碰撞，对每个确认的碰撞对同步调用 onCollision(i, j)
// 任一组为 nil 时直接返回
//
// 流程：
//  1. 将 b 组每个实体登记到其包围盒覆盖的所有网格
//  2. 对 a 组每个实体，遍历其（按容差扩展后的）包围盒覆盖的格子
//  3. 对格子中的每个 b 候选依次执行 Range、Hitbox、SAT 测试
func (d *Detector) Detect(a, b Set, onCollision func(i, j int)) {
	if a == nil || b == nil {
		return
	}
	nb := b.Len()
	if nb == 0 || a.Len() == 0 {
		return
	}

	grid := newSpatialGrid(GridSize)
	var spans []cellSpan
	if d.UniquePairs {
		spans = make([]cellSpan, nb)
	}

	for j := 0; j < nb; j++ {
		body := b.Body(j)
		if body.Data == nil {
			continue
		}
		span, ok := spanOf(body.Pos, body.Data.hitbox, 0, GridSize)
		if !ok {
			continue
		}
		grid.insert(j, span)
		if spans != nil {
			spans[j] = span
		}
	}

	for i := 0; i < a.Len(); i++ {
		bodyA := a.Body(i)
		if bodyA.Data == nil {
			continue
		}
		span, ok := spanOf(bodyA.Pos, bodyA.Data.hitbox, d.Allowance, GridSize)
		if !ok {
			continue
		}

		for cy := span.y0; cy <= span.y1; cy++ {
			for cx := span.x0; cx <= span.x1; cx++ {
				for _, j := range grid.at(cx, cy) {
					if spans != nil {
						if fx, fy := firstShared(span, spans[j]); fx != cx || fy != cy {
							continue
						}
					}
					// 回调可能修改 a 组实体，每次重新读取
					if d.Collides(a.Body(i), b.Body(j)) {
						onCollision(i, j)
					}
				}
			}
		}
	}
}

// Collides 对单个实体对执行窄相位测试
//
// 三个过滤器按代价递增：Range → Hitbox → SAT，任一失败即返回 false。
// 任一方凸包为空时永远返回 false；位置为 NaN 时所有比较均失败，同样返回 false。
func (d *Detector) Collides(a, b Body) bool {
	if a.Data.Empty() || b.Data.Empty() {
		return false
	}
	return d.rangeOverlap(a, b) && d.hitboxOverlap(a, b) && !d.separated(a, b)
}

func (d *Detector) rangeOverlap(a, b Body) bool {
	ra, rb := a.Data.rng, b.Data.rng
	return math.Abs(a.Pos.X-b.Pos.X) < ra.X+rb.X+d.Allowance &&
		math.Abs(a.Pos.Y-b.Pos.Y) < ra.Y+rb.Y+d.Allowance
}

func (d *Detector) hitboxOverlap(a, b Body) bool {
	ha, hb := a.Data.hitbox, b.Data.hitbox
	allow := d.Allowance
	return a.Pos.X+ha.Right+allow > b.Pos.X-hb.Left &&
		b.Pos.X+hb.Right+allow > a.Pos.X-ha.Left &&
		a.Pos.Y+ha.Bottom+allow > b.Pos.Y-hb.Top &&
		b.Pos.Y+hb.Bottom+allow > a.Pos.Y-ha.Top
}

// separated 在两者全部法线上寻找分离轴
// 投影区间的间隙不小于容差即视为分离
func (d *Detector) separated(a, b Body) bool {
	for _, axes := range [2][]mgl64.Vec2{a.Data.axes, b.Data.axes} {
		for _, axis := range axes {
			minA, maxA := project(a, axis)
			minB, maxB := project(b, axis)
			if maxA+d.Allowance <= minB || maxB+d.Allowance <= minA {
				return true
			}
		}
	}
	return false
}

// project 返回实体凸包（平移到世界坐标后）在 axis 上的投影区间
func project(body Body, axis mgl64.Vec2) (lo, hi float64) {
	origin := body.Pos.Vec2()
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range body.Data.hull {
		v := origin.Add(p.Vec2()).Dot(axis)
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
