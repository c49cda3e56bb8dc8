// Package hull 从精灵的 alpha 通道提取凸轮廓
//
// 提取只在加载阶段对每种精灵执行一次，结果保存在精灵描述表中，
// 不会在每帧调用。
package hull

import "github.com/gonewx/shmup/pkg/geom"

// Hull 凸多边形顶点（子图局部像素坐标，屏幕坐标系下顺时针）
//
// 相邻顶点之间不存在共线的中间点。完全透明的精灵得到空 Hull，
// 只有一个不透明像素的精灵得到单顶点 Hull。
type Hull []geom.IPoint

// Bounds 返回顶点的包围盒（含端点），空 Hull 返回 ok=false
func (h Hull) Bounds() (lo, hi geom.IPoint, ok bool) {
	if len(h) == 0 {
		return geom.IPoint{}, geom.IPoint{}, false
	}
	lo, hi = h[0], h[0]
	for _, p := range h[1:] {
		lo = geom.Pt(min(lo.X, p.X), min(lo.Y, p.Y))
		hi = geom.Pt(max(hi.X, p.X), max(hi.Y, p.Y))
	}
	return lo, hi, true
}

// direction 相邻两点之间的走向
// 只区分水平、竖直和严格 45° 对角线八个方向，其余均为 dirNone
type direction struct {
	dx, dy int
	valid  bool
}

var dirNone = direction{}

func directionOf(from, to geom.IPoint) direction {
	d := to.Sub(from)
	if d.X == 0 && d.Y == 0 {
		return dirNone
	}
	if d.X != 0 && d.Y != 0 && abs(d.X) != abs(d.Y) {
		return dirNone
	}
	return direction{dx: sign(d.X), dy: sign(d.Y), valid: true}
}

// continues 判断 next 是否沿同一方向延续当前边
func (d direction) continues(next direction) bool {
	return d.valid && d == next
}

// Extract 提取子图 [offset, offset+size) 中不透明区域的凸轮廓
//
// 算法：
//  1. 自上而下、每行自右向左扫描，第一个 alpha 非零的像素作为起始顶点（右上锚点）
//  2. 从锚点所在行的右边界开始，顺时针遍历子图边框上的每个点
//  3. 从边框点向当前顶点画线，线上第一个不透明像素作为候选点
//  4. 候选点与当前边同向（水平、竖直或 45°）时合并，否则输出当前顶点
//  5. 收尾时，与锚点共线或等于锚点的末尾点不再重复输出
//
// 返回的顶点坐标相对于 offset。
func Extract(mask AlphaMask, offset, size geom.IPoint) Hull {
	if size.X <= 0 || size.Y <= 0 {
		return nil
	}

	opaque := func(p geom.IPoint) bool {
		return mask.AlphaAt(offset.X+p.X, offset.Y+p.Y) != 0
	}

	anchor, found := findAnchor(size, opaque)
	if !found {
		return nil
	}

	var (
		result  Hull
		cur     = anchor
		curEdge = dirNone
	)

	for _, b := range boundary(size.X, size.Y, geom.Pt(size.X-1, anchor.Y)) {
		candidate, hit := firstOpaque(b, cur, opaque)
		if !hit {
			continue
		}

		edge := directionOf(cur, candidate)
		if len(result) > 0 && curEdge.continues(edge) {
			cur = candidate
			continue
		}

		result = append(result, cur)
		curEdge = edge
		cur = candidate
	}

	switch {
	case len(result) == 0:
		result = append(result, cur)
	case cur == anchor:
		// 回到起点，不重复
	case curEdge.continues(directionOf(cur, anchor)):
		// 末尾点位于最后一条边与锚点之间
	default:
		result = append(result, cur)
	}

	return result
}

// findAnchor 查找右上锚点
func findAnchor(size geom.IPoint, opaque func(geom.IPoint) bool) (geom.IPoint, bool) {
	for y := 0; y < size.Y; y++ {
		for x := size.X - 1; x >= 0; x-- {
			p := geom.Pt(x, y)
			if opaque(p) {
				return p, true
			}
		}
	}
	return geom.IPoint{}, false
}

// firstOpaque 返回从 from 指向 to 的直线上第一个不透明像素（不含 to）
func firstOpaque(from, to geom.IPoint, opaque func(geom.IPoint) bool) (geom.IPoint, bool) {
	lw := newLineWalker(from, to)
	for {
		p, ok := lw.Next()
		if !ok {
			return geom.IPoint{}, false
		}
		if opaque(p) {
			return p, true
		}
	}
}
