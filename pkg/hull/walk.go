package hull

import "github.com/gonewx/shmup/pkg/geom"

// boundary 返回 w×h 矩形边框上的像素，按顺时针排列
// （右边向下 → 底边向左 → 左边向上 → 顶边向右），从 from 之后的下一个点开始，
// 到 from 之前的点结束。from 必须位于边框上。
func boundary(w, h int, from geom.IPoint) []geom.IPoint {
	ring := make([]geom.IPoint, 0, 2*(w+h))
	for x := 0; x < w; x++ {
		ring = append(ring, geom.Pt(x, 0))
	}
	for y := 1; y < h; y++ {
		ring = append(ring, geom.Pt(w-1, y))
	}
	if h > 1 {
		for x := w - 2; x >= 0; x-- {
			ring = append(ring, geom.Pt(x, h-1))
		}
	}
	if w > 1 {
		for y := h - 2; y >= 1; y-- {
			ring = append(ring, geom.Pt(0, y))
		}
	}

	start := 0
	for i, p := range ring {
		if p == from {
			start = i
			break
		}
	}

	result := make([]geom.IPoint, 0, len(ring)-1)
	for i := 1; i < len(ring); i++ {
		result = append(result, ring[(start+i)%len(ring)])
	}
	return result
}

// lineWalker 逐像素遍历从 from 到 to 的直线（不含 to）
//
// 主轴取 |Δx|、|Δy| 中较大者，副轴步进按比例穿插，
// 使路径与理想直线的偏差不超过一个像素。
type lineWalker struct {
	cur       geom.IPoint
	main      geom.IPoint
	secondary geom.IPoint
	maxDelta  int
	minDelta  int
	steps     int // 已产出的点数
	secSteps  int // 已执行的副轴步数
}

func newLineWalker(from, to geom.IPoint) *lineWalker {
	d := to.Sub(from)
	ax, ay := abs(d.X), abs(d.Y)

	lw := &lineWalker{cur: from}
	if ax >= ay {
		lw.main = geom.Pt(sign(d.X), 0)
		lw.secondary = geom.Pt(0, sign(d.Y))
		lw.maxDelta, lw.minDelta = ax, ay
	} else {
		lw.main = geom.Pt(0, sign(d.Y))
		lw.secondary = geom.Pt(sign(d.X), 0)
		lw.maxDelta, lw.minDelta = ay, ax
	}
	return lw
}

// Next 返回下一个像素，遍历结束时 ok 为 false
func (lw *lineWalker) Next() (p geom.IPoint, ok bool) {
	if lw.steps >= lw.maxDelta {
		return geom.IPoint{}, false
	}
	p = lw.cur
	lw.steps++

	lw.cur = lw.cur.Add(lw.main)
	if lw.minDelta > 0 && lw.secSteps < lw.minDelta &&
		(lw.steps+1)*(lw.minDelta+1)/(lw.secSteps+1) > lw.maxDelta+1 {
		lw.cur = lw.cur.Add(lw.secondary)
		lw.secSteps++
	}
	return p, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
