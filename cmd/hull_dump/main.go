// hull_dump 打印精灵图中每个精灵的凸包、碰撞框和法线
//
// 用法:
//
//	go run ./cmd/hull_dump [--sheet assets/sprites.png] [--desc data/sprites.txt] [--angle 30] [--scale 1.5]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonewx/shmup/pkg/collision"
	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/geom"
	"github.com/gonewx/shmup/pkg/sprites"
)

func main() {
	root := flag.String("root", ".", "资源根目录")
	sheetPath := flag.String("sheet", config.SpriteSheetPath, "精灵图路径（相对资源根目录）")
	descPath := flag.String("desc", config.SpriteDescriptionPath, "精灵描述文件路径（相对资源根目录）")
	width := flag.Int("vw", config.VirtualWidth, "虚拟分辨率宽度")
	height := flag.Int("vh", config.VirtualHeight, "虚拟分辨率高度")
	angle := flag.Float64("angle", 0, "旋转角（度）")
	scale := flag.Float64("scale", 1, "缩放")
	flag.Parse()

	sheet, err := sprites.LoadSheet(os.DirFS(*root), *sheetPath, *descPath, geom.Pt(*width, *height))
	if err != nil {
		log.Fatalf("加载精灵失败: %v", err)
	}

	dump(os.Stdout, sheet.Table, geom.FromDeg(*angle), geom.Pt(*scale, *scale))
}

func dump(w io.Writer, table *sprites.Table, angle geom.Angle, scale geom.FPoint) {
	fmt.Fprintln(w, "==========================================================")
	fmt.Fprintf(w, "精灵图 %v  虚拟分辨率 %v  旋转 %.1f°  缩放 %.2f\n",
		table.ImageSize(), table.VirtualDimensions(), angle.Deg(), scale.X)
	fmt.Fprintln(w, "==========================================================")

	for _, kind := range sprites.Kinds() {
		d, ok := table.Get(kind)
		if !ok {
			continue
		}

		fmt.Fprintf(w, "\n%s  rect=%v frames=%d\n", kind, d.Rect, d.Frames)
		fmt.Fprintln(w, "----------------------------------------------------------")
		fmt.Fprintf(w, "  像素凸包 (%d): %v\n", len(d.PixelHull), d.PixelHull)

		data := collision.Build(d, angle, scale)
		hb := data.Hitbox()
		fmt.Fprintf(w, "  碰撞框: left=%.5f top=%.5f right=%.5f bottom=%.5f\n", hb.Left, hb.Top, hb.Right, hb.Bottom)
		fmt.Fprintf(w, "  范围:   %.5f x %.5f\n", data.Range().X, data.Range().Y)
		for i, p := range data.Hull() {
			fmt.Fprintf(w, "  [%2d] (%+.5f, %+.5f)\n", i, p.X, p.Y)
		}
		fmt.Fprint(w, "  法线:")
		for _, n := range data.Normals() {
			fmt.Fprintf(w, " %.1f°", n.Deg())
		}
		fmt.Fprintln(w)
	}
}
