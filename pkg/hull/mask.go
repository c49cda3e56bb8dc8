package hull

import (
	"image"
	"image/draw"
)

// AlphaMask 按像素读取 alpha 通道
// 坐标为整张图片的像素坐标
type AlphaMask interface {
	AlphaAt(x, y int) uint8
}

// Pixels 已解码的 RGBA 像素缓冲（每通道 1 字节，行优先）
//
// 只有 alpha 通道会被凸包提取读取。缓冲由资源层持有，本包只借用。
type Pixels struct {
	Pix    []byte
	Width  int
	Height int
}

// AlphaAt 返回 (x, y) 处的 alpha 值，越界时视为完全透明
func (p *Pixels) AlphaAt(x, y int) uint8 {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return 0
	}
	return p.Pix[(y*p.Width+x)*4+3]
}

// Size 返回缓冲尺寸
func (p *Pixels) Size() image.Point {
	return image.Pt(p.Width, p.Height)
}

// PixelsFromImage 将任意解码后的图片转换为非预乘的 RGBA 缓冲
func PixelsFromImage(img image.Image) *Pixels {
	bounds := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Stride != bounds.Dx()*4 || bounds.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}
	return &Pixels{
		Pix:    nrgba.Pix,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
}
