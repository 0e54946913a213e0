// Command uiquaddemo renders UI quads with the CPU reference pipeline
// and saves the result as a PNG.
package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	"github.com/gogpu/uiquad"
	"github.com/gogpu/uiquad/soft"
)

func main() {
	var (
		width  = flag.Int("width", 512, "image width")
		height = flag.Int("height", 512, "image height")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	fb, err := soft.NewFramebuffer(*width, *height)
	if err != nil {
		log.Fatalf("Failed to create framebuffer: %v", err)
	}
	fb.Clear(uiquad.RGBA{R: 0.12, G: 0.12, B: 0.16, A: 1})

	r, err := soft.NewRasterizer(fb)
	if err != nil {
		log.Fatalf("Failed to create rasterizer: %v", err)
	}

	drawTexturedPanel(r)
	drawMaskBadge(r)
	drawTintedOverlay(r)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, fb.Image()); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// quad builds the four corners of an axis-aligned quad. Positions are
// in the input convention (y grows down), so x0,y0 is the top-left.
func quad(x0, y0, x1, y1 float32, tint uiquad.RGBA, mode uiquad.Mode) (tl, tr, br, bl uiquad.Vertex) {
	tl = uiquad.Vertex{Position: [2]float32{x0, y0}, UV: [2]float32{0, 0}, Color: tint, Mode: mode}
	tr = uiquad.Vertex{Position: [2]float32{x1, y0}, UV: [2]float32{1, 0}, Color: tint, Mode: mode}
	br = uiquad.Vertex{Position: [2]float32{x1, y1}, UV: [2]float32{1, 1}, Color: tint, Mode: mode}
	bl = uiquad.Vertex{Position: [2]float32{x0, y1}, UV: [2]float32{0, 1}, Color: tint, Mode: mode}
	return
}

// drawTexturedPanel draws a checkerboard texture with a white tint.
func drawTexturedPanel(r *soft.Rasterizer) {
	tex, err := soft.NewTexture(8, 8)
	if err != nil {
		log.Fatalf("Failed to create texture: %v", err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := uiquad.RGBA{R: 0.9, G: 0.9, B: 0.9, A: 1}
			if (x+y)%2 == 1 {
				c = uiquad.RGBA{R: 0.3, G: 0.5, B: 0.7, A: 1}
			}
			tex.SetRGBA(x, y, c)
		}
	}

	r.BindTexture(tex, soft.Sampler{Filter: soft.FilterNearest})
	tl, tr, br, bl := quad(-0.9, -0.9, 0.3, 0.3, uiquad.White, uiquad.ModeTexture)
	if err := r.DrawQuad(tl, tr, br, bl); err != nil {
		log.Fatalf("Failed to draw panel: %v", err)
	}
}

// drawMaskBadge draws a circle-alpha texture in mask mode, so the tint
// provides the color and the texture only shapes the coverage.
func drawMaskBadge(r *soft.Rasterizer) {
	const n = 64
	tex, err := soft.NewTexture(n, n)
	if err != nil {
		log.Fatalf("Failed to create texture: %v", err)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			dx := float32(x) + 0.5 - n/2
			dy := float32(y) + 0.5 - n/2
			a := float32(0)
			if dx*dx+dy*dy < (n/2-1)*(n/2-1) {
				a = 1
			}
			tex.SetRGBA(x, y, uiquad.RGBA{A: a})
		}
	}

	r.BindTexture(tex, soft.LinearClamp())
	tint := uiquad.RGBA{R: 0.9, G: 0.2, B: 0.2, A: 1}
	tl, tr, br, bl := quad(0.1, -0.7, 0.8, 0, tint, uiquad.ModeMask)
	if err := r.DrawQuad(tl, tr, br, bl); err != nil {
		log.Fatalf("Failed to draw badge: %v", err)
	}
}

// drawTintedOverlay draws a translucent quad over the lower half to
// show source-over compositing between draws.
func drawTintedOverlay(r *soft.Rasterizer) {
	tex, err := soft.NewTexture(1, 1)
	if err != nil {
		log.Fatalf("Failed to create texture: %v", err)
	}
	tex.Fill(uiquad.White)

	r.BindTexture(tex, soft.Sampler{Filter: soft.FilterNearest})
	tint := uiquad.RGBA{R: 0.2, G: 0.8, B: 0.4, A: 0.4}
	tl, tr, br, bl := quad(-1, 0.4, 1, 1, tint, uiquad.ModeTexture)
	if err := r.DrawQuad(tl, tr, br, bl); err != nil {
		log.Fatalf("Failed to draw overlay: %v", err)
	}
}
