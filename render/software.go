// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/dial"
	"github.com/gogpu/dial/clock"
)

// SoftwareRenderer is the CPU reference implementation of the frame
// program. It mirrors the GPU shader algorithm: vertices run through
// projection·view·model, fragments take the classifier color, the
// hand color uniform, or a nearest-neighbor texture sample. Layering
// comes from the fixed pass order — later passes paint over earlier
// ones, which is exactly the order the depth-staggered scene expects.
type SoftwareRenderer struct {
	width  int
	height int

	faceMesh *dial.Mesh
	tickMesh *dial.Mesh
	handMesh *dial.Mesh
}

// NewSoftwareRenderer creates a CPU renderer for targets of the given
// size.
func NewSoftwareRenderer(width, height int) (*SoftwareRenderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid renderer size %dx%d",
			dial.ErrConfiguration, width, height)
	}
	return &SoftwareRenderer{
		width:    width,
		height:   height,
		faceMesh: clock.FaceMesh(),
		tickMesh: clock.TickMesh(),
		handMesh: clock.HandMesh(),
	}, nil
}

// Capabilities reports the renderer as the unaccelerated reference.
func (r *SoftwareRenderer) Capabilities() Capabilities {
	return Capabilities{Name: "software", Accelerated: false}
}

// Close releases renderer resources. The software renderer holds none.
func (r *SoftwareRenderer) Close() {}

// RenderFrame draws one frame of the scene to the target. The frame
// is cleared to opaque black, then the program passes run in order.
func (r *SoftwareRenderer) RenderFrame(target RenderTarget, s *clock.Scene) error {
	if target == nil {
		return fmt.Errorf("%w: nil render target", dial.ErrConfiguration)
	}
	if target.Width() != r.width || target.Height() != r.height {
		return fmt.Errorf("%w: target %dx%d does not match renderer %dx%d",
			dial.ErrConfiguration, target.Width(), target.Height(), r.width, r.height)
	}

	prog, err := BuildProgram(s)
	if err != nil {
		return err
	}

	clear(target.Pixels())
	pix := target.Pixels()
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 255
	}

	seq := prog.Sequence()
	for {
		pass, ok := seq.Next()
		if !ok {
			break
		}
		switch pass.Kind {
		case PassFace:
			r.drawFace(target, prog, s)
		case PassTicks:
			for i := range clock.TickCount {
				color := clock.Classify(i).Color()
				r.drawMesh(target, prog, r.tickMesh, s.Ticks.Transform(i), solid(color))
			}
		case PassHand:
			h := s.Hand(pass.Hand)
			r.drawMesh(target, prog, r.handMesh, h.Transform, solid(h.Color))
		case PassOverlay:
			r.drawMesh(target, prog, s.Overlay.Mesh, s.Overlay.Transform, solid(s.Overlay.Color))
		}
	}

	return nil
}

// drawFace renders the textured quad, applying the circular mask when
// the scene enables it. The mask math matches the face fragment
// shader: fragments outside MaskRadius of the UV center go fully
// transparent.
func (r *SoftwareRenderer) drawFace(target RenderTarget, prog *Program, s *clock.Scene) {
	tex := s.Face.Texture
	masked := s.Face.Mask == clock.MaskCircle

	shade := func(u, v float32) dial.RGBA {
		if masked {
			du := u - clock.MaskCenterU
			dv := v - clock.MaskCenterV
			if du*du+dv*dv > clock.MaskRadius*clock.MaskRadius {
				return dial.Transparent
			}
		}
		return tex.Sample(u, v)
	}
	r.drawMesh(target, prog, r.faceMesh, mgl32.Ident4(), shade)
}

// solid returns a shade function that ignores UVs.
func solid(c dial.RGBA) func(u, v float32) dial.RGBA {
	return func(_, _ float32) dial.RGBA { return c }
}

// screenVertex is a projected vertex in pixel coordinates.
type screenVertex struct {
	x, y float32
	u, v float32
}

// drawMesh projects and rasterizes every triangle of the mesh under
// the given model transform. Triangles with any vertex behind the
// camera are dropped rather than clipped; the clock scene never
// straddles the near plane.
func (r *SoftwareRenderer) drawMesh(target RenderTarget, prog *Program, mesh *dial.Mesh, model mgl32.Mat4, shade func(u, v float32) dial.RGBA) {
	mvp := prog.Projection.Mul4(prog.View).Mul4(model)

	for t := 0; t < len(mesh.Indices); t += 3 {
		var sv [3]screenVertex
		visible := true
		for k := range 3 {
			vert := mesh.Vertices[mesh.Indices[t+k]]
			clip := mvp.Mul4x1(vert.Position.Vec4(1))
			if clip.W() <= 0 {
				visible = false
				break
			}
			ndcX := clip.X() / clip.W()
			ndcY := clip.Y() / clip.W()
			sv[k] = screenVertex{
				x: (ndcX + 1) * 0.5 * float32(r.width),
				y: (1 - ndcY) * 0.5 * float32(r.height),
				u: vert.TexCoord[0],
				v: vert.TexCoord[1],
			}
		}
		if visible {
			r.rasterTriangle(target, sv, shade)
		}
	}
}

// rasterTriangle fills one screen-space triangle using edge functions
// evaluated at pixel centers, interpolating UVs barycentrically.
func (r *SoftwareRenderer) rasterTriangle(target RenderTarget, v [3]screenVertex, shade func(u, vv float32) dial.RGBA) {
	area := edge(v[0], v[1], v[2].x, v[2].y)
	if area == 0 {
		return
	}

	minX := clampInt(int(min3(v[0].x, v[1].x, v[2].x)), 0, r.width-1)
	maxX := clampInt(int(max3(v[0].x, v[1].x, v[2].x))+1, 0, r.width-1)
	minY := clampInt(int(min3(v[0].y, v[1].y, v[2].y)), 0, r.height-1)
	maxY := clampInt(int(max3(v[0].y, v[1].y, v[2].y))+1, 0, r.height-1)

	pixels := target.Pixels()
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			cx := float32(px) + 0.5
			cy := float32(py) + 0.5

			w0 := edge(v[1], v[2], cx, cy) / area
			w1 := edge(v[2], v[0], cx, cy) / area
			w2 := edge(v[0], v[1], cx, cy) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			u := w0*v[0].u + w1*v[1].u + w2*v[2].u
			vv := w0*v[0].v + w1*v[1].v + w2*v[2].v
			blendPixel(pixels, r.width, px, py, shade(u, vv))
		}
	}
}

// edge evaluates the signed edge function of segment ab at point p.
func edge(a, b screenVertex, px, py float32) float32 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// blendPixel writes a color with source-over blending. Fully
// transparent fragments are dropped, fully opaque ones stored.
func blendPixel(pix []uint8, width, x, y int, c dial.RGBA) {
	if c.A <= 0 {
		return
	}
	i := (y*width + x) * 4
	if c.A >= 1 {
		pix[i+0] = toByte(c.R)
		pix[i+1] = toByte(c.G)
		pix[i+2] = toByte(c.B)
		pix[i+3] = 255
		return
	}
	inv := 1 - c.A
	pix[i+0] = toByte(c.R*c.A + float32(pix[i+0])/255*inv)
	pix[i+1] = toByte(c.G*c.A + float32(pix[i+1])/255*inv)
	pix[i+2] = toByte(c.B*c.A + float32(pix[i+2])/255*inv)
	pix[i+3] = toByte(c.A + float32(pix[i+3])/255*inv)
}

func toByte(v float32) uint8 {
	f := v * 255
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min3(a, b, c float32) float32 { return min(a, min(b, c)) }
func max3(a, b, c float32) float32 { return max(a, max(b, c)) }

// ProjectInstance projects a model-space point of one instance through
// the camera, returning normalized device coordinates. It reports
// false when the point lies behind the camera. This is the same
// transform chain the vertex stages apply, exposed for host-side
// layout math and for validating instance placement.
func ProjectInstance(camera *clock.CameraBlock, model mgl32.Mat4, p mgl32.Vec3) (mgl32.Vec3, bool) {
	clip := camera.Projection().Mul4(camera.View()).Mul4(model).Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return mgl32.Vec3{}, false
	}
	w := clip.W()
	return mgl32.Vec3{clip.X() / w, clip.Y() / w, clip.Z() / w}, true
}
