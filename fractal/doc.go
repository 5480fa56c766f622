// Package fractal implements an escape-time Mandelbrot renderer and the
// input-driven view state that feeds it.
//
// Pipeline (fixed):
//
//	Inputs → Controller → View → Renderer → Target.
//
// The renderer is software-only and draws into a caller-provided Target.
// Every pixel is independent, so a render pass is split across row bands and
// the output is identical for any worker count. Arithmetic is float32
// throughout; the escape check is the standard squared-magnitude bound
// |z|² > 4.
package fractal
