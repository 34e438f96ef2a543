// Package gmath provides the float32 linear-algebra types used throughout
// the engine: 2D/3D vectors, quaternions, 4x4 matrices and composed
// transforms. All types are plain values and safe to embed in components.
package gmath
