// Package quarkgl is the software 3D renderer behind the arm view.
//
// It draws meshes and line sets from a Scene into a caller-provided Target.
//
// Pipeline (fixed):
//
//	Scene → Transform → Projection → Clipping → Rasterization → Frame output.
//
// Math is float32 and column-major (m[col*4+row]), matching the OpenGL layout;
// kinematics stay in float64 upstream and are converted once per frame. The
// render hot path does not allocate.
package quarkgl
