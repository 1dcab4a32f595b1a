package math

// Barycentric returns the height at (x, z) inside triangle abc.
// Each corner carries (x, height, z); weights come from the XZ projection.
// A degenerate triangle divides by zero and yields Inf or NaN.
func Barycentric(a, b, c Vec3, x, z float32) float32 {
	det := (b.Z-c.Z)*(a.X-c.X) + (c.X-b.X)*(a.Z-c.Z)

	l1 := ((b.Z-c.Z)*(x-c.X) + (c.X-b.X)*(z-c.Z)) / det
	l2 := ((c.Z-a.Z)*(x-c.X) + (a.X-c.X)*(z-c.Z)) / det
	l3 := 1 - l1 - l2

	return l1*a.Y + l2*b.Y + l3*c.Y
}

// Lerp returns the y on the line through (x0, y0) and (x1, y1) at x.
func Lerp(x0, y0, x1, y1, x float32) float32 {
	return (x-x0)/((x1-x0)/(y1-y0)) + y0
}
