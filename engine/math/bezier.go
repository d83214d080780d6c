package math

/**
 * @brief Evaluates the quadratic Bézier curve through p0, p1, p2 at t:
 * (1-t)²p0 + 2(1-t)t p1 + t²p2. t is expected in [0, 1].
 */
func QuadraticBezier(p0, p1, p2, t float32) float32 {
	u := 1 - t
	return u*u*p0 + 2*u*t*p1 + t*t*p2
}

/**
 * @brief Evaluates a quadratic Bézier curve per axis.
 */
func QuadraticBezierVec3(p0, p1, p2 Vec3, t float32) Vec3 {
	return Vec3{
		QuadraticBezier(p0.X, p1.X, p2.X, t),
		QuadraticBezier(p0.Y, p1.Y, p2.Y, t),
		QuadraticBezier(p0.Z, p1.Z, p2.Z, t),
	}
}
