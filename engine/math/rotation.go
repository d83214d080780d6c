package math

// Directions whose horizontal component is shorter than this are treated as
// vertical.
const AlignEpsilon float32 = 1e-6

/**
 * @brief Returns the axis and angle (radians) that rotate +Y onto dir.
 * The axis is (0,1,0) x dir = (dir.z, 0, -dir.x) and the angle is
 * acos(dir.y / |dir|). ok is false when dir is vertical or zero, in which
 * case no rotation should be applied.
 */
func AlignYAxisAngle(dir Vec3) (axis Vec3, angle float32, ok bool) {
	length := dir.Length()
	if length == 0 {
		return Vec3{}, 0, false
	}
	axis = Vec3{dir.Z, 0, -dir.X}
	axisLength := axis.Length()
	if axisLength <= AlignEpsilon {
		return Vec3{}, 0, false
	}
	angle = kacos(dir.Y / length)
	return axis.MulScalar(1 / axisLength), angle, true
}
