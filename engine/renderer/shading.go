package renderer

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/arena/engine/math"
	"github.com/spaghettifunk/arena/engine/scene"
)

/**
 * @brief Evaluates fixed-function spot lighting at one surface point.
 * With no lights the base colour is returned unlit.
 * @param base The surface colour (tint times texture).
 * @param pos World position of the point.
 * @param normal World normal, need not be unit length.
 * @param eye World position of the viewer.
 * @param lights The active spot lights.
 * @param shininess Specular exponent.
 */
func Shade(base math.Vec4, pos, normal, eye math.Vec3, lights []scene.LightDescriptor, shininess float32) math.Vec4 {
	if len(lights) == 0 {
		return base
	}
	n := normal.Normalize()
	v := eye.Sub(pos).Normalize()

	var r, g, b float32
	for _, l := range lights {
		r += l.Ambient.X * base.X
		g += l.Ambient.Y * base.Y
		b += l.Ambient.Z * base.Z

		toLight := l.Position.Sub(pos)
		dist := toLight.Length()
		ld := toLight.Normalize()

		spot := spotFactor(l, ld)
		if spot == 0 {
			continue
		}
		k := l.Attenuation[0] + l.Attenuation[1]*dist + l.Attenuation[2]*dist*dist
		if k <= 0 {
			k = 1
		}
		scale := spot / k

		diff := n.Dot(ld)
		if diff <= 0 {
			continue
		}
		r += scale * l.Diffuse.X * base.X * diff
		g += scale * l.Diffuse.Y * base.Y * diff
		b += scale * l.Diffuse.Z * base.Z * diff

		if shininess > 0 {
			h := ld.Add(v).Normalize()
			if s := n.Dot(h); s > 0 {
				spec := scale * math32.Pow(s, shininess)
				r += l.Specular.X * spec
				g += l.Specular.Y * spec
				b += l.Specular.Z * spec
			}
		}
	}
	return math.NewVec4(
		math.Clamp(r, 0, 1),
		math.Clamp(g, 0, 1),
		math.Clamp(b, 0, 1),
		base.W,
	)
}

// spotFactor is 0 outside the cone and cos^exponent of the angle off the
// beam axis inside it. A cutoff of 180 or more is a point light.
func spotFactor(l scene.LightDescriptor, toLight math.Vec3) float32 {
	if l.Cutoff >= 180 {
		return 1
	}
	axis := l.Direction.Normalize()
	c := -toLight.Dot(axis)
	if c < math32.Cos(math.DegToRad(l.Cutoff)) {
		return 0
	}
	if l.Exponent == 0 {
		return 1
	}
	return math32.Pow(c, l.Exponent)
}
