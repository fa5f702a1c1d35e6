package core

// HitRecord contains information about a ray-object intersection.
// It lives only as long as the query that produced it.
type HitRecord struct {
	T        float64  // Parameter t along the ray
	Point    Vec3     // Point of intersection
	Normal   Vec3     // Unit surface normal at intersection
	Material Material // Material of the hit object
}

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation
}

// Material interface for surfaces that can scatter rays.
// A false return means the ray was absorbed.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// Camera generates primary rays for image plane coordinates (s, t) in [0,1]
type Camera interface {
	GetRay(s, t float64, sampler Sampler) Ray
}
