// Package reedsshepp enumerates Reeds-Shepp curves: shortest bounded-curvature
// paths between planar poses for a vehicle that may drive forward or backward.
// Paths are built from the classic word families (CSC, CCC, CCCC, CCSC, CCSCC,
// plus the straight-curve-straight words) with their time-flipped, reflected,
// and reversed variants.
package reedsshepp

import (
	"math"
	"sort"

	"go.viam.com/trailerplan/spatialmath"
)

// Motion is the curvature class of one path segment.
type Motion int

const (
	// MotionLeft turns at the minimum radius to the left.
	MotionLeft Motion = iota
	// MotionStraight drives straight.
	MotionStraight
	// MotionRight turns at the minimum radius to the right.
	MotionRight
)

// Segment is one constant-curvature piece of a path. Length is signed and
// normalized to the turning radius: positive lengths are driven forward,
// negative backward.
type Segment struct {
	Motion Motion
	Length float64
}

// Path is a sequence of constant-curvature segments at a fixed turning
// radius. TotalLength is the summed absolute arc length in meters.
type Path struct {
	Segments    []Segment
	Radius      float64
	TotalLength float64
}

const (
	lengthEqualityTol = 0.01
	halfPi            = math.Pi / 2
)

// mod2pi maps an angle into [0, 2*pi).
func mod2pi(theta float64) float64 {
	return theta - 2*math.Pi*math.Floor(theta/(2*math.Pi))
}

func polar(x, y float64) (float64, float64) {
	return math.Hypot(x, y), math.Atan2(y, x)
}

// tauOmega solves the shared angular subproblem of the four-segment words.
func tauOmega(u, v, xi, eta, phi float64) (float64, float64) {
	delta := mod2pi(u - v)
	a := math.Sin(u) - math.Sin(delta)
	b := math.Cos(u) - math.Cos(delta) - 1
	t1 := math.Atan2(eta*a-xi*b, xi*a+eta*b)
	t2 := 2*(math.Cos(delta)-math.Cos(v)-math.Cos(u)) + 3
	var tau float64
	if t2 < 0 {
		tau = mod2pi(t1 + math.Pi)
	} else {
		tau = mod2pi(t1)
	}
	omega := mod2pi(tau - u + v - phi)
	return tau, omega
}

// word solvers, all in normalized coordinates (unit turning radius) with the
// start pose at the origin. Each returns segment lengths (t, u, v) or false
// when the word cannot reach the target.

func straightLeftStraight(x, y, phi float64) (float64, float64, float64, bool) {
	phi = mod2pi(phi)
	if phi <= 0 || phi >= math.Pi*0.99 {
		return 0, 0, 0, false
	}
	if y > 0 {
		xd := -y/math.Tan(phi) + x
		t := xd - math.Tan(phi/2)
		u := phi
		v := math.Hypot(x-xd, y) - math.Tan(phi/2)
		return t, u, v, true
	}
	if y < 0 {
		xd := -y/math.Tan(phi) + x
		t := xd - math.Tan(phi/2)
		u := phi
		v := -math.Hypot(x-xd, y) - math.Tan(phi/2)
		return t, u, v, true
	}
	return 0, 0, 0, false
}

func leftStraightLeft(x, y, phi float64) (float64, float64, float64, bool) {
	u, t := polar(x-math.Sin(phi), y-1+math.Cos(phi))
	if t < 0 {
		return 0, 0, 0, false
	}
	v := mod2pi(phi - t)
	return t, u, v, true
}

func leftStraightRight(x, y, phi float64) (float64, float64, float64, bool) {
	u1, t1 := polar(x+math.Sin(phi), y-1-math.Cos(phi))
	u1 *= u1
	if u1 < 4 {
		return 0, 0, 0, false
	}
	u := math.Sqrt(u1 - 4)
	theta := math.Atan2(2, u)
	t := mod2pi(t1 + theta)
	v := mod2pi(t - phi)
	return t, u, v, true
}

func leftRightLeft(x, y, phi float64) (float64, float64, float64, bool) {
	u1, t1 := polar(x-math.Sin(phi), y-1+math.Cos(phi))
	if u1 > 4 {
		return 0, 0, 0, false
	}
	u := -2 * math.Asin(0.25*u1)
	t := mod2pi(t1 + 0.5*u + math.Pi)
	v := mod2pi(phi - t + u)
	if t < 0 || u > 0 {
		return 0, 0, 0, false
	}
	return t, u, v, true
}

// leftRightLeftRightPos solves L+R+L-R- words where the two middle arcs sweep
// the same magnitude u with opposite signs.
func leftRightLeftRightPos(x, y, phi float64) (float64, float64, float64, bool) {
	xi := x + math.Sin(phi)
	eta := y - 1 - math.Cos(phi)
	rho := 0.25 * (2 + math.Hypot(xi, eta))
	if rho > 1 {
		return 0, 0, 0, false
	}
	u := math.Acos(rho)
	t, v := tauOmega(u, -u, xi, eta, phi)
	if t < 0 || v > 0 {
		return 0, 0, 0, false
	}
	return t, u, v, true
}

// leftRightLeftRightNeg solves L+R-L-R+ words where both middle arcs sweep the
// same signed angle u, with u in [-pi/2, 0].
func leftRightLeftRightNeg(x, y, phi float64) (float64, float64, float64, bool) {
	xi := x + math.Sin(phi)
	eta := y - 1 - math.Cos(phi)
	rho := (20 - xi*xi - eta*eta) / 16
	if rho < 0 || rho > 1 {
		return 0, 0, 0, false
	}
	u := -math.Acos(rho)
	if u < -halfPi {
		return 0, 0, 0, false
	}
	t, v := tauOmega(u, u, xi, eta, phi)
	if t < 0 || v < 0 {
		return 0, 0, 0, false
	}
	return t, u, v, true
}

// leftRightStraightLeft solves L+R-S-L- words; the R arc is a fixed -pi/2.
func leftRightStraightLeft(x, y, phi float64) (float64, float64, float64, bool) {
	xi := x - math.Sin(phi)
	eta := y - 1 + math.Cos(phi)
	rho, theta := polar(xi, eta)
	if rho < 2 {
		return 0, 0, 0, false
	}
	r := math.Sqrt(rho*rho - 4)
	u := 2 - r
	t := mod2pi(theta + math.Atan2(r, -2))
	v := mod2pi(phi - halfPi - t)
	if t < 0 || u > 0 || v > 0 {
		return 0, 0, 0, false
	}
	return t, u, v, true
}

// leftRightStraightRight solves L+R-S-R- words; the first R arc is a fixed -pi/2.
func leftRightStraightRight(x, y, phi float64) (float64, float64, float64, bool) {
	xi := x + math.Sin(phi)
	eta := y - 1 - math.Cos(phi)
	rho, theta := polar(-eta, xi)
	if rho < 2 {
		return 0, 0, 0, false
	}
	t := theta
	u := 2 - rho
	v := mod2pi(t + halfPi - phi)
	if t < 0 || u > 0 || v > 0 {
		return 0, 0, 0, false
	}
	return t, u, v, true
}

// leftRightStraightLeftRight solves L+R-S-L-R+ words; both arcs adjacent to
// the straight are fixed -pi/2 sweeps.
func leftRightStraightLeftRight(x, y, phi float64) (float64, float64, float64, bool) {
	xi := x + math.Sin(phi)
	eta := y - 1 - math.Cos(phi)
	rho, _ := polar(xi, eta)
	if rho < 2 {
		return 0, 0, 0, false
	}
	u := 4 - math.Sqrt(rho*rho-4)
	if u > 0 {
		return 0, 0, 0, false
	}
	t := mod2pi(math.Atan2((4-u)*xi-2*eta, -2*xi+(u-4)*eta))
	v := mod2pi(t - phi)
	if t < 0 || v < 0 {
		return 0, 0, 0, false
	}
	return t, u, v, true
}

type candidate struct {
	lengths []float64
	motions []Motion
}

func appendCandidate(cands []candidate, motions []Motion, lengths ...float64) []candidate {
	for _, existing := range cands {
		if len(existing.motions) != len(motions) {
			continue
		}
		same := true
		for i := range motions {
			if existing.motions[i] != motions[i] {
				same = false
				break
			}
		}
		if !same {
			continue
		}
		for i := range lengths {
			if math.Abs(existing.lengths[i]-lengths[i]) > lengthEqualityTol {
				same = false
				break
			}
		}
		if same {
			return cands
		}
	}
	return append(cands, candidate{lengths: lengths, motions: motions})
}

var (
	lsl   = []Motion{MotionLeft, MotionStraight, MotionLeft}
	rsr   = []Motion{MotionRight, MotionStraight, MotionRight}
	lsr   = []Motion{MotionLeft, MotionStraight, MotionRight}
	rsl   = []Motion{MotionRight, MotionStraight, MotionLeft}
	lrl   = []Motion{MotionLeft, MotionRight, MotionLeft}
	rlr   = []Motion{MotionRight, MotionLeft, MotionRight}
	sls   = []Motion{MotionStraight, MotionLeft, MotionStraight}
	srs   = []Motion{MotionStraight, MotionRight, MotionStraight}
	lrlr  = []Motion{MotionLeft, MotionRight, MotionLeft, MotionRight}
	rlrl  = []Motion{MotionRight, MotionLeft, MotionRight, MotionLeft}
	lrsl  = []Motion{MotionLeft, MotionRight, MotionStraight, MotionLeft}
	rlsr  = []Motion{MotionRight, MotionLeft, MotionStraight, MotionRight}
	lrsr  = []Motion{MotionLeft, MotionRight, MotionStraight, MotionRight}
	rlsl  = []Motion{MotionRight, MotionLeft, MotionStraight, MotionLeft}
	lsrl  = []Motion{MotionLeft, MotionStraight, MotionRight, MotionLeft}
	rslr  = []Motion{MotionRight, MotionStraight, MotionLeft, MotionRight}
	rsrl  = []Motion{MotionRight, MotionStraight, MotionRight, MotionLeft}
	lslr  = []Motion{MotionLeft, MotionStraight, MotionLeft, MotionRight}
	lrslr = []Motion{MotionLeft, MotionRight, MotionStraight, MotionLeft, MotionRight}
	rlsrl = []Motion{MotionRight, MotionLeft, MotionStraight, MotionRight, MotionLeft}
)

func straightCurveStraight(x, y, phi float64, cands []candidate) []candidate {
	if t, u, v, ok := straightLeftStraight(x, y, phi); ok {
		cands = appendCandidate(cands, sls, t, u, v)
	}
	if t, u, v, ok := straightLeftStraight(x, -y, -phi); ok {
		cands = appendCandidate(cands, srs, t, u, v)
	}
	return cands
}

func curveStraightCurve(x, y, phi float64, cands []candidate) []candidate {
	if t, u, v, ok := leftStraightLeft(x, y, phi); ok {
		cands = appendCandidate(cands, lsl, t, u, v)
	}
	if t, u, v, ok := leftStraightLeft(-x, y, -phi); ok {
		cands = appendCandidate(cands, lsl, -t, -u, -v)
	}
	if t, u, v, ok := leftStraightLeft(x, -y, -phi); ok {
		cands = appendCandidate(cands, rsr, t, u, v)
	}
	if t, u, v, ok := leftStraightLeft(-x, -y, phi); ok {
		cands = appendCandidate(cands, rsr, -t, -u, -v)
	}
	if t, u, v, ok := leftStraightRight(x, y, phi); ok {
		cands = appendCandidate(cands, lsr, t, u, v)
	}
	if t, u, v, ok := leftStraightRight(-x, y, -phi); ok {
		cands = appendCandidate(cands, lsr, -t, -u, -v)
	}
	if t, u, v, ok := leftStraightRight(x, -y, -phi); ok {
		cands = appendCandidate(cands, rsl, t, u, v)
	}
	if t, u, v, ok := leftStraightRight(-x, -y, phi); ok {
		cands = appendCandidate(cands, rsl, -t, -u, -v)
	}
	return cands
}

func curveCurveCurve(x, y, phi float64, cands []candidate) []candidate {
	if t, u, v, ok := leftRightLeft(x, y, phi); ok {
		cands = appendCandidate(cands, lrl, t, u, v)
	}
	if t, u, v, ok := leftRightLeft(-x, y, -phi); ok {
		cands = appendCandidate(cands, lrl, -t, -u, -v)
	}
	if t, u, v, ok := leftRightLeft(x, -y, -phi); ok {
		cands = appendCandidate(cands, rlr, t, u, v)
	}
	if t, u, v, ok := leftRightLeft(-x, -y, phi); ok {
		cands = appendCandidate(cands, rlr, -t, -u, -v)
	}

	// reversed variants: solve the mirrored problem and read segments backward
	xb := x*math.Cos(phi) + y*math.Sin(phi)
	yb := x*math.Sin(phi) - y*math.Cos(phi)
	if t, u, v, ok := leftRightLeft(xb, yb, phi); ok {
		cands = appendCandidate(cands, lrl, v, u, t)
	}
	if t, u, v, ok := leftRightLeft(-xb, yb, -phi); ok {
		cands = appendCandidate(cands, lrl, -v, -u, -t)
	}
	if t, u, v, ok := leftRightLeft(xb, -yb, -phi); ok {
		cands = appendCandidate(cands, rlr, v, u, t)
	}
	if t, u, v, ok := leftRightLeft(-xb, -yb, phi); ok {
		cands = appendCandidate(cands, rlr, -v, -u, -t)
	}
	return cands
}

func curveCurveCurveCurve(x, y, phi float64, cands []candidate) []candidate {
	if t, u, v, ok := leftRightLeftRightPos(x, y, phi); ok {
		cands = appendCandidate(cands, lrlr, t, u, -u, v)
	}
	if t, u, v, ok := leftRightLeftRightPos(-x, y, -phi); ok {
		cands = appendCandidate(cands, lrlr, -t, -u, u, -v)
	}
	if t, u, v, ok := leftRightLeftRightPos(x, -y, -phi); ok {
		cands = appendCandidate(cands, rlrl, t, u, -u, v)
	}
	if t, u, v, ok := leftRightLeftRightPos(-x, -y, phi); ok {
		cands = appendCandidate(cands, rlrl, -t, -u, u, -v)
	}

	if t, u, v, ok := leftRightLeftRightNeg(x, y, phi); ok {
		cands = appendCandidate(cands, lrlr, t, u, u, v)
	}
	if t, u, v, ok := leftRightLeftRightNeg(-x, y, -phi); ok {
		cands = appendCandidate(cands, lrlr, -t, -u, -u, -v)
	}
	if t, u, v, ok := leftRightLeftRightNeg(x, -y, -phi); ok {
		cands = appendCandidate(cands, rlrl, t, u, u, v)
	}
	if t, u, v, ok := leftRightLeftRightNeg(-x, -y, phi); ok {
		cands = appendCandidate(cands, rlrl, -t, -u, -u, -v)
	}
	return cands
}

func curveCurveStraightCurve(x, y, phi float64, cands []candidate) []candidate {
	if t, u, v, ok := leftRightStraightLeft(x, y, phi); ok {
		cands = appendCandidate(cands, lrsl, t, -halfPi, u, v)
	}
	if t, u, v, ok := leftRightStraightLeft(-x, y, -phi); ok {
		cands = appendCandidate(cands, lrsl, -t, halfPi, -u, -v)
	}
	if t, u, v, ok := leftRightStraightLeft(x, -y, -phi); ok {
		cands = appendCandidate(cands, rlsr, t, -halfPi, u, v)
	}
	if t, u, v, ok := leftRightStraightLeft(-x, -y, phi); ok {
		cands = appendCandidate(cands, rlsr, -t, halfPi, -u, -v)
	}
	if t, u, v, ok := leftRightStraightRight(x, y, phi); ok {
		cands = appendCandidate(cands, lrsr, t, -halfPi, u, v)
	}
	if t, u, v, ok := leftRightStraightRight(-x, y, -phi); ok {
		cands = appendCandidate(cands, lrsr, -t, halfPi, -u, -v)
	}
	if t, u, v, ok := leftRightStraightRight(x, -y, -phi); ok {
		cands = appendCandidate(cands, rlsl, t, -halfPi, u, v)
	}
	if t, u, v, ok := leftRightStraightRight(-x, -y, phi); ok {
		cands = appendCandidate(cands, rlsl, -t, halfPi, -u, -v)
	}

	// reversed variants: solve the mirrored problem and read segments backward
	xb := x*math.Cos(phi) + y*math.Sin(phi)
	yb := x*math.Sin(phi) - y*math.Cos(phi)
	if t, u, v, ok := leftRightStraightLeft(xb, yb, phi); ok {
		cands = appendCandidate(cands, lsrl, v, u, -halfPi, t)
	}
	if t, u, v, ok := leftRightStraightLeft(-xb, yb, -phi); ok {
		cands = appendCandidate(cands, lsrl, -v, -u, halfPi, -t)
	}
	if t, u, v, ok := leftRightStraightLeft(xb, -yb, -phi); ok {
		cands = appendCandidate(cands, rslr, v, u, -halfPi, t)
	}
	if t, u, v, ok := leftRightStraightLeft(-xb, -yb, phi); ok {
		cands = appendCandidate(cands, rslr, -v, -u, halfPi, -t)
	}
	if t, u, v, ok := leftRightStraightRight(xb, yb, phi); ok {
		cands = appendCandidate(cands, rsrl, v, u, -halfPi, t)
	}
	if t, u, v, ok := leftRightStraightRight(-xb, yb, -phi); ok {
		cands = appendCandidate(cands, rsrl, -v, -u, halfPi, -t)
	}
	if t, u, v, ok := leftRightStraightRight(xb, -yb, -phi); ok {
		cands = appendCandidate(cands, lslr, v, u, -halfPi, t)
	}
	if t, u, v, ok := leftRightStraightRight(-xb, -yb, phi); ok {
		cands = appendCandidate(cands, lslr, -v, -u, halfPi, -t)
	}
	return cands
}

func curveCurveStraightCurveCurve(x, y, phi float64, cands []candidate) []candidate {
	if t, u, v, ok := leftRightStraightLeftRight(x, y, phi); ok {
		cands = appendCandidate(cands, lrslr, t, -halfPi, u, -halfPi, v)
	}
	if t, u, v, ok := leftRightStraightLeftRight(-x, y, -phi); ok {
		cands = appendCandidate(cands, lrslr, -t, halfPi, -u, halfPi, -v)
	}
	if t, u, v, ok := leftRightStraightLeftRight(x, -y, -phi); ok {
		cands = appendCandidate(cands, rlsrl, t, -halfPi, u, -halfPi, v)
	}
	if t, u, v, ok := leftRightStraightLeftRight(-x, -y, phi); ok {
		cands = appendCandidate(cands, rlsrl, -t, halfPi, -u, halfPi, -v)
	}
	return cands
}

// AllPaths enumerates the feasible Reeds-Shepp paths from one pose to another
// at the given minimum turning radius, ordered by increasing total arc length.
// Identical poses yield no paths.
func AllPaths(from, to spatialmath.Pose, radius float64) []Path {
	dx := to.Point.X - from.Point.X
	dy := to.Point.Y - from.Point.Y
	dth := spatialmath.AngleDiff(to.Theta, from.Theta)
	if dx == 0 && dy == 0 && dth == 0 {
		return nil
	}
	sin, cos := math.Sincos(from.Theta)
	x := (cos*dx + sin*dy) / radius
	y := (-sin*dx + cos*dy) / radius

	var cands []candidate
	cands = straightCurveStraight(x, y, dth, cands)
	cands = curveStraightCurve(x, y, dth, cands)
	cands = curveCurveCurve(x, y, dth, cands)
	cands = curveCurveCurveCurve(x, y, dth, cands)
	cands = curveCurveStraightCurve(x, y, dth, cands)
	cands = curveCurveStraightCurveCurve(x, y, dth, cands)

	paths := make([]Path, 0, len(cands))
	for _, c := range cands {
		total := 0.0
		segs := make([]Segment, 0, len(c.lengths))
		for i, l := range c.lengths {
			segs = append(segs, Segment{Motion: c.motions[i], Length: l})
			total += math.Abs(l)
		}
		if total == 0 {
			continue
		}
		paths = append(paths, Path{Segments: segs, Radius: radius, TotalLength: total * radius})
	}
	sort.Slice(paths, func(i, j int) bool { return paths[i].TotalLength < paths[j].TotalLength })
	return paths
}

// ShortestLength returns the arc length of the shortest Reeds-Shepp path
// between two poses, or the straight-line distance if no path was found.
func ShortestLength(from, to spatialmath.Pose, radius float64) float64 {
	paths := AllPaths(from, to, radius)
	if len(paths) == 0 {
		return to.Point.Sub(from.Point).Norm()
	}
	return paths[0].TotalLength
}
