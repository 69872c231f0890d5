package sht

import "math"

// wignerD holds the Wigner small-d matrices d(l; m', m)(beta) for
// l = 0..lmax, m' = 0..l and m = -l..l, in the convention
// d(l; m', m)(beta) = <l m'| exp(-i beta J_y) |l m>.
type wignerD struct {
	lmax int
	beta float64
	off  []int // start of degree l
	d    []float64
}

func newWignerD(lmax int) *wignerD {
	w := &wignerD{lmax: lmax, off: make([]int, lmax+2)}
	for l := 0; l <= lmax; l++ {
		w.off[l+1] = w.off[l] + (l+1)*(2*l+1)
	}
	w.d = make([]float64, w.off[lmax+1])
	return w
}

func (w *wignerD) at(l, mp, m int) float64 {
	return w.d[w.off[l]+mp*(2*l+1)+m+l]
}

func (w *wignerD) set(l, mp, m int, v float64) {
	w.d[w.off[l]+mp*(2*l+1)+m+l] = v
}

// compute fills the matrices for beta. Each (m', m) column is started from
// its closed form at l = max(m', |m|) and carried up in l by the three-term
// recurrence
//
//	l*sqrt(((l+1)^2-m'^2)((l+1)^2-m^2)) d(l+1) =
//	    (2l+1)(l(l+1)cos(beta) - m'm) d(l) - (l+1)sqrt((l^2-m'^2)(l^2-m^2)) d(l-1).
func (w *wignerD) compute(beta float64) {
	w.beta = beta
	lmax := w.lmax
	cb := math.Cos(beta)
	c := math.Cos(beta / 2)
	s := math.Sin(beta / 2)

	for mp := 0; mp <= lmax; mp++ {
		for m := -lmax; m <= lmax; m++ {
			l0 := max(mp, absInt(m))
			if l0 > lmax {
				continue
			}

			prev := 0.0
			cur := wignerStart(l0, mp, m, c, s)
			w.set(l0, mp, m, cur)

			fmp, fm := float64(mp), float64(m)
			for l := l0; l < lmax; l++ {
				fl := float64(l)
				var next float64
				if l == 0 {
					next = cb * cur
				} else {
					l1 := fl + 1
					den := fl * math.Sqrt((l1*l1-fmp*fmp)*(l1*l1-fm*fm))
					a := (2*fl + 1) * (fl*l1*cb - fmp*fm)
					b := l1 * math.Sqrt((fl*fl-fmp*fmp)*(fl*fl-fm*fm))
					next = (a*cur - b*prev) / den
				}
				w.set(l+1, mp, m, next)
				prev, cur = cur, next
			}
		}
	}
}

// wignerStart returns d(j; m', m) for j = max(m', |m|), m' >= 0, with
// c = cos(beta/2) and s = sin(beta/2).
func wignerStart(j, mp, m int, c, s float64) float64 {
	var (
		k        int // index inside the binomial sqrt((2j)!/((j+k)!(j-k)!))
		pc, ps   int // powers of c and s
		negative bool
	)

	switch {
	case mp >= absInt(m): // m' = j
		k, pc, ps = m, j+m, j-m
		negative = (j-m)%2 != 0
	case m == j:
		k, pc, ps = mp, j+mp, j-mp
	default: // m = -j
		k, pc, ps = mp, j-mp, j+mp
		negative = (j+mp)%2 != 0
	}

	lg := func(n int) float64 {
		v, _ := math.Lgamma(float64(n) + 1)
		return v
	}
	logv := 0.5 * (lg(2*j) - lg(j+k) - lg(j-k))

	for _, f := range [2]struct {
		base float64
		pow  int
	}{{c, pc}, {s, ps}} {
		if f.pow == 0 {
			continue
		}
		if f.base == 0 {
			return 0
		}
		logv += float64(f.pow) * math.Log(math.Abs(f.base))
		if f.base < 0 && f.pow%2 != 0 {
			negative = !negative
		}
	}

	v := math.Exp(logv)
	if negative {
		return -v
	}
	return v
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
