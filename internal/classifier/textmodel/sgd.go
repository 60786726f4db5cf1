package textmodel

import (
	"math"
	"math/rand/v2"
)

// intercept updates are damped on sparse input.
const interceptDecay = 0.01

// linear is a binary linear classifier over sparse vectors.
type linear struct {
	weights []float64
	bias    float64
}

func (l linear) decision(x sparse) float64 {
	s := l.bias
	for _, f := range x {
		s += l.weights[f.index] * f.value
	}
	return s
}

type sgdParams struct {
	alpha  float64
	epochs int
	seed   uint64
}

// fitSGD minimises the L2-regularised hinge loss. labels are 0 or 1.
// The learning rate follows the "optimal" schedule eta = 1/(alpha*(t0+t)).
// Samples are visited in a shuffled order fixed by seed.
func fitSGD(xs []sparse, labels []int, size int, p sgdParams) linear {
	v := make([]float64, size)
	wscale := 1.0
	bias := 0.0

	typw := math.Sqrt(1 / math.Sqrt(p.alpha))
	t0 := 1 / (typw * p.alpha)
	t := 1.0

	rng := rand.New(rand.NewPCG(p.seed, p.seed^0x9e3779b97f4a7c15))
	order := make([]int, len(xs))
	for i := range order {
		order[i] = i
	}

	for epoch := 0; epoch < p.epochs; epoch++ {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		for _, k := range order {
			x := xs[k]
			y := -1.0
			if labels[k] == 1 {
				y = 1
			}
			eta := 1 / (p.alpha * (t0 + t))

			margin := bias
			for _, f := range x {
				margin += wscale * v[f.index] * f.value
			}

			wscale *= 1 - eta*p.alpha
			if y*margin < 1 {
				step := eta * y / wscale
				for _, f := range x {
					v[f.index] += step * f.value
				}
				bias += eta * y * interceptDecay
			}
			if wscale < 1e-9 {
				for i := range v {
					v[i] *= wscale
				}
				wscale = 1
			}
			t++
		}
	}

	for i := range v {
		v[i] *= wscale
	}
	return linear{weights: v, bias: bias}
}
