package textmodel

import "math"

// tfidf holds smoothed inverse document frequencies:
// idf(t) = ln((1+n)/(1+df(t))) + 1.
type tfidf struct {
	idf []float64
}

func fitTFIDF(docs []sparse, size int) tfidf {
	df := make([]float64, size)
	for _, d := range docs {
		for _, f := range d {
			df[f.index]++
		}
	}
	n := float64(len(docs))
	idf := make([]float64, size)
	for i := range idf {
		idf[i] = math.Log((1+n)/(1+df[i])) + 1
	}
	return tfidf{idf: idf}
}

// apply reweights counts in place and scales the vector to unit L2 norm.
func (t tfidf) apply(vec sparse) sparse {
	var norm float64
	for i := range vec {
		vec[i].value *= t.idf[vec[i].index]
		norm += vec[i].value * vec[i].value
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i].value /= norm
	}
	return vec
}
