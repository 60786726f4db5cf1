package textmodel

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/heartmarshall/vocabtrainer/internal/domain"
)

const (
	artifactFormat  = "vocabtrainer.textmodel"
	artifactVersion = 1
)

type artifact struct {
	Format        string    `json:"format"`
	Version       int       `json:"version"`
	TrainedAt     time.Time `json:"trained_at"`
	Samples       int       `json:"samples"`
	NgramMax      int       `json:"ngram_max"`
	ShapeFeatures bool      `json:"shape_features"`
	Terms         []string  `json:"terms"`
	IDF           []float64 `json:"idf"`
	Weights       []float64 `json:"weights"`
	Bias          float64   `json:"bias"`
}

// Save writes m to path. The file is written next to path and renamed into
// place, so readers never see a partial model.
func Save(path string, m *Model) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create model dir: %w", err)
	}
	data, err := json.Marshal(artifact{
		Format:        artifactFormat,
		Version:       artifactVersion,
		TrainedAt:     m.trainedAt,
		Samples:       m.samples,
		NgramMax:      m.vec.ngramMax,
		ShapeFeatures: m.vec.shape,
		Terms:         m.vec.terms,
		IDF:           m.weights.idf,
		Weights:       m.clf.weights,
		Bias:          m.clf.bias,
	})
	if err != nil {
		return fmt.Errorf("encode model: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp model: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp model: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp model: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename model: %w", err)
	}
	return nil
}

// Load reads a model written by Save. Every failure is a
// *domain.ModelLoadError; artifacts of another format or version also match
// domain.ErrModelVersion.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ModelLoadError{Path: path, Err: err}
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, &domain.ModelLoadError{Path: path, Err: fmt.Errorf("decode: %w", err)}
	}
	if a.Format != artifactFormat || a.Version != artifactVersion {
		return nil, &domain.ModelLoadError{Path: path, Err: fmt.Errorf("%w: format %q version %d",
			domain.ErrModelVersion, a.Format, a.Version)}
	}
	if err := a.check(); err != nil {
		return nil, &domain.ModelLoadError{Path: path, Err: err}
	}

	vec := newVectorizer(a.NgramMax, a.ShapeFeatures)
	vec.terms = a.Terms
	vec.index()
	return &Model{
		vec:       vec,
		weights:   tfidf{idf: a.IDF},
		clf:       linear{weights: a.Weights, bias: a.Bias},
		trainedAt: a.TrainedAt,
		samples:   a.Samples,
	}, nil
}

func (a artifact) check() error {
	if len(a.Terms) == 0 {
		return errors.New("empty vocabulary")
	}
	if len(a.IDF) != len(a.Terms) || len(a.Weights) != len(a.Terms) {
		return fmt.Errorf("vocabulary of %d terms has %d idf and %d weights",
			len(a.Terms), len(a.IDF), len(a.Weights))
	}
	return nil
}
