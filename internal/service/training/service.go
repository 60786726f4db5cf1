// Package training retrains the column classifier models from a workbook of
// correctly laid out vocabulary.
package training

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/vocabtrainer/internal/adapter/excel"
	"github.com/heartmarshall/vocabtrainer/internal/classifier"
	"github.com/heartmarshall/vocabtrainer/internal/classifier/textmodel"
	"github.com/heartmarshall/vocabtrainer/internal/domain"
)

type modelCache interface {
	Invalidate(path string)
}

// Paths locates the persisted models.
type Paths struct {
	English string
	Russian string
}

// Service trains and stores the English and Russian models.
type Service struct {
	log      *slog.Logger
	cache    modelCache
	paths    Paths
	classify classifier.Options
	train    textmodel.Options
}

// NewService creates a new training service.
func NewService(logger *slog.Logger, cache modelCache, paths Paths, classify classifier.Options, train textmodel.Options) *Service {
	return &Service{
		log:      logger.With("service", "training"),
		cache:    cache,
		paths:    paths,
		classify: classify,
		train:    train,
	}
}

// RelearnInput tunes one training run.
type RelearnInput struct {
	// Report scores each model on the half of its samples it was not fitted on.
	Report bool
}

// RelearnResult describes the stored models.
type RelearnResult struct {
	Sheets  int
	English ModelResult
	Russian ModelResult
}

// ModelResult describes one trained model.
type ModelResult struct {
	Path       string
	Samples    int
	Vocabulary int
	Report     *textmodel.Report
}

// Relearn trains both models from every sheet of the workbook at path and
// replaces the stored models. Every sheet must use the same kinds of columns
// so that each language has exactly a word and an example column.
func (s *Service) Relearn(ctx context.Context, path string, input RelearnInput) (*RelearnResult, error) {
	sheets, err := excel.ReadWorkbook(path)
	if err != nil {
		return nil, err
	}

	tables := make([]domain.Table, len(sheets))
	for i, sh := range sheets {
		tables[i] = sh.Table
	}

	english, russian, err := classifier.TrainingSets(tables, s.classify)
	if err != nil {
		return nil, fmt.Errorf("build training sets: %w", err)
	}

	opts := s.train
	opts.Evaluate = input.Report

	result := &RelearnResult{Sheets: len(sheets)}
	var engModel, rusModel *textmodel.Model

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, rep, err := trainOne(ctx, english, opts)
		if err != nil {
			return fmt.Errorf("train english model: %w", err)
		}
		engModel = m
		result.English = ModelResult{Path: s.paths.English, Samples: m.Samples(), Vocabulary: m.Vocabulary(), Report: rep}
		return nil
	})
	g.Go(func() error {
		m, rep, err := trainOne(ctx, russian, opts)
		if err != nil {
			return fmt.Errorf("train russian model: %w", err)
		}
		rusModel = m
		result.Russian = ModelResult{Path: s.paths.Russian, Samples: m.Samples(), Vocabulary: m.Vocabulary(), Report: rep}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := textmodel.Save(s.paths.English, engModel); err != nil {
		return nil, err
	}
	s.cache.Invalidate(s.paths.English)
	if err := textmodel.Save(s.paths.Russian, rusModel); err != nil {
		return nil, err
	}
	s.cache.Invalidate(s.paths.Russian)

	s.log.InfoContext(ctx, "models retrained",
		slog.String("workbook", path),
		slog.Int("english_samples", result.English.Samples),
		slog.Int("russian_samples", result.Russian.Samples),
	)
	return result, nil
}

func trainOne(ctx context.Context, ds classifier.Dataset, opts textmodel.Options) (*textmodel.Model, *textmodel.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return textmodel.Train(ds.Texts, ds.Labels, opts)
}
