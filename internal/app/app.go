package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vocabtrainer/internal/adapter/gsheets"
	"github.com/heartmarshall/vocabtrainer/internal/adapter/postgres"
	accountrepo "github.com/heartmarshall/vocabtrainer/internal/adapter/postgres/account"
	"github.com/heartmarshall/vocabtrainer/internal/adapter/postgres/word"
	"github.com/heartmarshall/vocabtrainer/internal/classifier"
	"github.com/heartmarshall/vocabtrainer/internal/classifier/textmodel"
	"github.com/heartmarshall/vocabtrainer/internal/config"
	accountsvc "github.com/heartmarshall/vocabtrainer/internal/service/account"
	"github.com/heartmarshall/vocabtrainer/internal/service/study"
	"github.com/heartmarshall/vocabtrainer/internal/service/training"
	"github.com/heartmarshall/vocabtrainer/internal/service/vocabulary"
)

// App holds the services of one command run.
type App struct {
	Config *config.Config
	Log    *slog.Logger

	Models   *textmodel.Cache
	Loader   *classifier.Loader
	Training *training.Service

	// Set by Connect.
	Accounts   *accountsvc.Service
	Vocabulary *vocabulary.Service
	Study      *study.Service

	pool *pgxpool.Pool
}

// New wires the parts that work without a database: the classifier and
// model training.
func New(cfg *config.Config, logger *slog.Logger) *App {
	models := textmodel.NewCache()
	classify := ClassifierOptions(cfg.Classifier)

	return &App{
		Config: cfg,
		Log:    logger,
		Models: models,
		Loader: classifier.NewLoader(models, cfg.Classifier.EnglishModel, cfg.Classifier.RussianModel, classify),
		Training: training.NewService(logger, models,
			training.Paths{English: cfg.Classifier.EnglishModel, Russian: cfg.Classifier.RussianModel},
			classify, TrainOptions(cfg.Classifier)),
	}
}

// Connect opens the database pool and wires the services that store words.
func (a *App) Connect(ctx context.Context) error {
	pool, err := postgres.NewPool(ctx, a.Config.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	a.pool = pool

	tx := postgres.NewTxManager(pool)
	words := word.New(pool)

	var spreadsheets vocabulary.SpreadsheetStore
	if path := a.Config.GSheets.CredentialsFile; path != "" {
		client, err := gsheets.NewFromCredentials(ctx, path)
		if err != nil {
			return fmt.Errorf("connect to google sheets: %w", err)
		}
		spreadsheets = client
	}

	a.Accounts = accountsvc.NewService(a.Log, accountrepo.New(pool), a.Config.Account)
	a.Vocabulary = vocabulary.NewService(a.Log, words, tx, a.Loader, a.Config.Import, a.Config.Export,
		spreadsheets, a.Config.GSheets)
	a.Study = study.NewService(a.Log, words, a.Config.Study)
	return nil
}

// Migrate applies the embedded schema migrations.
func (a *App) Migrate(ctx context.Context) error {
	return postgres.Migrate(ctx, a.Config.Database.DSN, a.Log)
}

// Close releases the database pool, if any.
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

// ClassifierOptions converts the classifier configuration.
func ClassifierOptions(cfg config.ClassifierConfig) classifier.Options {
	return classifier.Options{
		MajorityShare: cfg.MajorityShare,
		NumericShare:  cfg.NumericShare,
		WordThreshold: cfg.WordThreshold,
	}
}

// TrainOptions converts the training parameters of the classifier configuration.
func TrainOptions(cfg config.ClassifierConfig) textmodel.Options {
	return textmodel.Options{
		Alpha:         cfg.Alpha,
		Epochs:        cfg.Epochs,
		NgramMax:      cfg.NgramMax,
		Seed:          cfg.Seed,
		ShapeFeatures: cfg.ShapeFeatures,
	}
}
