package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const appDir = "vocabtrainer"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Classifier.validate(); err != nil {
		return fmt.Errorf("classifier: %w", err)
	}

	if c.Import.ChunkSize < 1 || c.Import.ChunkSize > 1000 {
		return fmt.Errorf("import.chunk_size must be in [1, 1000] (got %d)", c.Import.ChunkSize)
	}
	if c.Import.Parallelism < 1 {
		return fmt.Errorf("import.parallelism must be >= 1 (got %d)", c.Import.Parallelism)
	}

	if c.Study.CardLimit < 1 {
		return fmt.Errorf("study.card_limit must be >= 1 (got %d)", c.Study.CardLimit)
	}
	if c.Study.RecentDays < 1 {
		return fmt.Errorf("study.recent_days must be >= 1 (got %d)", c.Study.RecentDays)
	}

	if strings.TrimSpace(c.Export.SheetName) == "" {
		return fmt.Errorf("export.sheet_name is required")
	}

	if c.Account.PasswordHashCost < 4 || c.Account.PasswordHashCost > 31 {
		return fmt.Errorf("account.password_hash_cost must be in [4, 31] (got %d)", c.Account.PasswordHashCost)
	}

	switch c.GSheets.ShareRole {
	case "reader", "writer", "owner":
	default:
		return fmt.Errorf("gsheets.share_role must be reader, writer or owner (got %q)", c.GSheets.ShareRole)
	}

	return nil
}

func (c *ClassifierConfig) validate() error {
	for name, share := range map[string]float64{
		"majority_share": c.MajorityShare,
		"numeric_share":  c.NumericShare,
		"word_threshold": c.WordThreshold,
	} {
		if share <= 0 || share > 1 {
			return fmt.Errorf("%s must be in (0, 1] (got %v)", name, share)
		}
	}
	if c.Alpha <= 0 {
		return fmt.Errorf("alpha must be > 0 (got %v)", c.Alpha)
	}
	if c.Epochs < 1 {
		return fmt.Errorf("epochs must be >= 1 (got %d)", c.Epochs)
	}
	if c.NgramMax < 1 || c.NgramMax > 3 {
		return fmt.Errorf("ngram_max must be in [1, 3] (got %d)", c.NgramMax)
	}

	if c.EnglishModel == "" {
		c.EnglishModel = DefaultModelPath("model_eng.json")
	}
	if c.RussianModel == "" {
		c.RussianModel = DefaultModelPath("model_rus.json")
	}
	if c.EnglishModel == c.RussianModel {
		return fmt.Errorf("english_model and russian_model must differ (both %q)", c.EnglishModel)
	}
	return nil
}

// DefaultModelPath returns where a model file lives when none is configured.
func DefaultModelPath(name string) string {
	return filepath.Join(xdg.DataHome, appDir, name)
}
