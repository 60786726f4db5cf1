package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Import     ImportConfig     `yaml:"import"`
	Study      StudyConfig      `yaml:"study"`
	Export     ExportConfig     `yaml:"export"`
	Account    AccountConfig    `yaml:"account"`
	GSheets    GSheetsConfig    `yaml:"gsheets"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-default:"postgres://localhost:5432/vocab?sslmode=disable"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// ClassifierConfig holds column-role classifier settings. Empty model paths
// are resolved under the XDG data directory during validation.
type ClassifierConfig struct {
	EnglishModel  string  `yaml:"english_model"  env:"CLASSIFIER_ENGLISH_MODEL"`
	RussianModel  string  `yaml:"russian_model"  env:"CLASSIFIER_RUSSIAN_MODEL"`
	MajorityShare float64 `yaml:"majority_share" env:"CLASSIFIER_MAJORITY_SHARE" env-default:"0.5"`
	NumericShare  float64 `yaml:"numeric_share"  env:"CLASSIFIER_NUMERIC_SHARE"  env-default:"0.5"`
	WordThreshold float64 `yaml:"word_threshold" env:"CLASSIFIER_WORD_THRESHOLD" env-default:"0.5"`
	Alpha         float64 `yaml:"alpha"          env:"CLASSIFIER_ALPHA"          env-default:"0.0001"`
	Epochs        int     `yaml:"epochs"         env:"CLASSIFIER_EPOCHS"         env-default:"20"`
	NgramMax      int     `yaml:"ngram_max"      env:"CLASSIFIER_NGRAM_MAX"      env-default:"1"`
	Seed          uint64  `yaml:"seed"           env:"CLASSIFIER_SEED"           env-default:"42"`
	ShapeFeatures bool    `yaml:"shape_features" env:"CLASSIFIER_SHAPE_FEATURES" env-default:"true"`
}

// ImportConfig holds spreadsheet import settings.
type ImportConfig struct {
	ChunkSize   int `yaml:"chunk_size"  env:"IMPORT_CHUNK_SIZE"  env-default:"50"`
	Parallelism int `yaml:"parallelism" env:"IMPORT_PARALLELISM" env-default:"4"`
}

// StudyConfig holds flashcard settings.
type StudyConfig struct {
	CardLimit  int `yaml:"card_limit"  env:"STUDY_CARD_LIMIT"  env-default:"20"`
	RecentDays int `yaml:"recent_days" env:"STUDY_RECENT_DAYS" env-default:"7"`
}

// ExportConfig holds spreadsheet export settings.
type ExportConfig struct {
	SheetName string `yaml:"sheet_name" env:"EXPORT_SHEET_NAME" env-default:"Vocabulary"`
}

// AccountConfig holds account settings.
type AccountConfig struct {
	PasswordHashCost int `yaml:"password_hash_cost" env:"ACCOUNT_PASSWORD_HASH_COST" env-default:"10"`
}

// GSheetsConfig holds Google Sheets settings. Spreadsheet import and export
// are disabled while CredentialsFile is empty.
type GSheetsConfig struct {
	CredentialsFile string `yaml:"credentials_file" env:"GSHEETS_CREDENTIALS_FILE"`
	ShareWith       string `yaml:"share_with"       env:"GSHEETS_SHARE_WITH"`
	ShareRole       string `yaml:"share_role"       env:"GSHEETS_SHARE_ROLE"       env-default:"writer"`
}
