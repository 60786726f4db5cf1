package classifier

import (
	"github.com/heartmarshall/vocabtrainer/internal/classifier/textmodel"
	"github.com/heartmarshall/vocabtrainer/internal/domain"
)

// Loader resolves tables with the models stored at fixed paths. Models are
// read on first use and shared through the cache, so retraining only needs
// to invalidate the cache entries.
type Loader struct {
	cache   *textmodel.Cache
	english string
	russian string
	opts    Options
}

// NewLoader creates a loader for the English and Russian model files.
func NewLoader(cache *textmodel.Cache, englishPath, russianPath string, opts Options) *Loader {
	return &Loader{cache: cache, english: englishPath, russian: russianPath, opts: opts}
}

// Resolver returns a resolver backed by the current models.
func (l *Loader) Resolver() (*Resolver, error) {
	return LoadResolver(l.cache, l.english, l.russian, l.opts)
}

// ResolveAndAssemble loads the models and resolves t.
func (l *Loader) ResolveAndAssemble(t domain.Table) (domain.RoleMapping, domain.Table, error) {
	r, err := l.Resolver()
	if err != nil {
		return domain.RoleMapping{}, domain.Table{}, err
	}
	return r.ResolveAndAssemble(t)
}
