// Package classifier works out which spreadsheet column holds which part of
// a vocabulary entry: the English word, its transcription, an English
// example, the Russian translation and a Russian example.
//
// Columns are first bucketed by alphabet. Buckets holding two columns are
// split by comparing the mean label a trained text model assigns to each
// column's cells (0 = word, 1 = example); single columns are split by a
// threshold.
package classifier

// Options holds the decision thresholds of the classifier.
type Options struct {
	// MajorityShare is the share of rows that must pass an alphabet check
	// for a column to join that alphabet's bucket.
	MajorityShare float64
	// NumericShare is the share of rows that must be digit-only for a
	// column to be dropped as numeric.
	NumericShare float64
	// WordThreshold splits a lone column: a mean label below it is a word,
	// otherwise an example.
	WordThreshold float64
}

// DefaultOptions returns the thresholds the models were tuned with.
func DefaultOptions() Options {
	return Options{
		MajorityShare: 0.5,
		NumericShare:  0.5,
		WordThreshold: 0.5,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MajorityShare <= 0 {
		o.MajorityShare = d.MajorityShare
	}
	if o.NumericShare <= 0 {
		o.NumericShare = d.NumericShare
	}
	if o.WordThreshold <= 0 {
		o.WordThreshold = d.WordThreshold
	}
	return o
}

// quorum returns floor(rows*share), but never less than one, so a column
// needs at least one passing cell.
func quorum(rows int, share float64) int {
	return max(1, int(float64(rows)*share))
}
