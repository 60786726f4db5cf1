package textmodel

var (
	corpusWords = []string{
		"apple", "river", "window", "garden", "candle", "bridge", "pocket", "silver",
		"thunder", "market", "ladder", "orange", "pillow", "forest", "engine", "mirror",
		"basket", "castle", "feather", "harbor", "island", "jacket", "kettle", "lemon",
	}
	corpusExamples = []string{
		"she ate an apple after lunch",
		"we swam across the river yesterday",
		"please close the window now",
		"my grandmother grows roses in her garden",
		"he lit a candle in the dark",
		"the old bridge was closed for repairs",
		"keep the keys in your pocket",
		"the spoon is made of silver",
		"we heard thunder all night long",
		"they sell fresh fish at the market",
		"climb the ladder very carefully",
		"would you like some orange juice",
		"the cat sleeps on my pillow",
		"wolves live deep in the forest",
		"the engine makes a strange noise",
		"she looked at herself in the mirror",
		"put the bread into the basket",
		"the king lived in a castle",
		"a feather fell from the sky",
		"ships wait in the harbor today",
		"they spent a week on an island",
		"take a warm jacket with you",
		"the kettle is boiling again",
		"add a slice of lemon to the tea",
	}
)

// corpus interleaves words (label 0) and examples (label 1) row by row.
func corpus() ([]string, []int) {
	texts := make([]string, 0, 2*len(corpusWords))
	labels := make([]int, 0, 2*len(corpusWords))
	for i := range corpusWords {
		texts = append(texts, corpusWords[i], corpusExamples[i])
		labels = append(labels, 0, 1)
	}
	return texts, labels
}
