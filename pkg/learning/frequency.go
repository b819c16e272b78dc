package learning

import (
	"github.com/bayespam/spam-classifier/pkg/corpus"
)

// pseudocount is the additive smoothing constant. Every word observed in
// a training class starts from this floor, so no observed word ever
// estimates to probability zero.
const pseudocount = 1

// WordFrequencyTable maps each word observed in one class's training
// documents to the log of its smoothed document frequency. Words never
// seen in the class are absent from the table entirely; scoring them is
// the classifier's job, not the table's. Built once per training run and
// read-only afterwards.
type WordFrequencyTable struct {
	LogProbs map[string]float64
	DocCount int
}

// WordCounts computes smoothed document-frequency counts for docs: each
// word observed anywhere in the list starts at the pseudocount, then
// gains one per document it appears in. A word appearing many times in
// one document still counts once.
func WordCounts(docs []corpus.Document) map[string]int {
	counts := make(map[string]int)

	for _, doc := range docs {
		for word := range doc {
			if _, seen := counts[word]; !seen {
				counts[word] = pseudocount
			}
			counts[word]++
		}
	}

	return counts
}

// NewWordFrequencyTable builds the log-probability table for one class's
// training documents: log of smoothed count over document count. An
// empty document list yields an empty table, which callers must
// tolerate.
func NewWordFrequencyTable(docs []corpus.Document) WordFrequencyTable {
	counts := WordCounts(docs)

	table := WordFrequencyTable{
		LogProbs: make(map[string]float64, len(counts)),
		DocCount: len(docs),
	}

	for word, count := range counts {
		table.LogProbs[word] = CarefulLog(float64(count) / float64(len(docs)))
	}

	return table
}

// Contains reports whether the word was observed in this class's
// training documents.
func (t WordFrequencyTable) Contains(word string) bool {
	_, ok := t.LogProbs[word]
	return ok
}

// VocabularySize returns the number of distinct words in the table.
func (t WordFrequencyTable) VocabularySize() int {
	return len(t.LogProbs)
}
