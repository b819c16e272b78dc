package learning

import (
	"github.com/bayespam/spam-classifier/pkg/corpus"
)

// Label identifies one of the two email classes. The numeric values are
// load-bearing: spam is always index 0 and ham index 1, and the Model's
// parallel arrays follow the same order.
type Label int

const (
	LabelSpam Label = iota
	LabelHam

	numLabels = 2
)

// String returns the lowercase class name.
func (l Label) String() string {
	switch l {
	case LabelSpam:
		return "spam"
	case LabelHam:
		return "ham"
	default:
		return "unknown"
	}
}

// Labels returns both labels in their fixed order.
func Labels() [numLabels]Label {
	return [numLabels]Label{LabelSpam, LabelHam}
}

// Model holds everything a training run learns: one word frequency
// table and one log-prior per class, both indexed by Label. Immutable
// after Learn returns; safe for concurrent readers.
type Model struct {
	Tables [numLabels]WordFrequencyTable
	Priors [numLabels]float64
}

// Learn builds the model from the two training corpora. Each class's
// table comes from its own documents only; the priors are the log of
// each class's share of the combined document count. A class with zero
// training documents gets a -Inf prior and classification effectively
// always rejects it, but nothing crashes.
func Learn(spam, ham []corpus.Document) Model {
	total := len(spam) + len(ham)

	var model Model
	model.Tables[LabelSpam] = NewWordFrequencyTable(spam)
	model.Tables[LabelHam] = NewWordFrequencyTable(ham)
	model.Priors[LabelSpam] = CarefulLog(float64(len(spam)) / float64(total))
	model.Priors[LabelHam] = CarefulLog(float64(len(ham)) / float64(total))

	return model
}
