package learning

import (
	"fmt"
	"math"

	"github.com/bayespam/spam-classifier/pkg/corpus"
)

// Decision rule names. The historical rule compares the raw ratio of
// the two posterior accumulators against zero; because both posteriors
// are usually negative sums of log-probabilities, that comparison is not
// equivalent to the log-odds difference and is kept only for
// compatibility with the historical behavior. The log-odds rule is the
// corrected variant.
const (
	DecisionRatio   = "ratio"
	DecisionLogOdds = "log-odds"
)

// Absent-word scoring rule names. The historical rule adds 1 minus the
// table value for a word missing from a class table; on a map miss the
// value is the float64 zero, so the contribution is a flat +1 rather
// than any log-probability. The complement rule scores the absence as
// log(1 - p) using the smoothed floor probability the pseudocount would
// assign the word.
const (
	AbsentLegacy     = "legacy"
	AbsentComplement = "complement"
)

// ClassifierConfig selects the scoring policies.
type ClassifierConfig struct {
	DecisionRule string
	AbsentRule   string
}

// DefaultClassifierConfig returns the historical policies.
func DefaultClassifierConfig() *ClassifierConfig {
	return &ClassifierConfig{
		DecisionRule: DecisionRatio,
		AbsentRule:   AbsentLegacy,
	}
}

// Classifier labels documents against a trained model. The model is
// read-only here, so a single classifier may be shared across
// goroutines.
type Classifier struct {
	model  Model
	decide func(spam, ham float64) Label
	absent func(table WordFrequencyTable, missValue float64) float64
}

// NewClassifier builds a classifier for model with the configured
// policies. A nil config selects the historical behavior.
func NewClassifier(model Model, config *ClassifierConfig) (*Classifier, error) {
	if config == nil {
		config = DefaultClassifierConfig()
	}

	c := &Classifier{model: model}

	switch config.DecisionRule {
	case DecisionRatio:
		c.decide = decideByRatio
	case DecisionLogOdds:
		c.decide = decideByLogOdds
	default:
		return nil, fmt.Errorf("unknown decision rule: %s", config.DecisionRule)
	}

	switch config.AbsentRule {
	case AbsentLegacy:
		c.absent = legacyAbsentScore
	case AbsentComplement:
		c.absent = complementAbsentScore
	default:
		return nil, fmt.Errorf("unknown absent-word rule: %s", config.AbsentRule)
	}

	return c, nil
}

// Model returns the trained model the classifier scores against.
func (c *Classifier) Model() Model {
	return c.model
}

// Posteriors accumulates, per class, the log-prior plus one contribution
// per distinct word in the document: the table's log-probability when
// the class observed the word during training, the absent-word policy's
// score otherwise. Unseen words are not an error for either class.
func (c *Classifier) Posteriors(doc corpus.Document) [numLabels]float64 {
	var posteriors [numLabels]float64

	for _, label := range Labels() {
		table := c.model.Tables[label]
		posterior := c.model.Priors[label]

		for word := range doc {
			logProb, seen := table.LogProbs[word]
			if seen {
				posterior += logProb
			} else {
				posterior += c.absent(table, logProb)
			}
		}

		posteriors[label] = posterior
	}

	return posteriors
}

// Classify returns the label the decision rule picks for the document.
// Classification is pure: the same document against the same model
// always yields the same label.
func (c *Classifier) Classify(doc corpus.Document) Label {
	posteriors := c.Posteriors(doc)
	return c.decide(posteriors[LabelSpam], posteriors[LabelHam])
}

// decideByRatio is the historical decision rule: spam wins when the raw
// quotient of the accumulators is non-negative. For two negative
// posteriors the quotient is positive regardless of which is larger, so
// this is not a maximum-a-posteriori test. Kept as the default for
// compatibility.
func decideByRatio(spam, ham float64) Label {
	if spam/ham >= 0 {
		return LabelSpam
	}
	return LabelHam
}

// decideByLogOdds is the corrected rule: spam wins when its posterior is
// at least the ham posterior.
func decideByLogOdds(spam, ham float64) Label {
	if spam-ham >= 0 {
		return LabelSpam
	}
	return LabelHam
}

// legacyAbsentScore reproduces the historical contribution for a word
// missing from a class table: one minus the looked-up value, which for a
// map miss is the float64 zero value. The result is a constant +1, not
// log(1-p).
func legacyAbsentScore(_ WordFrequencyTable, missValue float64) float64 {
	return 1 - missValue
}

// complementAbsentScore scores an absent word as log(1 - p) where p is
// the smoothed floor probability a single pseudocount would give the
// word in this class. An empty table carries no evidence either way and
// contributes nothing.
func complementAbsentScore(table WordFrequencyTable, _ float64) float64 {
	if table.DocCount == 0 {
		return 0
	}
	floor := float64(pseudocount) / float64(table.DocCount)
	return math.Log1p(-floor)
}
