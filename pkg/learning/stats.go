package learning

import (
	"fmt"
	"io"
	"math"
	"sort"
)

// WordStats summarizes how strongly one word signals each class. The
// probabilities are the smoothed document frequencies recovered from the
// model's log tables; a word missing from a class's table has
// probability zero there.
type WordStats struct {
	Word       string
	SpamProb   float64
	HamProb    float64
	Spamminess float64
}

// ModelInfo contains summary figures for a trained model.
type ModelInfo struct {
	SpamDocuments  int
	HamDocuments   int
	SpamVocabulary int
	HamVocabulary  int
	VocabularySize int
	SpamPrior      float64
	HamPrior       float64
}

// Info returns summary figures for the model.
func (m Model) Info() ModelInfo {
	vocab := m.Tables[LabelSpam].VocabularySize()
	for word := range m.Tables[LabelHam].LogProbs {
		if !m.Tables[LabelSpam].Contains(word) {
			vocab++
		}
	}

	return ModelInfo{
		SpamDocuments:  m.Tables[LabelSpam].DocCount,
		HamDocuments:   m.Tables[LabelHam].DocCount,
		SpamVocabulary: m.Tables[LabelSpam].VocabularySize(),
		HamVocabulary:  m.Tables[LabelHam].VocabularySize(),
		VocabularySize: vocab,
		SpamPrior:      m.Priors[LabelSpam],
		HamPrior:       m.Priors[LabelHam],
	}
}

// WordStats returns the statistics for one word, or nil if neither
// class observed it during training.
func (m Model) WordStats(word string) *WordStats {
	spamLog, inSpam := m.Tables[LabelSpam].LogProbs[word]
	hamLog, inHam := m.Tables[LabelHam].LogProbs[word]

	if !inSpam && !inHam {
		return nil
	}

	var spamProb, hamProb float64
	if inSpam {
		spamProb = math.Exp(spamLog)
	}
	if inHam {
		hamProb = math.Exp(hamLog)
	}

	var spamminess float64
	if spamProb+hamProb > 0 {
		spamminess = spamProb / (spamProb + hamProb)
	}

	return &WordStats{
		Word:       word,
		SpamProb:   spamProb,
		HamProb:    hamProb,
		Spamminess: spamminess,
	}
}

// TopSpamWords returns up to limit words sorted by descending
// spamminess, drawn from the spam class's vocabulary.
func (m Model) TopSpamWords(limit int) []*WordStats {
	var words []*WordStats
	for word := range m.Tables[LabelSpam].LogProbs {
		if stats := m.WordStats(word); stats != nil {
			words = append(words, stats)
		}
	}

	sort.Slice(words, func(i, j int) bool {
		if words[i].Spamminess != words[j].Spamminess {
			return words[i].Spamminess > words[j].Spamminess
		}
		return words[i].Word < words[j].Word
	})

	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}

	return words
}

// TopHamWords returns up to limit words sorted by ascending spamminess,
// drawn from the ham class's vocabulary.
func (m Model) TopHamWords(limit int) []*WordStats {
	var words []*WordStats
	for word := range m.Tables[LabelHam].LogProbs {
		if stats := m.WordStats(word); stats != nil {
			words = append(words, stats)
		}
	}

	sort.Slice(words, func(i, j int) bool {
		if words[i].Spamminess != words[j].Spamminess {
			return words[i].Spamminess < words[j].Spamminess
		}
		return words[i].Word < words[j].Word
	})

	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}

	return words
}

// PrintStats writes a human-readable model summary.
func (m Model) PrintStats(w io.Writer, topWords int) {
	info := m.Info()

	fmt.Fprintf(w, "🧠 Naive Bayes Model\n")
	fmt.Fprintf(w, "════════════════════════════════════════\n")
	fmt.Fprintf(w, "Training Data:\n")
	fmt.Fprintf(w, "  Spam emails: %d\n", info.SpamDocuments)
	fmt.Fprintf(w, "  Ham emails: %d\n", info.HamDocuments)
	fmt.Fprintf(w, "  Spam vocabulary: %d\n", info.SpamVocabulary)
	fmt.Fprintf(w, "  Ham vocabulary: %d\n", info.HamVocabulary)
	fmt.Fprintf(w, "  Combined vocabulary: %d\n", info.VocabularySize)
	fmt.Fprintf(w, "  Log prior (spam): %.4f\n", info.SpamPrior)
	fmt.Fprintf(w, "  Log prior (ham): %.4f\n", info.HamPrior)

	if topWords <= 0 {
		return
	}

	fmt.Fprintf(w, "\n📈 Top Spam Words:\n")
	for i, stats := range m.TopSpamWords(topWords) {
		fmt.Fprintf(w, "  %2d. %-15s (%.3f spamminess)\n", i+1, stats.Word, stats.Spamminess)
	}

	fmt.Fprintf(w, "\n📉 Top Ham Words:\n")
	for i, stats := range m.TopHamWords(topWords) {
		fmt.Fprintf(w, "  %2d. %-15s (%.3f spamminess)\n", i+1, stats.Word, stats.Spamminess)
	}

	fmt.Fprintf(w, "\n")
}
