package evaluation

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bayespam/spam-classifier/pkg/corpus"
	"github.com/bayespam/spam-classifier/pkg/learning"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// trainFixture builds a model from two spam documents ("viagra offer")
// and two ham documents ("meeting agenda").
func trainFixture(t *testing.T) learning.Model {
	t.Helper()

	spamDir := t.TempDir()
	hamDir := t.TempDir()
	writeFile(t, spamDir, "spam1.txt", "viagra offer")
	writeFile(t, spamDir, "spam2.txt", "viagra offer")
	writeFile(t, hamDir, "ham1.txt", "meeting agenda")
	writeFile(t, hamDir, "ham2.txt", "meeting agenda")

	spamDocs, err := corpus.ReadFolder(spamDir)
	if err != nil {
		t.Fatalf("ReadFolder(spam): %v", err)
	}
	hamDocs, err := corpus.ReadFolder(hamDir)
	if err != nil {
		t.Fatalf("ReadFolder(ham): %v", err)
	}

	return learning.Learn(spamDocs, hamDocs)
}

func newFixtureDriver(t *testing.T, decisionRule, absentRule string, workers int) *Driver {
	t.Helper()
	classifier, err := learning.NewClassifier(trainFixture(t), &learning.ClassifierConfig{
		DecisionRule: decisionRule,
		AbsentRule:   absentRule,
	})
	if err != nil {
		t.Fatalf("NewClassifier: %v", err)
	}
	return NewDriver(classifier, workers)
}

func TestTrueLabel(t *testing.T) {
	testCases := []struct {
		path     string
		expected learning.Label
	}{
		{"ham1.txt", learning.LabelHam},
		{"spam1.txt", learning.LabelSpam},
		{"message42.txt", learning.LabelSpam},
		{filepath.Join("testdata", "ham", "email1.txt"), learning.LabelSpam}, // base name only
		{filepath.Join("testdata", "ham003.txt"), learning.LabelHam},
	}

	for _, tc := range testCases {
		if got := TrueLabel(tc.path); got != tc.expected {
			t.Errorf("TrueLabel(%s) = %v, expected %v", tc.path, got, tc.expected)
		}
	}
}

func TestRunCorrectedRules(t *testing.T) {
	// The corrected policies classify both held-out emails correctly.
	driver := newFixtureDriver(t, learning.DecisionLogOdds, learning.AbsentComplement, 1)

	testDir := t.TempDir()
	writeFile(t, testDir, "spam9.txt", "viagra offer now")
	writeFile(t, testDir, "ham9.txt", "meeting agenda today")

	result, err := driver.RunFolder(testDir)
	if err != nil {
		t.Fatalf("RunFolder: %v", err)
	}

	if result.Total != 2 {
		t.Errorf("Total = %d, expected 2", result.Total)
	}
	if got := result.Correct(learning.LabelSpam); got != 1 {
		t.Errorf("correct spam = %d, expected 1", got)
	}
	if got := result.Correct(learning.LabelHam); got != 1 {
		t.Errorf("correct ham = %d, expected 1", got)
	}

	expected := "You correctly classified 1 out of 1 spam emails, and 1 out of 1 ham emails."
	if got := result.Summary(); got != expected {
		t.Errorf("Summary = %q, expected %q", got, expected)
	}
}

func TestRunHistoricalRules(t *testing.T) {
	// Under the historical ratio rule both posteriors for the ham email
	// end up positive (the absent-word +1 dominates), so the quotient is
	// non-negative and the ham email is mislabeled as spam. This pins
	// down the literal legacy behavior.
	driver := newFixtureDriver(t, learning.DecisionRatio, learning.AbsentLegacy, 1)

	testDir := t.TempDir()
	writeFile(t, testDir, "spam9.txt", "viagra offer")
	writeFile(t, testDir, "ham9.txt", "meeting agenda")

	result, err := driver.RunFolder(testDir)
	if err != nil {
		t.Fatalf("RunFolder: %v", err)
	}

	if got := result.Correct(learning.LabelSpam); got != 1 {
		t.Errorf("correct spam = %d, expected 1", got)
	}
	if got := result.Matrix[learning.LabelHam][learning.LabelSpam]; got != 1 {
		t.Errorf("ham classified as spam = %d, expected 1 under the historical rule", got)
	}

	expected := "You correctly classified 1 out of 1 spam emails, and 0 out of 1 ham emails."
	if got := result.Summary(); got != expected {
		t.Errorf("Summary = %q, expected %q", got, expected)
	}
}

func TestMatrixCountsSumToTotal(t *testing.T) {
	driver := newFixtureDriver(t, learning.DecisionRatio, learning.AbsentLegacy, 1)

	testDir := t.TempDir()
	for i := 0; i < 5; i++ {
		writeFile(t, testDir, fmt.Sprintf("spam%d.txt", i), "viagra offer win")
		writeFile(t, testDir, fmt.Sprintf("ham%d.txt", i), "meeting agenda report")
	}

	result, err := driver.RunFolder(testDir)
	if err != nil {
		t.Fatalf("RunFolder: %v", err)
	}

	sum := 0
	for _, row := range result.Matrix {
		for _, count := range row {
			sum += count
		}
	}
	if sum != result.Total {
		t.Errorf("matrix sum = %d, Total = %d", sum, result.Total)
	}
	if result.TotalFor(learning.LabelSpam) != 5 || result.TotalFor(learning.LabelHam) != 5 {
		t.Errorf("row sums = %d/%d, expected 5/5",
			result.TotalFor(learning.LabelSpam), result.TotalFor(learning.LabelHam))
	}
}

func TestParallelRunMatchesSequential(t *testing.T) {
	testDir := t.TempDir()
	for i := 0; i < 20; i++ {
		writeFile(t, testDir, fmt.Sprintf("spam%d.txt", i), "viagra offer now")
		writeFile(t, testDir, fmt.Sprintf("ham%d.txt", i), "meeting agenda today")
	}

	sequential := newFixtureDriver(t, learning.DecisionLogOdds, learning.AbsentComplement, 1)
	parallel := newFixtureDriver(t, learning.DecisionLogOdds, learning.AbsentComplement, 8)

	seqResult, err := sequential.RunFolder(testDir)
	if err != nil {
		t.Fatalf("sequential RunFolder: %v", err)
	}
	parResult, err := parallel.RunFolder(testDir)
	if err != nil {
		t.Fatalf("parallel RunFolder: %v", err)
	}

	if seqResult.Matrix != parResult.Matrix {
		t.Errorf("parallel matrix %v differs from sequential %v", parResult.Matrix, seqResult.Matrix)
	}
}

func TestRunUnreadableFileIsFatal(t *testing.T) {
	driver := newFixtureDriver(t, learning.DecisionRatio, learning.AbsentLegacy, 1)

	if _, err := driver.Run([]string{filepath.Join(t.TempDir(), "missing.txt")}); err == nil {
		t.Error("expected error for unreadable test file")
	}
}

func TestRunFolderMissing(t *testing.T) {
	driver := newFixtureDriver(t, learning.DecisionRatio, learning.AbsentLegacy, 1)

	if _, err := driver.RunFolder(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing test folder")
	}
}
