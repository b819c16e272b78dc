package evaluation

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bayespam/spam-classifier/pkg/corpus"
	"github.com/bayespam/spam-classifier/pkg/learning"
)

// Result tabulates one evaluation run. Matrix is a 2x2 confusion matrix
// indexed [true label][guessed label] using the learning package's
// label order (spam 0, ham 1).
type Result struct {
	Matrix   [2][2]int
	Total    int
	Duration time.Duration
}

// Correct returns the number of test emails with true label that were
// classified correctly (the matrix diagonal).
func (r *Result) Correct(label learning.Label) int {
	return r.Matrix[label][label]
}

// TotalFor returns the number of test emails with the given true label
// (the matrix row sum).
func (r *Result) TotalFor(label learning.Label) int {
	total := 0
	for _, count := range r.Matrix[label] {
		total += count
	}
	return total
}

// Summary renders the classification report line.
func (r *Result) Summary() string {
	return fmt.Sprintf("You correctly classified %d out of %d spam emails, and %d out of %d ham emails.",
		r.Correct(learning.LabelSpam), r.TotalFor(learning.LabelSpam),
		r.Correct(learning.LabelHam), r.TotalFor(learning.LabelHam))
}

// TrueLabel derives the ground-truth label from a test file's name:
// files with "ham" in the base name are ham, everything else is spam.
func TrueLabel(path string) learning.Label {
	if strings.Contains(filepath.Base(path), "ham") {
		return learning.LabelHam
	}
	return learning.LabelSpam
}

// Driver runs a classifier over a held-out test set. Each classification
// is independent and the model is read-only, so the driver may score
// files concurrently when configured with more than one worker.
type Driver struct {
	classifier *learning.Classifier
	workers    int
}

// NewDriver creates an evaluation driver. Workers below 1 are treated
// as sequential execution.
func NewDriver(classifier *learning.Classifier, workers int) *Driver {
	if workers < 1 {
		workers = 1
	}
	return &Driver{
		classifier: classifier,
		workers:    workers,
	}
}

// Run classifies every file in files and tabulates the confusion
// matrix. Any file that cannot be read aborts the run; there are no
// transient failure modes to retry.
func (d *Driver) Run(files []string) (*Result, error) {
	result := &Result{Total: len(files)}

	start := time.Now()

	var mu sync.Mutex
	var group errgroup.Group
	group.SetLimit(d.workers)

	for _, file := range files {
		file := file
		group.Go(func() error {
			doc, err := corpus.ReadDocument(file)
			if err != nil {
				return err
			}

			guessed := d.classifier.Classify(doc)
			trueLabel := TrueLabel(file)

			mu.Lock()
			result.Matrix[trueLabel][guessed]++
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)
	return result, nil
}

// RunFolder lists the test folder and evaluates every file in it.
func (d *Driver) RunFolder(folder string) (*Result, error) {
	files, err := corpus.ListFiles(folder)
	if err != nil {
		return nil, err
	}
	return d.Run(files)
}
