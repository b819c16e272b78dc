package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bayespam/spam-classifier/pkg/config"
	"github.com/bayespam/spam-classifier/pkg/corpus"
	"github.com/bayespam/spam-classifier/pkg/evaluation"
	"github.com/bayespam/spam-classifier/pkg/learning"
)

var (
	evaluateConfig  string
	evaluateWorkers int
	evaluateVerbose bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [test-folder] [spam-folder] [ham-folder]",
	Short: "Train and evaluate against a held-out test set",
	Long: `Train the classifier on the spam and ham training folders, classify
every file in the test folder, and report accuracy per class.

The true label of a test file comes from its name: files containing
"ham" count as ham, everything else as spam.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		testFolder, spamFolder, hamFolder := args[0], args[1], args[2]

		cfg, err := config.LoadConfig(evaluateConfig)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %v", err)
		}

		if evaluateWorkers > 0 {
			cfg.Evaluation.Workers = evaluateWorkers
		}

		start := time.Now()

		spamDocs, err := corpus.ReadFolder(spamFolder)
		if err != nil {
			return fmt.Errorf("failed to read spam training folder: %v", err)
		}
		hamDocs, err := corpus.ReadFolder(hamFolder)
		if err != nil {
			return fmt.Errorf("failed to read ham training folder: %v", err)
		}

		model := learning.Learn(spamDocs, hamDocs)
		trainDuration := time.Since(start)

		classifier, err := learning.NewClassifier(model, cfg.LearningConfig())
		if err != nil {
			return err
		}

		driver := evaluation.NewDriver(classifier, cfg.Evaluation.Workers)
		result, err := driver.RunFolder(testFolder)
		if err != nil {
			return fmt.Errorf("evaluation failed: %v", err)
		}

		if evaluateVerbose {
			fmt.Printf("📁 Test folder: %s\n", testFolder)
			fmt.Printf("📁 Spam training folder: %s (%d emails)\n", spamFolder, len(spamDocs))
			fmt.Printf("📁 Ham training folder: %s (%d emails)\n", hamFolder, len(hamDocs))
			fmt.Printf("⚙️  Decision rule: %s, absent-word rule: %s\n",
				cfg.Classifier.DecisionRule, cfg.Classifier.AbsentRule)
			fmt.Printf("⏱️  Training time: %v\n", trainDuration)
			fmt.Printf("⏱️  Evaluation time: %v (%d workers, %.0f emails/second)\n",
				result.Duration, cfg.Evaluation.Workers,
				float64(result.Total)/result.Duration.Seconds())
			fmt.Printf("\n")
		}

		fmt.Println(result.Summary())

		return nil
	},
}

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateConfig, "config", "c", "", "Configuration file path")
	evaluateCmd.Flags().IntVarP(&evaluateWorkers, "workers", "j", 0, "Concurrent classification workers (overrides config)")
	evaluateCmd.Flags().BoolVarP(&evaluateVerbose, "verbose", "v", false, "Verbose output")
}
