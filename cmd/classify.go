package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bayespam/spam-classifier/pkg/config"
	"github.com/bayespam/spam-classifier/pkg/corpus"
	"github.com/bayespam/spam-classifier/pkg/learning"
)

var (
	classifySpamDir string
	classifyHamDir  string
	classifyConfig  string
	classifyVerbose bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify [email-file]",
	Short: "Classify a single email file",
	Long: `Train the classifier on the spam and ham training folders and label a
single email file as spam or ham.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		emailPath := args[0]

		cfg, err := config.LoadConfig(classifyConfig)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %v", err)
		}

		spamDocs, err := corpus.ReadFolder(classifySpamDir)
		if err != nil {
			return fmt.Errorf("failed to read spam training folder: %v", err)
		}
		hamDocs, err := corpus.ReadFolder(classifyHamDir)
		if err != nil {
			return fmt.Errorf("failed to read ham training folder: %v", err)
		}

		model := learning.Learn(spamDocs, hamDocs)

		classifier, err := learning.NewClassifier(model, cfg.LearningConfig())
		if err != nil {
			return err
		}

		doc, err := corpus.ReadDocument(emailPath)
		if err != nil {
			return fmt.Errorf("failed to read email: %v", err)
		}

		label := classifier.Classify(doc)

		fmt.Printf("File: %s\n", emailPath)
		fmt.Printf("Classification: %s\n", label)

		if classifyVerbose {
			posteriors := classifier.Posteriors(doc)
			fmt.Printf("Distinct words: %d\n", doc.Len())
			fmt.Printf("Posterior (spam): %.4f\n", posteriors[learning.LabelSpam])
			fmt.Printf("Posterior (ham): %.4f\n", posteriors[learning.LabelHam])
			fmt.Printf("Decision rule: %s\n", cfg.Classifier.DecisionRule)
		}

		return nil
	},
}

func init() {
	classifyCmd.Flags().StringVarP(&classifySpamDir, "spam-dir", "s", "", "Directory containing spam training emails")
	classifyCmd.Flags().StringVar(&classifyHamDir, "ham-dir", "", "Directory containing ham training emails")
	classifyCmd.Flags().StringVarP(&classifyConfig, "config", "c", "", "Configuration file path")
	classifyCmd.Flags().BoolVarP(&classifyVerbose, "verbose", "v", false, "Show posterior scores")

	classifyCmd.MarkFlagRequired("spam-dir")
	classifyCmd.MarkFlagRequired("ham-dir")
}
