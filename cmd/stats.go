package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bayespam/spam-classifier/pkg/corpus"
	"github.com/bayespam/spam-classifier/pkg/learning"
)

var (
	statsSpamDir string
	statsHamDir  string
	statsTop     int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Train and print model statistics",
	Long: `Train the classifier on the spam and ham training folders and print
vocabulary sizes, priors and the most class-indicative words. Nothing is
persisted; the model is relearned on every run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		spamDocs, err := corpus.ReadFolder(statsSpamDir)
		if err != nil {
			return fmt.Errorf("failed to read spam training folder: %v", err)
		}
		hamDocs, err := corpus.ReadFolder(statsHamDir)
		if err != nil {
			return fmt.Errorf("failed to read ham training folder: %v", err)
		}

		start := time.Now()
		model := learning.Learn(spamDocs, hamDocs)
		duration := time.Since(start)

		totalEmails := len(spamDocs) + len(hamDocs)
		fmt.Printf("📊 Trained on %d emails in %v\n", totalEmails, duration)
		if duration.Seconds() > 0 {
			fmt.Printf("📈 Rate: %.0f emails/second\n", float64(totalEmails)/duration.Seconds())
		}
		fmt.Printf("\n")

		model.PrintStats(os.Stdout, statsTop)

		return nil
	},
}

func init() {
	statsCmd.Flags().StringVarP(&statsSpamDir, "spam-dir", "s", "", "Directory containing spam training emails")
	statsCmd.Flags().StringVar(&statsHamDir, "ham-dir", "", "Directory containing ham training emails")
	statsCmd.Flags().IntVarP(&statsTop, "top", "t", 10, "Number of top words to show per class")

	statsCmd.MarkFlagRequired("spam-dir")
	statsCmd.MarkFlagRequired("ham-dir")
}
