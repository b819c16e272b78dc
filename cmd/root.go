package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bayespam",
	Short: "Naive Bayes spam/ham email classifier",
	Long: `bayespam is a Naive Bayes classifier that labels email files as spam or
ham using word-presence features. The model is learned from scratch on
every run from a spam folder and a ham folder of training emails.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("bayespam - Naive Bayes spam classifier")
		fmt.Println("Use 'bayespam --help' for usage information")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}
