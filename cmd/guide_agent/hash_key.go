package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plantrx/guide-engine/internal/config"
)

var hashKeyCmd = &cobra.Command{
	Use:   "hash-key <api-key>",
	Short: "Hash an API key for the API_KEY_HASH environment variable",
	Long:  `Prints the bcrypt hash of the given API key. Put the hash in API_KEY_HASH on the server; clients present the plaintext key to POST /auth/token.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHashKey,
}

func init() {
	rootCmd.AddCommand(hashKeyCmd)
}

func runHashKey(_ *cobra.Command, args []string) error {
	cfg, err := config.NewAPIKeyConfig()
	if err != nil {
		return err
	}

	hash, err := cfg.HashKey(args[0])
	if err != nil {
		return err
	}

	fmt.Println(hash)
	return nil
}
