package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	fuzzyclock "github.com/goliatone/go-fuzzyclock"
)

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages and the identifiers they accept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry := fuzzyclock.NewRegistry()
			out := cmd.OutOrStdout()
			for _, lang := range registry.Languages() {
				_, err := fmt.Fprintf(out, "%s\t%s\t%s\t%s\n",
					lang.Code(), lang, lang.NativeName(), strings.Join(lang.Aliases(), ","))
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}
