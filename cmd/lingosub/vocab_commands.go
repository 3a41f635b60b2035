package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"lingosub/internal/language"
	"lingosub/internal/services"
	"lingosub/internal/vocab"
)

func newVocabCommand(ctx *commandContext) *cobra.Command {
	vocabCmd := &cobra.Command{
		Use:   "vocab",
		Short: "Frequency word list utilities",
	}

	vocabCmd.AddCommand(newVocabFetchCommand(ctx))
	vocabCmd.AddCommand(newVocabShowCommand(ctx))

	return vocabCmd
}

func newVocabFetchCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "fetch <lang>",
		Short: "Download the frequency word list for a language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			lang := language.ToISO2(args[0])
			if lang == "" {
				return services.Wrap(services.ErrValidation, "vocab", "fetch", fmt.Sprintf("unrecognized language %q", args[0]), nil)
			}

			fetcher := vocab.NewFetcher(cfg.Paths.VocabDir, cfg.Vocabulary.ListURLTemplate, nil)
			path, err := fetcher.Fetch(cmd.Context(), lang, force)
			if err != nil {
				return services.Wrap(services.ErrTransient, "vocab", "fetch", "download frequency list", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fetched %s word list to %s\n", language.DisplayName(lang), path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Re-download even if the list already exists")
	return cmd
}

func newVocabShowCommand(ctx *commandContext) *cobra.Command {
	var size int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <lang>",
		Short: "Show the state of a language's word list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			lang := language.ToISO2(args[0])
			if lang == "" {
				return services.Wrap(services.ErrValidation, "vocab", "show", fmt.Sprintf("unrecognized language %q", args[0]), nil)
			}
			cutoff := cfg.Vocabulary.Size
			if size > 0 {
				cutoff = size
			}

			fetcher := vocab.NewFetcher(cfg.Paths.VocabDir, cfg.Vocabulary.ListURLTemplate, nil)
			path := fetcher.ListPath(lang)
			if _, err := os.Stat(path); err != nil {
				return services.Wrap(services.ErrNotFound, "vocab", "show",
					fmt.Sprintf("no word list for %s; run `lingosub vocab fetch %s`", language.DisplayName(lang), lang), nil)
			}
			known, err := vocab.LoadSet(path, cutoff)
			if err != nil {
				return services.Wrap(services.ErrNotFound, "vocab", "show", "load word list", err)
			}

			if jsonOutput {
				return writeJSON(cmd, map[string]any{
					"language": lang,
					"path":     path,
					"size":     cutoff,
					"words":    known.Len(),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), fieldTable("Field", "Value", []reportRow{
				{"Language", language.DisplayName(lang)},
				{"List path", path},
				{"Cutoff", strconv.Itoa(cutoff)},
				{"Known words", strconv.Itoa(known.Len())},
			}))
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 0, "Cutoff to report (default: config)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print as JSON")
	return cmd
}
