package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"lingosub/internal/config"
	"lingosub/internal/fusion"
	"lingosub/internal/language"
	"lingosub/internal/lemma"
	"lingosub/internal/logging"
	"lingosub/internal/services"
	"lingosub/internal/subtitle"
	"lingosub/internal/translate"
	"lingosub/internal/vocab"
)

type fuseOptions struct {
	nativePath     string
	outputPath     string
	lang           string
	nativeLang     string
	vocabPath      string
	vocabSize      int
	translateFlag  bool
	contextWindow  int
	skipLemmatizer bool
	jsonOutput     bool
}

func newFuseCommand(ctx *commandContext) *cobra.Command {
	opts := fuseOptions{contextWindow: -1}

	cmd := &cobra.Command{
		Use:   "fuse <target-subtitle>",
		Short: "Fuse a target-language subtitle track with a native-language fallback",
		Long: `Fuse reads a subtitle track in the language being learned and a second
track in the viewer's native language. Cues made entirely of known words stay
as they are; cues with unknown words are replaced by the overlapping native
cues, or annotated with an inline translation when exactly one word is
unknown and translation is enabled.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("provide the path to the target-language subtitle. Example: lingosub fuse episode.fr.srt --native episode.en.srt --lang fr")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFuse(cmd, ctx, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.nativePath, "native", "n", "", "Path to the native-language subtitle track (required)")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Output path for the fused track (default: <target>.fused.srt)")
	cmd.Flags().StringVarP(&opts.lang, "lang", "l", "", "Target language code, e.g. fr (required)")
	cmd.Flags().StringVar(&opts.nativeLang, "native-lang", "en", "Native language code")
	cmd.Flags().StringVar(&opts.vocabPath, "vocab", "", "Path to a frequency word list (default: downloaded list for --lang)")
	cmd.Flags().IntVar(&opts.vocabSize, "vocab-size", 0, "Number of most-frequent words assumed known (default: config)")
	cmd.Flags().BoolVar(&opts.translateFlag, "translate", false, "Translate isolated unknown words inline (default: config)")
	cmd.Flags().IntVar(&opts.contextWindow, "context-window", -1, "Neighbouring cues sent as translation context (default: config)")
	cmd.Flags().BoolVar(&opts.skipLemmatizer, "skip-lemmatizer", false, "Classify surface words without lemmatizing")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the run summary as JSON")
	_ = cmd.MarkFlagRequired("native")
	_ = cmd.MarkFlagRequired("lang")

	return cmd
}

func runFuse(cmd *cobra.Command, ctx *commandContext, targetArg string, opts fuseOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	lang := language.ToISO2(opts.lang)
	if lang == "" {
		return services.Wrap(services.ErrValidation, "fuse", "flags", fmt.Sprintf("unrecognized target language %q", opts.lang), nil)
	}
	nativeLang := language.ToISO2(opts.nativeLang)
	if nativeLang == "" {
		return services.Wrap(services.ErrValidation, "fuse", "flags", fmt.Sprintf("unrecognized native language %q", opts.nativeLang), nil)
	}

	targetPath, err := resolveSubtitlePath(targetArg)
	if err != nil {
		return err
	}
	nativePath, err := resolveSubtitlePath(opts.nativePath)
	if err != nil {
		return err
	}
	outputPath := strings.TrimSpace(opts.outputPath)
	if outputPath == "" {
		outputPath = strings.TrimSuffix(targetPath, filepath.Ext(targetPath)) + ".fused.srt"
	}

	logger, err := ctx.newLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	runID := uuid.NewString()
	logger = logger.With(logging.String("run_id", runID))
	runCtx := services.WithRunID(cmd.Context(), runID)

	logger.Info("fusion run starting",
		logging.String("target", targetPath),
		logging.String("native", nativePath),
		logging.String("lang", language.DisplayName(lang)),
		logging.String("native_lang", language.DisplayName(nativeLang)),
	)

	target, native, err := loadTracks(targetPath, nativePath, logger)
	if err != nil {
		return err
	}
	if len(target) == 0 {
		return services.Wrap(services.ErrValidation, "fuse", "parse", fmt.Sprintf("no cues parsed from %s", targetPath), nil)
	}

	known, err := loadVocabulary(services.WithStage(runCtx, "vocab"), cfg, lang, opts, logger)
	if err != nil {
		return err
	}
	logger.Info("vocabulary loaded", logging.Int("words", known.Len()))

	input := fusion.Input{
		Target:         target,
		Native:         native,
		Known:          known,
		Language:       lang,
		NativeLanguage: nativeLang,
	}

	if !opts.skipLemmatizer {
		svc := lemma.NewService(cfg.Lemmatizer.PythonBinary, cfg.Lemmatizer.ScriptPath)
		input.Lemmatizer = &timeoutLemmatizer{
			next:    svc,
			timeout: time.Duration(cfg.Lemmatizer.TimeoutSeconds) * time.Second,
		}
	}

	inlineEnabled := cfg.Translation.Enabled
	if cmd.Flags().Changed("translate") {
		inlineEnabled = opts.translateFlag
	}
	var cache *translate.Cache
	if inlineEnabled {
		client := translate.NewClient(translate.Config{
			APIKey:         cfg.Translation.APIKey,
			BaseURL:        cfg.Translation.BaseURL,
			TimeoutSeconds: cfg.Translation.TimeoutSeconds,
		})
		ttl := time.Duration(cfg.Translation.CacheTTLDays) * 24 * time.Hour
		cache, err = translate.OpenCache(cfg.TranslationCachePath(), ttl)
		if err != nil {
			logger.Warn("translation cache unavailable; translating without cache", logging.Error(err))
			input.Translator = client
		} else {
			defer cache.Close()
			input.Translator = translate.NewCachedTranslator(client, cache, logger)
		}
		input.InlineTranslation = true
		input.ContextWindow = cfg.Translation.ContextWindow
		if opts.contextWindow >= 0 {
			input.ContextWindow = opts.contextWindow
		}
	}

	engine := fusion.New(logger)
	engineCtx := services.WithStage(runCtx, "fusion")
	result, err := engine.Fuse(engineCtx, input)
	if err != nil {
		return services.Wrap(services.ErrTransient, stageOf(engineCtx), "engine failed", "", err)
	}

	if err := subtitle.WriteFile(outputPath, result.Cues); err != nil {
		return fmt.Errorf("write fused track: %w", err)
	}
	logger.Info("fusion run complete",
		logging.Int("input_cues", len(target)),
		logging.Int("output_cues", len(result.Cues)),
		logging.Int("kept", result.Counters.Kept),
		logging.Int("replaced", result.Counters.Replaced),
		logging.Int("translated", result.Counters.Translated),
	)

	return printFuseSummary(cmd, runID, outputPath, len(target), result, opts.jsonOutput)
}

// loadTracks parses and pre-merges both subtitle files concurrently.
func loadTracks(targetPath, nativePath string, logger *slog.Logger) ([]subtitle.Cue, []subtitle.Cue, error) {
	var (
		wg                   sync.WaitGroup
		target, native       []subtitle.Cue
		targetErr, nativeErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		cues, err := subtitle.ParseFile(targetPath, logger)
		if err != nil {
			targetErr = fmt.Errorf("parse target track: %w", err)
			return
		}
		target = subtitle.MergeOverlapping(cues)
	}()
	go func() {
		defer wg.Done()
		cues, err := subtitle.ParseFile(nativePath, logger)
		if err != nil {
			nativeErr = fmt.Errorf("parse native track: %w", err)
			return
		}
		native = subtitle.MergeOverlapping(cues)
	}()
	wg.Wait()
	if targetErr != nil {
		return nil, nil, targetErr
	}
	if nativeErr != nil {
		return nil, nil, nativeErr
	}
	return target, native, nil
}

func loadVocabulary(ctx context.Context, cfg *config.Config, lang string, opts fuseOptions, logger *slog.Logger) (*vocab.Set, error) {
	size := cfg.Vocabulary.Size
	if opts.vocabSize > 0 {
		size = opts.vocabSize
	}

	path := strings.TrimSpace(opts.vocabPath)
	if path == "" {
		fetcher := vocab.NewFetcher(cfg.Paths.VocabDir, cfg.Vocabulary.ListURLTemplate, nil)
		path = fetcher.ListPath(lang)
		if _, err := os.Stat(path); err != nil {
			logger.Info("frequency list missing; downloading",
				logging.String("stage", stageOf(ctx)),
				logging.String("lang", lang),
			)
			downloaded, err := fetcher.Fetch(ctx, lang, false)
			if err != nil {
				return nil, services.Wrap(services.ErrTransient, stageOf(ctx), "download frequency list", "", err)
			}
			path = downloaded
		}
	}

	known, err := vocab.LoadSet(path, size)
	if err != nil {
		return nil, services.Wrap(services.ErrNotFound, stageOf(ctx), "load word list", "", err)
	}
	return known, nil
}

// stageOf names the pipeline phase for error detail and log records.
func stageOf(ctx context.Context) string {
	if stage, ok := services.StageFromContext(ctx); ok {
		return stage
	}
	return "fuse"
}

// timeoutLemmatizer bounds each lemmatizer invocation.
type timeoutLemmatizer struct {
	next    *lemma.Service
	timeout time.Duration
}

func (t *timeoutLemmatizer) Lemmatize(ctx context.Context, lang string, lines []string) ([][]string, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}
	return t.next.Lemmatize(ctx, lang, lines)
}

type wordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type fuseSummary struct {
	RunID             string      `json:"run_id"`
	Output            string      `json:"output"`
	InputCues         int         `json:"input_cues"`
	OutputCues        int         `json:"output_cues"`
	Kept              int         `json:"kept"`
	Replaced          int         `json:"replaced"`
	Translated        int         `json:"translated"`
	TranslationErrors int         `json:"translation_errors"`
	TopUnknownWords   []wordCount `json:"top_unknown_words,omitempty"`
}

func printFuseSummary(cmd *cobra.Command, runID, outputPath string, inputCues int, result fusion.Result, asJSON bool) error {
	summary := fuseSummary{
		RunID:             runID,
		Output:            outputPath,
		InputCues:         inputCues,
		OutputCues:        len(result.Cues),
		Kept:              result.Counters.Kept,
		Replaced:          result.Counters.Replaced,
		Translated:        result.Counters.Translated,
		TranslationErrors: result.Counters.TranslationErrors,
		TopUnknownWords:   topWords(result.WordFrequency, 10),
	}

	if asJSON {
		return writeJSON(cmd, summary)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, countTable("Metric", "Count", []reportRow{
		{"Input cues", strconv.Itoa(summary.InputCues)},
		{"Output cues", strconv.Itoa(summary.OutputCues)},
		{"Kept", strconv.Itoa(summary.Kept)},
		{"Replaced", strconv.Itoa(summary.Replaced)},
		{"Translated inline", strconv.Itoa(summary.Translated)},
		{"Translation errors", strconv.Itoa(summary.TranslationErrors)},
	}))
	if len(summary.TopUnknownWords) > 0 {
		rows := make([]reportRow, 0, len(summary.TopUnknownWords))
		for _, wc := range summary.TopUnknownWords {
			rows = append(rows, reportRow{wc.Word, strconv.Itoa(wc.Count)})
		}
		fmt.Fprintln(out, countTable("Unknown word", "Occurrences", rows))
	}
	fmt.Fprintf(out, "Wrote fused track to %s\n", outputPath)
	return nil
}

func topWords(freq map[string]int, limit int) []wordCount {
	if len(freq) == 0 {
		return nil
	}
	words := make([]wordCount, 0, len(freq))
	for word, count := range freq {
		words = append(words, wordCount{Word: word, Count: count})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})
	if len(words) > limit {
		words = words[:limit]
	}
	return words
}

func resolveSubtitlePath(arg string) (string, error) {
	path := strings.TrimSpace(arg)
	if path == "" {
		return "", services.Wrap(services.ErrValidation, "fuse", "flags", "subtitle path is required", nil)
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return "", services.Wrap(services.ErrNotFound, "fuse", "input", fmt.Sprintf("subtitle file %q not found", expanded), nil)
		}
		return "", fmt.Errorf("stat subtitle: %w", err)
	}
	if info.IsDir() {
		return "", services.Wrap(services.ErrValidation, "fuse", "input", fmt.Sprintf("path %q is a directory", expanded), nil)
	}
	return expanded, nil
}
