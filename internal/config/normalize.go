package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeVocabulary()
	c.normalizeLemmatizer()
	c.normalizeTranslation()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.VocabDir) == "" {
		c.Paths.VocabDir = defaultVocabDir
	}
	if c.Paths.VocabDir, err = expandPath(c.Paths.VocabDir); err != nil {
		return fmt.Errorf("paths.vocab_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.CacheDir) == "" {
		c.Paths.CacheDir = defaultCacheDir
	}
	if c.Paths.CacheDir, err = expandPath(c.Paths.CacheDir); err != nil {
		return fmt.Errorf("paths.cache_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeVocabulary() {
	if c.Vocabulary.Size <= 0 {
		c.Vocabulary.Size = defaultVocabularySize
	}
	c.Vocabulary.ListURLTemplate = strings.TrimSpace(c.Vocabulary.ListURLTemplate)
	if c.Vocabulary.ListURLTemplate == "" {
		c.Vocabulary.ListURLTemplate = defaultListURLTemplate
	}
}

func (c *Config) normalizeLemmatizer() {
	c.Lemmatizer.PythonBinary = strings.TrimSpace(c.Lemmatizer.PythonBinary)
	if c.Lemmatizer.PythonBinary == "" {
		c.Lemmatizer.PythonBinary = defaultPythonBinary
	}
	c.Lemmatizer.ScriptPath = strings.TrimSpace(c.Lemmatizer.ScriptPath)
	if c.Lemmatizer.TimeoutSeconds <= 0 {
		c.Lemmatizer.TimeoutSeconds = defaultLemmatizerTimeoutSeconds
	}
}

func (c *Config) normalizeTranslation() {
	c.Translation.BaseURL = strings.TrimSpace(c.Translation.BaseURL)
	if c.Translation.BaseURL == "" {
		c.Translation.BaseURL = defaultTranslationBaseURL
	}
	c.Translation.APIKey = strings.TrimSpace(c.Translation.APIKey)
	if c.Translation.APIKey == "" {
		if value, ok := os.LookupEnv("LIBRETRANSLATE_API_KEY"); ok {
			c.Translation.APIKey = strings.TrimSpace(value)
		}
	}
	if c.Translation.TimeoutSeconds <= 0 {
		c.Translation.TimeoutSeconds = defaultTranslationTimeoutSeconds
	}
	if c.Translation.CacheTTLDays <= 0 {
		c.Translation.CacheTTLDays = defaultTranslationCacheTTLDays
	}
	if c.Translation.ContextWindow < 0 {
		c.Translation.ContextWindow = defaultTranslationContextWindow
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
