package config

const (
	defaultVocabDir                  = "~/.local/share/lingosub/vocab"
	defaultCacheDir                  = "~/.local/share/lingosub/cache"
	defaultLogDir                    = "~/.local/share/lingosub/logs"
	defaultVocabularySize            = 2000
	defaultListURLTemplate           = "https://raw.githubusercontent.com/hermitdave/FrequencyWords/master/content/2018/%s/%s_50k.txt"
	defaultPythonBinary              = "python3"
	defaultLemmatizerTimeoutSeconds  = 120
	defaultTranslationBaseURL        = "https://libretranslate.com/translate"
	defaultTranslationTimeoutSeconds = 30
	defaultTranslationCacheTTLDays   = 30
	defaultTranslationContextWindow  = 2
	defaultLogFormat                 = "console"
	defaultLogLevel                  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			VocabDir: defaultVocabDir,
			CacheDir: defaultCacheDir,
			LogDir:   defaultLogDir,
		},
		Vocabulary: Vocabulary{
			Size:            defaultVocabularySize,
			ListURLTemplate: defaultListURLTemplate,
		},
		Lemmatizer: Lemmatizer{
			PythonBinary:   defaultPythonBinary,
			TimeoutSeconds: defaultLemmatizerTimeoutSeconds,
		},
		Translation: Translation{
			BaseURL:        defaultTranslationBaseURL,
			TimeoutSeconds: defaultTranslationTimeoutSeconds,
			CacheTTLDays:   defaultTranslationCacheTTLDays,
			ContextWindow:  defaultTranslationContextWindow,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
