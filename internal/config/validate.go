package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateVocabulary(); err != nil {
		return err
	}
	if err := c.validateLemmatizer(); err != nil {
		return err
	}
	if err := c.validateTranslation(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateVocabulary() error {
	if c.Vocabulary.Size <= 0 {
		return errors.New("vocabulary.size must be positive")
	}
	if count := strings.Count(c.Vocabulary.ListURLTemplate, "%s"); count != 2 {
		return fmt.Errorf("vocabulary.list_url_template must contain exactly two %%s placeholders, found %d", count)
	}
	return nil
}

func (c *Config) validateLemmatizer() error {
	if strings.TrimSpace(c.Lemmatizer.PythonBinary) == "" {
		return errors.New("lemmatizer.python_binary must be set")
	}
	if c.Lemmatizer.TimeoutSeconds <= 0 {
		return errors.New("lemmatizer.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateTranslation() error {
	if !c.Translation.Enabled {
		return nil
	}
	if strings.TrimSpace(c.Translation.BaseURL) == "" {
		return errors.New("translation.base_url must be set when translation.enabled is true")
	}
	if c.Translation.TimeoutSeconds <= 0 {
		return errors.New("translation.timeout_seconds must be positive")
	}
	if c.Translation.CacheTTLDays <= 0 {
		return errors.New("translation.cache_ttl_days must be positive")
	}
	return nil
}
