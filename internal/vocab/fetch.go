package vocab

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

// DefaultListURLTemplate locates per-language frequency lists. Both %s
// verbs are replaced with the ISO 639-1 code.
const DefaultListURLTemplate = "https://raw.githubusercontent.com/hermitdave/FrequencyWords/master/content/2018/%s/%s_50k.txt"

const fetchTimeout = 60 * time.Second

// Fetcher downloads frequency lists into a local directory.
type Fetcher struct {
	urlTemplate string
	dir         string
	httpClient  *http.Client
}

// NewFetcher builds a fetcher writing into dir. An empty urlTemplate uses
// DefaultListURLTemplate.
func NewFetcher(dir, urlTemplate string, httpClient *http.Client) *Fetcher {
	if strings.TrimSpace(urlTemplate) == "" {
		urlTemplate = DefaultListURLTemplate
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: fetchTimeout}
	}
	return &Fetcher{urlTemplate: urlTemplate, dir: dir, httpClient: httpClient}
}

// ListPath returns where the frequency list for a language lives on disk.
func (f *Fetcher) ListPath(lang string) string {
	return filepath.Join(f.dir, lang+".txt")
}

// Fetch downloads the frequency list for a language unless a copy already
// exists (or force is set). A file lock serializes concurrent runs so two
// processes cannot clobber each other's download; whoever loses the race
// finds the finished file and returns early.
func (f *Fetcher) Fetch(ctx context.Context, lang string, force bool) (string, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return "", fmt.Errorf("fetch vocabulary: language required")
	}
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return "", fmt.Errorf("create vocabulary directory: %w", err)
	}

	dest := f.ListPath(lang)

	lock := flock.New(dest + ".lock")
	locked, err := lock.TryLockContext(ctx, 250*time.Millisecond)
	if err != nil {
		return "", fmt.Errorf("acquire vocabulary lock: %w", err)
	}
	if !locked {
		return "", fmt.Errorf("acquire vocabulary lock: not granted")
	}
	// The lock file stays behind on purpose. Unlinking it after Unlock lets
	// a waiter blocked on the old inode and a newcomer locking a fresh file
	// hold the lock at the same time.
	defer func() {
		_ = lock.Unlock()
	}()

	if !force {
		if info, statErr := os.Stat(dest); statErr == nil && info.Size() > 0 {
			return dest, nil
		}
	}

	url := fmt.Sprintf(f.urlTemplate, lang, lang)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build frequency list request: %w", err)
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download frequency list: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download frequency list: unexpected status %s for %s", resp.Status, url)
	}

	// Download to a temp file first so a dropped connection never leaves a
	// truncated list behind.
	tmp, err := os.CreateTemp(f.dir, lang+".txt.partial-*")
	if err != nil {
		return "", fmt.Errorf("create partial download: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write frequency list: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close partial download: %w", err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", fmt.Errorf("finalize frequency list: %w", err)
	}
	return dest, nil
}
