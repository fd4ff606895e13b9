package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadFont reads raw TTF bytes from assets/fonts. The bytes feed
// text.LoadTTFBytes or the UI bridge's embedded-font settings.
func LoadFont(name string) ([]byte, error) {
	path := filepath.Join("assets", "fonts", name)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", path, err)
	}
	return b, nil
}
