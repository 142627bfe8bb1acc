package lang

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/bethropolis/brackets/internal/logger"
)

var (
	// Global language registry
	registry struct {
		sync.RWMutex
		languages     []*Language
		extToLanguage map[string]*Language
	}

	initOnce sync.Once
)

// Initialize ensures the registry is ready for use
func Initialize() {
	initOnce.Do(func() {
		registry.extToLanguage = make(map[string]*Language)
		registry.languages = make([]*Language, 0)
	})
}

// Register adds a language to the registry. A later registration of the
// same extension wins.
func Register(lang *Language) {
	Initialize()

	registry.Lock()
	defer registry.Unlock()

	registry.languages = append(registry.languages, lang)
	for _, ext := range lang.Extensions {
		lowerExt := strings.ToLower(ext)
		if existing, ok := registry.extToLanguage[lowerExt]; ok {
			logger.Warnf("Extension %s already registered to %s, overriding with %s",
				lowerExt, existing.Name, lang.Name)
		}
		registry.extToLanguage[lowerExt] = lang
	}

	logger.DebugTagf("lexer", "Registered language: %s with extensions: %v", lang.Name, lang.Extensions)
}

// GetForFile returns the language for a file path, or nil for plain text.
func GetForFile(filePath string) *Language {
	Initialize()

	registry.RLock()
	defer registry.RUnlock()

	return registry.extToLanguage[strings.ToLower(filepath.Ext(filePath))]
}

// GetByName looks a language up by its display name, ignoring case.
func GetByName(name string) *Language {
	Initialize()

	registry.RLock()
	defer registry.RUnlock()

	for _, l := range registry.languages {
		if strings.EqualFold(l.Name, name) {
			return l
		}
	}
	return nil
}

// GetAll returns all registered languages
func GetAll() []*Language {
	Initialize()

	registry.RLock()
	defer registry.RUnlock()

	result := make([]*Language, len(registry.languages))
	copy(result, registry.languages)
	return result
}
