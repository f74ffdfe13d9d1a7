package i18n

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// catalogFile is the YAML shape accepted by LoadCatalog:
//
//	lang: fr
//	messages:
//	  required: "obligatoire"
//	  too_short: "au moins {min} caractères"
type catalogFile struct {
	Lang     string            `yaml:"lang"`
	Messages map[string]string `yaml:"messages"`
}

var (
	catalogMu sync.RWMutex
	catalogs  = map[string]map[string]string{}
)

// LoadCatalog registers a language catalog from YAML. Loading the same
// language twice merges, with the new entries winning. Codes absent from a
// catalog fall back to the built-in English messages.
func LoadCatalog(data []byte) error {
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return fmt.Errorf("i18n: parse catalog: %w", err)
	}
	if cf.Lang == "" {
		return fmt.Errorf("i18n: catalog is missing lang")
	}
	catalogMu.Lock()
	dst := catalogs[cf.Lang]
	if dst == nil {
		dst = make(map[string]string, len(cf.Messages))
		catalogs[cf.Lang] = dst
	}
	for k, v := range cf.Messages {
		dst[k] = v
	}
	catalogMu.Unlock()
	return nil
}

// LoadCatalogFile reads and registers a YAML catalog from disk.
func LoadCatalogFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("i18n: read catalog: %w", err)
	}
	return LoadCatalog(data)
}

// lookupCatalog resolves the message table for a language: registered
// catalogs first, then the built-in tables.
func lookupCatalog(lang string) (map[string]string, bool) {
	catalogMu.RLock()
	if m, ok := catalogs[lang]; ok {
		catalogMu.RUnlock()
		return m, true
	}
	catalogMu.RUnlock()
	m, ok := builtinMessages[lang]
	return m, ok
}
