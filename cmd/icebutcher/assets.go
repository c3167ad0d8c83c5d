package main

import (
	"fmt"

	"github.com/jonathan/icebutcher-assistant/internal/config"
)

// assetPaths resolves the catalog and FAQ paths: explicit flags win over the
// environment, which wins over the defaults.
func assetPaths(catalogFlag, faqFlag string) (string, string, error) {
	cfg, err := config.Parse()
	if err != nil {
		return "", "", fmt.Errorf("failed to read configuration: %w", err)
	}

	catalog, faq := cfg.CatalogPath, cfg.FAQPath
	if catalogFlag != "" {
		catalog = catalogFlag
	}
	if faqFlag != "" {
		faq = faqFlag
	}
	return catalog, faq, nil
}
