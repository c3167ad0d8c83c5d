// Package knowledge loads the static catalog and FAQ assets the assistant
// injects into prompts.
package knowledge

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Base is the read-only knowledge shared by every request. It is built once
// at startup and never written afterwards.
type Base struct {
	Catalog []Item
	FAQ     FAQ
}

// Load reads the catalog and FAQ documents concurrently. Either failure
// aborts the load.
func Load(ctx context.Context, catalogPath, faqPath string) (*Base, error) {
	g, _ := errgroup.WithContext(ctx)

	var catalog []Item
	var faq FAQ

	g.Go(func() error {
		items, err := LoadCatalog(catalogPath)
		if err != nil {
			return err
		}
		catalog = items
		return nil
	})

	g.Go(func() error {
		doc, err := LoadFAQ(faqPath)
		if err != nil {
			return err
		}
		faq = doc
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("catalog", catalogPath).
		Int("items", len(catalog)).
		Str("faq", faqPath).
		Msg("knowledge base loaded")

	return &Base{Catalog: catalog, FAQ: faq}, nil
}
