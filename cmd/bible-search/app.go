// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"

	"github.com/pdiddy/bible-search/internal/corpus"
	"github.com/pdiddy/bible-search/internal/library"
	"github.com/pdiddy/bible-search/internal/search"
	"github.com/pdiddy/bible-search/pkg/types"
)

// openCorpus loads the configured verse file.
func openCorpus(cfg types.Config) (*corpus.Corpus, error) {
	c, err := corpus.Load(cfg.Corpus.Path)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", cfg.Corpus.Path).Int("verses", c.Len()).Int("books", len(c.Books())).Msg("corpus loaded")
	return c, nil
}

// openLibrary opens the history and bookmark store.
func openLibrary(cfg types.Config) (*library.Store, error) {
	store, err := library.NewStore(cfg.Library)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("data_dir", store.DataDir()).Msg("library opened")
	return store, nil
}

// newEngine wires an engine and its navigator writing to out.
func newEngine(cfg types.Config, c *corpus.Corpus, store *library.Store, chooser search.Chooser, out io.Writer) *search.Engine {
	return search.NewEngine(c, search.NewNavigator(out), chooser, out, search.Options{
		History: store,
		Policy:  cfg.Search.HistoryPolicy,
		Logger:  &logger,
	})
}
