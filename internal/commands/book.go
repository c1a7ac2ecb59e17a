package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/passbook-dev/passbook/internal/bank"
	"github.com/passbook-dev/passbook/internal/config"
	"github.com/passbook-dev/passbook/internal/gitops"
	"github.com/passbook-dev/passbook/internal/store"
)

// book bundles everything a command needs: the loaded config and the
// service over the loaded store.
type book struct {
	root    string
	cfg     *config.Config
	service *bank.Service
}

// openBook loads passbook.yaml and the four collections from a book
// directory.
func openBook(dir string) (*book, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("opening book at %s: %w", root, err)
	}

	dataDir := cfg.Storage.DataDir
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(root, dataDir)
	}

	st, err := store.Load(dataDir)
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}

	return &book{
		root:    root,
		cfg:     cfg,
		service: bank.NewService(st, dataDir),
	}, nil
}

// commit records the change in git when auto_commit is on. Failures are
// reported as warnings; the records themselves are already saved.
func (b *book) commit(message string) {
	if !b.cfg.Git.AutoCommit || !gitops.IsRepo(b.root) {
		return
	}
	if _, err := gitops.CommitAll(b.root, message, b.cfg.Git.AuthorName, b.cfg.Git.AuthorEmail); err != nil {
		fmt.Fprintf(os.Stderr, "warning: git commit failed: %v\n", err)
	}
}
