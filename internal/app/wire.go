package app

import (
	"fmt"

	"linediff/internal/domain"
	comparesvc "linediff/internal/services/compare"
	"linediff/internal/store"
)

// Wire bundles the store and services for the CLI.
type Wire struct {
	Files    domain.Files
	Comparer domain.Comparer
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	fs := store.NewFileStore()

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = stdoutNotifier{}
	}

	return &Wire{
		Files:    fs,
		Comparer: comparesvc.New(fs, fs, notifier, cfg.Logger),
	}
}

// stdoutNotifier prints the classification summary to the user's terminal.
type stdoutNotifier struct{}

func (stdoutNotifier) Notify(summary string) { fmt.Println(summary) }
