package compare

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"linediff/internal/classify"
	"linediff/internal/domain"
	"linediff/internal/export"
	"linediff/internal/lineset"
)

// Service runs compare-and-export operations using the backing file and
// archive facilities.
type Service struct {
	files   domain.Files
	archive domain.Archiver
	notify  domain.Notifier
	log     *zap.Logger
}

// New returns a compare service backed by the given facilities.
func New(files domain.Files, archive domain.Archiver, notify domain.Notifier, log *zap.Logger) *Service {
	return &Service{files: files, archive: archive, notify: notify, log: log}
}

// Run executes one comparison. Every failure aborts the run and is reported
// once to the caller; nothing is retried and a failed export leaves no
// partial bundle.
func (s *Service) Run(req domain.CompareRequest) (domain.Classification, error) {
	if req.PathA == "" || req.PathB == "" {
		return domain.Classification{}, domain.ErrMissingInput
	}

	textA, err := s.files.ReadText(req.PathA)
	if err != nil {
		return domain.Classification{}, fmt.Errorf("read %s: %w", req.PathA, err)
	}
	textB, err := s.files.ReadText(req.PathB)
	if err != nil {
		return domain.Classification{}, fmt.Errorf("read %s: %w", req.PathB, err)
	}

	setA := lineset.Parse(textA)
	setB := lineset.Parse(textB)
	s.log.Debug("parsed inputs",
		zap.Int("lines_a", len(setA)),
		zap.Int("lines_b", len(setB)),
	)

	res := classify.Classify(setA, setB)

	// The summary reaches the user before archive generation, so a failed
	// export still reports what the classification found.
	if s.notify != nil {
		s.notify.Notify(res.Summary(displayLabel(req.LabelA, req.PathA), displayLabel(req.LabelB, req.PathB)))
	}

	entries := export.Entries(res, req.LabelA, req.LabelB)
	if err := s.archive.Bundle(req.Output, entries); err != nil {
		return domain.Classification{}, fmt.Errorf("write archive %s: %w", req.Output, err)
	}
	s.log.Info("bundle written",
		zap.String("path", req.Output),
		zap.Int("entries", len(entries)),
	)
	return res, nil
}

// displayLabel prefers the user-supplied label, falling back to the input's
// base file name.
func displayLabel(label, path string) string {
	if label != "" {
		return label
	}
	return filepath.Base(path)
}

// Compile-time assertion that Service implements domain.Comparer.
var _ domain.Comparer = (*Service)(nil)
