package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/atobones/google-sheets-automation/internal/infra/http/middleware"
	"github.com/atobones/google-sheets-automation/internal/usecase"
)

// ArchiveWorker triggers the archive use case on a fixed interval. The
// workflow itself does not self-schedule; this is the external trigger
// for deployments that want unattended archiving.
type ArchiveWorker struct {
	archive      *usecase.ArchiveDoneLeadsUseCase
	tickInterval time.Duration
}

func NewArchiveWorker(archive *usecase.ArchiveDoneLeadsUseCase, interval time.Duration) *ArchiveWorker {
	return &ArchiveWorker{archive: archive, tickInterval: interval}
}

func (w *ArchiveWorker) Start(ctx context.Context) {
	logrus.WithField("interval", w.tickInterval).Info("archive worker started")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.run(ctx)

	for {
		select {
		case <-ctx.Done():
			logrus.Info("archive worker stopped")
			return
		case <-ticker.C:
			w.run(ctx)
		}
	}
}

func (w *ArchiveWorker) run(ctx context.Context) {
	out, err := w.archive.Execute(ctx)
	if err != nil {
		logrus.WithError(err).Error("archive run failed")
		return
	}
	if out.Skipped || out.Archived == 0 {
		logrus.Debug("archive run: nothing to do")
		return
	}
	middleware.RecordLeadsArchived(out.Archived)
	logrus.WithField("archived", out.Archived).Info("archive run complete")
}
