package core

import (
	"context"

	"github.com/paleodesk/fossilimport/internal/logging"
	"github.com/paleodesk/fossilimport/internal/specimen"
)

// ProgressEvent reports the state of a running import. One event is emitted
// per attempted row and a final event with Completed set closes the stream.
type ProgressEvent struct {
	Imported     int
	Failed       int
	Skipped      int
	Total        int
	CurrentLabel string
	Completed    bool
}

// Driver applies selected, error-free drafts to a sink, sequentially and in
// draft order. It owns coercion of raw field values into typed records; the
// sink owns persistence. There is no retry: a failed insert is counted and
// the run moves on.
type Driver struct {
	sink     Sink
	fallback specimen.Currency
}

// NewDriver returns a driver committing to the given sink. fallback is the
// currency used for unresolvable currency codes, matching the validator.
func NewDriver(sink Sink, fallback specimen.Currency) *Driver {
	return &Driver{sink: sink, fallback: fallback}
}

// Submit starts the import and returns the progress stream. The channel is
// buffered for the whole run and closed after the final Completed event, so
// callers may consume lazily or drain at the end. Cancelling the context
// stops the run after the current row; the stream still closes.
//
// Drafts that are deselected or carry a blocking error are skipped, never
// persisted.
func (d *Driver) Submit(ctx context.Context, drafts []Draft, ownerID string) <-chan ProgressEvent {
	events := make(chan ProgressEvent, len(drafts)+1)

	go func() {
		defer close(events)

		log := logging.FromContext(ctx).With("owner_id", ownerID)

		var ev ProgressEvent
		for i := range drafts {
			if drafts[i].SelectedForImport && !drafts[i].HasBlocking() {
				ev.Total++
			}
		}

		for i := range drafts {
			if ctx.Err() != nil {
				log.Warn("import cancelled", "imported", ev.Imported, "failed", ev.Failed)
				return
			}

			draft := &drafts[i]
			if !draft.SelectedForImport || draft.HasBlocking() {
				ev.Skipped++
				continue
			}

			sp, err := CoerceDraft(draft, d.fallback)
			if err != nil {
				ev.Failed++
				log.Warn("draft coercion failed", "row", draft.RowIndex, "error", err)
				events <- ev
				continue
			}

			ev.CurrentLabel = sp.Label()
			if err := d.sink.Insert(ctx, ownerID, sp); err != nil {
				ev.Failed++
				log.Warn("insert failed", "row", draft.RowIndex, "label", sp.Label(), "error", err)
			} else {
				ev.Imported++
			}
			events <- ev
		}

		ev.Completed = true
		ev.CurrentLabel = ""
		events <- ev

		log.Info("import finished",
			"imported", ev.Imported,
			"failed", ev.Failed,
			"skipped", ev.Skipped,
			"total", ev.Total,
		)
	}()

	return events
}
