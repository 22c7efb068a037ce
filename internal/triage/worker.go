package triage

import (
	"context"
	"log"
	"time"

	"github.com/daybreak-app/daybreak/internal/models"
	"github.com/daybreak-app/daybreak/internal/repository"
)

const untriagedBatchSize = 20

// Worker polls for untriaged journal entries and tags them. It is the
// only background process in the server; the rhythm engine itself is
// evaluated on demand and never runs here.
type Worker struct {
	client        *Client
	journal       *repository.JournalRepository
	checkInterval time.Duration
	notifyCh      chan struct{}
}

func NewWorker(client *Client, journal *repository.JournalRepository, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Worker{
		client:        client,
		journal:       journal,
		checkInterval: interval,
		notifyCh:      make(chan struct{}, 1),
	}
}

// Notify triggers an immediate pass. Non-blocking if one is already pending.
func (w *Worker) Notify() {
	select {
	case w.notifyCh <- struct{}{}:
	default:
	}
}

func (w *Worker) Start(ctx context.Context) {
	log.Println("Triage worker started")
	ticker := time.NewTicker(w.checkInterval)
	defer ticker.Stop()

	w.run(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("Triage worker stopped")
			return
		case <-ticker.C:
			w.run(ctx)
		case <-w.notifyCh:
			w.run(ctx)
		}
	}
}

func (w *Worker) run(ctx context.Context) {
	entries, err := w.journal.ListUntriaged(ctx, untriagedBatchSize)
	if err != nil {
		log.Printf("Failed to list untriaged entries: %v", err)
		return
	}

	for _, entry := range entries {
		w.triage(ctx, entry)
	}
}

func (w *Worker) triage(ctx context.Context, entry *models.JournalEntry) {
	tags, err := w.client.SuggestTags(ctx, entry.Body)
	if err != nil {
		log.Printf("Failed to tag entry %s: %v", entry.EntryID, err)
		return
	}

	if err := w.journal.SetTags(ctx, entry.EntryID, tags); err != nil {
		log.Printf("Failed to save tags for entry %s: %v", entry.EntryID, err)
		return
	}
	log.Printf("Tagged entry %s with %d tags", entry.EntryID, len(tags))
}
