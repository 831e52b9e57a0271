package views

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/moodkeeper/internal/client/api"
	"github.com/dmitrijs2005/moodkeeper/internal/client/resource"
	"github.com/dmitrijs2005/moodkeeper/internal/client/ui"
)

const (
	entryDateLayout = "2006-01-02 15:04"
	previewLen      = 48
)

// Journal lists entries and performs the entry actions: show, write and
// delete. The list has no fallback data.
type Journal struct {
	base
	entries *resource.Resource[[]api.JournalEntry]
}

func NewJournal(env *Env) *Journal {
	return &Journal{
		base:    base{env: env, name: "journal"},
		entries: resource.New(resource.None[[]api.JournalEntry](), env.Development),
	}
}

func (j *Journal) Refresh(ctx context.Context) error {
	if _, err := j.guard(ctx); err != nil {
		return err
	}

	st := j.entries.Load(ctx, logged(j.base, "entries", j.env.Backend.Entries))
	if err := j.expire(ctx, unauthorized(st)); err != nil {
		return err
	}

	w := j.out()
	renderState(w, "Journal", st, func(entries []api.JournalEntry) {
		renderEntries(w, entries)
	})
	return nil
}

func (j *Journal) Unmount() {
	j.entries.Discard()
}

// Show prints one entry in full.
func (j *Journal) Show(ctx context.Context, id string) error {
	if _, err := j.guard(ctx); err != nil {
		return err
	}

	e, err := j.env.Backend.Entry(ctx, id)
	if err = j.expire(ctx, err); err != nil {
		renderError(j.out(), "entry "+id, err)
		return err
	}

	w := j.out()
	ui.Heading(w, entryTitle(e))
	fmt.Fprintf(w, "Written: %s  Mood: %s\n", e.CreatedAt.Local().Format(entryDateLayout), moodText(e.Mood))
	if len(e.Themes) > 0 {
		fmt.Fprintf(w, "Themes: %s\n", strings.Join(e.Themes, ", "))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, e.Content)
	return nil
}

// Write creates an entry. Invalid input is reported field by field and no
// request is sent.
func (j *Journal) Write(ctx context.Context, req api.CreateEntryRequest) (api.JournalEntry, error) {
	if _, err := j.guard(ctx); err != nil {
		return api.JournalEntry{}, err
	}

	e, err := j.env.Backend.CreateEntry(ctx, req)
	if err = j.expire(ctx, err); err != nil {
		renderFailure(j.out(), "save the entry", err)
		return api.JournalEntry{}, err
	}

	ui.Banner(j.out(), ui.BannerSuccess, "Entry saved (id %s).", e.ID)
	return e, nil
}

// Delete removes an entry after the user types its id back.
func (j *Journal) Delete(ctx context.Context, id string, confirm Confirm) error {
	if _, err := j.guard(ctx); err != nil {
		return err
	}

	prompt := fmt.Sprintf("This permanently deletes entry %s. Type the entry id to confirm", id)
	if err := confirmed(j.out(), confirm, prompt, id); err != nil {
		return err
	}

	err := j.env.Backend.DeleteEntry(ctx, id)
	if err = j.expire(ctx, err); err != nil {
		renderFailure(j.out(), "delete the entry", err)
		return err
	}

	ui.Banner(j.out(), ui.BannerSuccess, "Entry %s deleted.", id)
	return nil
}

func renderEntries(w io.Writer, entries []api.JournalEntry) {
	if len(entries) == 0 {
		ui.Empty(w, "No journal entries yet. Type 'write' to add one.")
		return
	}

	rows := [][]string{{"ID", "DATE", "MOOD", "ENTRY"}}
	for _, e := range entries {
		rows = append(rows, []string{
			e.ID.String(),
			e.CreatedAt.Local().Format(entryDateLayout),
			moodText(e.Mood),
			preview(entryTitle(e)),
		})
	}
	ui.Table(w, rows)
}

func entryTitle(e api.JournalEntry) string {
	if t := strings.TrimSpace(e.Title); t != "" {
		return t
	}
	first, _, _ := strings.Cut(strings.TrimSpace(e.Content), "\n")
	if first == "" {
		return "(untitled)"
	}
	return first
}

func moodText(m *int) string {
	if m == nil {
		return "-"
	}
	return strconv.Itoa(*m) + "/10"
}

func preview(s string) string {
	r := []rune(s)
	if len(r) <= previewLen {
		return s
	}
	return string(r[:previewLen-1]) + "…"
}
