package views

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/dmitrijs2005/moodkeeper/internal/client/api"
	"github.com/dmitrijs2005/moodkeeper/internal/client/resource"
	"github.com/dmitrijs2005/moodkeeper/internal/client/ui"
)

// Resources is the self-help article library. The articles request is
// bounded by Env.ResourcesTimeout; a timeout is shown as a connectivity
// error and "retry" re-issues the request.
type Resources struct {
	base
	articles *resource.Resource[[]api.Article]
}

func NewResources(env *Env) *Resources {
	return &Resources{
		base:     base{env: env, name: "resources"},
		articles: resource.New(articlesPolicy, env.Development),
	}
}

func (r *Resources) Refresh(ctx context.Context) error {
	if _, err := r.guard(ctx); err != nil {
		return err
	}

	st := r.articles.Load(ctx, logged(r.base, "articles", r.fetch))
	if err := r.expire(ctx, unauthorized(st)); err != nil {
		return err
	}

	saved := r.savedIDs(ctx)
	w := r.out()
	renderState(w, "Resources", st, func(articles []api.Article) {
		renderArticles(w, articles, saved)
	})
	return nil
}

func (r *Resources) fetch(ctx context.Context) ([]api.Article, error) {
	if t := r.env.ResourcesTimeout; t > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t)
		defer cancel()
	}
	return r.env.Backend.Articles(ctx)
}

func (r *Resources) Unmount() {
	r.articles.Discard()
}

// Save bookmarks an article locally.
func (r *Resources) Save(ctx context.Context, id string) error {
	if _, err := r.guard(ctx); err != nil {
		return err
	}
	added, err := r.env.Saved.Save(ctx, id)
	if err != nil {
		renderFailure(r.out(), "save the article", err)
		return err
	}
	if added {
		ui.Banner(r.out(), ui.BannerSuccess, "Saved %s.", id)
	} else {
		ui.Banner(r.out(), ui.BannerInfo, "%s is already saved.", id)
	}
	return nil
}

func (r *Resources) Unsave(ctx context.Context, id string) error {
	if _, err := r.guard(ctx); err != nil {
		return err
	}
	removed, err := r.env.Saved.Unsave(ctx, id)
	if err != nil {
		renderFailure(r.out(), "remove the article", err)
		return err
	}
	if removed {
		ui.Banner(r.out(), ui.BannerSuccess, "Removed %s from saved.", id)
	} else {
		ui.Banner(r.out(), ui.BannerInfo, "%s was not saved.", id)
	}
	return nil
}

// ShowSaved lists the saved articles. Titles come from the last loaded
// list when available.
func (r *Resources) ShowSaved(ctx context.Context) error {
	if _, err := r.guard(ctx); err != nil {
		return err
	}
	ids, err := r.env.Saved.List(ctx)
	if err != nil {
		renderFailure(r.out(), "read saved articles", err)
		return err
	}

	w := r.out()
	ui.Heading(w, "Saved resources")
	if len(ids) == 0 {
		ui.Empty(w, "Nothing saved yet. Type 'save <id>' on an article.")
		return nil
	}

	titles := map[string]string{}
	if st := r.articles.State(); st.Ready() {
		for _, a := range st.Data {
			titles[a.ID.String()] = a.Title
		}
	}
	rows := [][]string{{"ID", "TITLE"}}
	for _, id := range ids {
		rows = append(rows, []string{id, titles[id]})
	}
	ui.Table(w, rows)
	return nil
}

func (r *Resources) savedIDs(ctx context.Context) []string {
	ids, err := r.env.Saved.List(ctx)
	if err != nil {
		r.env.Log.Warn(ctx, "saved resources unreadable", "err", err)
		return nil
	}
	return ids
}

func renderArticles(w io.Writer, articles []api.Article, saved []string) {
	if len(articles) == 0 {
		ui.Empty(w, "No resources available right now.")
		return
	}

	rows := [][]string{{"", "ID", "TITLE", "CATEGORY", "READ"}}
	for _, a := range articles {
		mark := ""
		if slices.Contains(saved, a.ID.String()) {
			mark = "★"
		}
		read := ""
		if a.ReadMinutes > 0 {
			read = fmt.Sprintf("%d min", a.ReadMinutes)
		}
		rows = append(rows, []string{mark, a.ID.String(), a.Title, a.Category, read})
	}
	ui.Table(w, rows)
}
