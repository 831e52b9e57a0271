package views

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/moodkeeper/internal/client/api"
	"github.com/dmitrijs2005/moodkeeper/internal/client/resource"
	"github.com/dmitrijs2005/moodkeeper/internal/client/ui"
	"golang.org/x/sync/errgroup"
)

const (
	dashboardMoodDays  = 7
	dashboardThemeDays = 30
	moodScaleLo        = 1
	moodScaleHi        = 10
	themeBarWidth      = 20
)

// Dashboard shows this week's mood, the insights summary and today's prompt.
// The three widgets load concurrently and fail independently.
type Dashboard struct {
	base
	mood     *resource.Resource[[]api.MoodPoint]
	insights *resource.Resource[api.Insights]
	prompt   *resource.Resource[string]
}

func NewDashboard(env *Env) *Dashboard {
	return &Dashboard{
		base:     base{env: env, name: "dashboard"},
		mood:     resource.New(moodPolicy, env.Development),
		insights: resource.New(insightsPolicy, env.Development),
		prompt:   resource.New(promptPolicy, env.Development),
	}
}

func (d *Dashboard) Refresh(ctx context.Context) error {
	if _, err := d.guard(ctx); err != nil {
		return err
	}

	backend := d.env.Backend
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return unauthorized(d.mood.Load(gctx, logged(d.base, "mood", func(ctx context.Context) ([]api.MoodPoint, error) {
			ins, err := backend.Insights(ctx, api.InsightsQuery{DaysMood: dashboardMoodDays, DaysThemes: dashboardMoodDays})
			return ins.MoodTrend, err
		})))
	})
	g.Go(func() error {
		return unauthorized(d.insights.Load(gctx, logged(d.base, "insights", func(ctx context.Context) (api.Insights, error) {
			return backend.Insights(ctx, api.InsightsQuery{DaysMood: dashboardThemeDays, DaysThemes: dashboardThemeDays})
		})))
	})
	g.Go(func() error {
		return unauthorized(d.prompt.Load(gctx, logged(d.base, "prompt", backend.Prompt)))
	})

	if err := g.Wait(); err != nil {
		return d.expire(ctx, err)
	}

	d.render()
	return nil
}

func (d *Dashboard) render() {
	w := d.out()
	renderState(w, "Mood this week", d.mood.State(), func(points []api.MoodPoint) {
		renderMoodTrend(w, points)
	})
	fmt.Fprintln(w)
	renderState(w, "Insights", d.insights.State(), func(ins api.Insights) {
		renderInsightsSummary(w, ins)
	})
	fmt.Fprintln(w)
	renderState(w, "Today's prompt", d.prompt.State(), func(p string) {
		renderPrompt(w, p)
	})
}

func (d *Dashboard) Unmount() {
	d.mood.Discard()
	d.insights.Discard()
	d.prompt.Discard()
}

func renderMoodTrend(w io.Writer, points []api.MoodPoint) {
	if len(points) == 0 {
		ui.Empty(w, "No mood scores recorded yet.")
		return
	}
	values := make([]float64, len(points))
	sum := 0.0
	for i, p := range points {
		values[i] = p.Mood
		sum += p.Mood
	}
	fmt.Fprintf(w, "%s  avg %.1f  (%s … %s)\n",
		ui.Sparkline(values, moodScaleLo, moodScaleHi), sum/float64(len(values)),
		points[0].Date, points[len(points)-1].Date)
}

func renderInsightsSummary(w io.Writer, ins api.Insights) {
	fmt.Fprintf(w, "Entries: %d  Average mood: %.1f\n", ins.EntryCount, ins.AverageMood)
	if len(ins.Themes) > 0 {
		names := make([]string, 0, len(ins.Themes))
		for _, t := range ins.Themes {
			names = append(names, t.Theme)
		}
		fmt.Fprintf(w, "Top themes: %s\n", strings.Join(names, ", "))
	}
	if ins.Summary != "" {
		fmt.Fprintln(w, ins.Summary)
	}
}

func renderPrompt(w io.Writer, p string) {
	if strings.TrimSpace(p) == "" {
		ui.Empty(w, "No prompt today.")
		return
	}
	fmt.Fprintf(w, "\"%s\"\n", p)
}
