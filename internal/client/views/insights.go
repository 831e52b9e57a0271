package views

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/moodkeeper/internal/client/api"
	"github.com/dmitrijs2005/moodkeeper/internal/client/resource"
	"github.com/dmitrijs2005/moodkeeper/internal/client/ui"
)

const (
	DefaultInsightsMoodDays  = 30
	DefaultInsightsThemeDays = 30
)

// Insights shows mood trend and recurring themes over a selectable window.
type Insights struct {
	base
	query api.InsightsQuery
	res   *resource.Resource[api.Insights]
}

func NewInsights(env *Env, q api.InsightsQuery) *Insights {
	if q.DaysMood == 0 {
		q.DaysMood = DefaultInsightsMoodDays
	}
	if q.DaysThemes == 0 {
		q.DaysThemes = DefaultInsightsThemeDays
	}
	return &Insights{
		base:  base{env: env, name: "insights"},
		query: q,
		res:   resource.New(insightsPolicy, env.Development),
	}
}

func (v *Insights) Refresh(ctx context.Context) error {
	if _, err := v.guard(ctx); err != nil {
		return err
	}

	q := v.query
	st := v.res.Load(ctx, logged(v.base, "insights", func(ctx context.Context) (api.Insights, error) {
		return v.env.Backend.Insights(ctx, q)
	}))
	if err := v.expire(ctx, unauthorized(st)); err != nil {
		return err
	}

	w := v.out()
	title := fmt.Sprintf("Insights (mood %dd, themes %dd)", q.DaysMood, q.DaysThemes)
	renderState(w, title, st, func(ins api.Insights) {
		renderInsights(w, ins)
	})
	return nil
}

// SetRange changes the window; the next Refresh uses it.
func (v *Insights) SetRange(q api.InsightsQuery) {
	v.query = q
}

func (v *Insights) Unmount() {
	v.res.Discard()
}

func renderInsights(w io.Writer, ins api.Insights) {
	renderInsightsSummary(w, ins)
	fmt.Fprintln(w)

	fmt.Fprint(w, "Mood trend: ")
	renderMoodTrend(w, ins.MoodTrend)

	if len(ins.Themes) == 0 {
		return
	}
	top := 0
	for _, t := range ins.Themes {
		top = max(top, t.Count)
	}
	rows := [][]string{{"THEME", "COUNT", ""}}
	for _, t := range ins.Themes {
		rows = append(rows, []string{t.Theme, fmt.Sprint(t.Count), ui.Bar(t.Count, top, themeBarWidth)})
	}
	fmt.Fprintln(w)
	ui.Table(w, rows)
}
