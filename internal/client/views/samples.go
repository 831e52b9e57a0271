package views

import (
	"github.com/dmitrijs2005/moodkeeper/internal/client/api"
	"github.com/dmitrijs2005/moodkeeper/internal/client/resource"
)

// Sample datasets shown when a widget cannot load, or in development mode
// before the first response. They have the same shape as live data.
var (
	sampleMoodTrend = []api.MoodPoint{
		{Date: "2024-03-04", Mood: 6},
		{Date: "2024-03-05", Mood: 5},
		{Date: "2024-03-06", Mood: 7},
		{Date: "2024-03-07", Mood: 4},
		{Date: "2024-03-08", Mood: 6},
		{Date: "2024-03-09", Mood: 8},
		{Date: "2024-03-10", Mood: 7},
	}

	sampleInsights = api.Insights{
		MoodTrend:   sampleMoodTrend,
		AverageMood: 6.1,
		EntryCount:  12,
		Themes: []api.ThemeCount{
			{Theme: "work", Count: 7},
			{Theme: "sleep", Count: 5},
			{Theme: "family", Count: 4},
			{Theme: "exercise", Count: 2},
		},
		Summary: "Your mood has been fairly steady, with better days after time outdoors.",
	}

	samplePrompt = "What is one small thing that went well today, and why did it matter to you?"

	sampleArticles = []api.Article{
		{ID: "sample-1", Title: "Understanding anxiety", Category: "anxiety", ReadMinutes: 6,
			Summary: "What anxiety is, how it shows up in the body, and first steps to manage it."},
		{ID: "sample-2", Title: "Sleep and mood", Category: "sleep", ReadMinutes: 5,
			Summary: "Why sleep affects how you feel and simple habits for better rest."},
		{ID: "sample-3", Title: "A five-minute breathing exercise", Category: "mindfulness", ReadMinutes: 3,
			Summary: "A short guided exercise you can do anywhere."},
		{ID: "sample-4", Title: "Reaching out for support", Category: "support", ReadMinutes: 4,
			Summary: "How to talk to friends, family or a professional about how you feel."},
	}
)

// Fallback rules per widget. The journal list has none: an empty journal
// is an explicit empty state, not sample entries.
var (
	moodPolicy = resource.Policy[[]api.MoodPoint]{
		Sample: sampleMoodTrend, OnError: true, SeedInDevelopment: true,
	}
	insightsPolicy = resource.Policy[api.Insights]{Sample: sampleInsights, OnError: true}
	promptPolicy   = resource.Policy[string]{Sample: samplePrompt, OnError: true}
	// Articles keep their errors visible so the user can retry.
	articlesPolicy = resource.Policy[[]api.Article]{Sample: sampleArticles, SeedInDevelopment: true}
)
