package service

import (
	"fmt"
	"jobtrackr/api/internal/model"
	"sort"
	"time"
)

type ApplicationStats struct {
	Total            int    `json:"total"`
	WeeklyChange     int    `json:"weeklyChange"`
	WeeklyChangeText string `json:"weeklyChangeText"`
}

type InterviewStats struct {
	Total        int    `json:"total"`
	Upcoming     int    `json:"upcoming"`
	ThisWeek     int    `json:"thisWeek"`
	UpcomingText string `json:"upcomingText"`
}

type OfferStats struct {
	Total       int    `json:"total"`
	Pending     int    `json:"pending"`
	PendingText string `json:"pendingText"`
}

type RejectionStats struct {
	Total            int    `json:"total"`
	WeeklyChange     int    `json:"weeklyChange"`
	WeeklyChangeText string `json:"weeklyChangeText"`
}

type DashboardStats struct {
	Applications ApplicationStats `json:"applications"`
	Interviews   InterviewStats   `json:"interviews"`
	Offers       OfferStats       `json:"offers"`
	Rejections   RejectionStats   `json:"rejections"`
}

// WeekBounds returns the current calendar week as [start, end), with
// the week starting on Sunday at midnight local time.
func WeekBounds(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start = start.AddDate(0, 0, -int(start.Weekday()))
	return start, start.AddDate(0, 0, 7)
}

// BuildDashboardStats folds an owner's applications and interviews into
// the dashboard counters. Pure function of its inputs, the caller
// decides what "now" means.
func BuildDashboardStats(apps []model.Application, interviews []model.Interview, now time.Time) DashboardStats {
	weekStart, weekEnd := WeekBounds(now)
	inWeek := func(t time.Time) bool {
		return !t.Before(weekStart) && t.Before(weekEnd)
	}

	var weeklyApps, offers, accepted, rejected, weeklyRejected int
	for _, a := range apps {
		if inWeek(a.ApplicationDate) {
			weeklyApps++
		}

		switch a.Status {
		case model.AppStatusOffer:
			offers++
		case model.AppStatusAccepted:
			accepted++
		case model.AppStatusRejected:
			rejected++
			if inWeek(a.ApplicationDate) {
				weeklyRejected++
			}
		}
	}

	var upcoming, thisWeek int
	for _, i := range interviews {
		if i.Status != model.InterviewStatusScheduled {
			continue
		}
		if !i.Date.Before(now) {
			upcoming++
		}
		if inWeek(i.Date) {
			thisWeek++
		}
	}

	return DashboardStats{
		Applications: ApplicationStats{
			Total:            len(apps),
			WeeklyChange:     weeklyApps,
			WeeklyChangeText: fmt.Sprintf("+%d this week", weeklyApps),
		},
		Interviews: InterviewStats{
			Total:        upcoming,
			Upcoming:     upcoming,
			ThisWeek:     thisWeek,
			UpcomingText: fmt.Sprintf("%d this week", thisWeek),
		},
		Offers: OfferStats{
			Total:       offers + accepted,
			Pending:     offers,
			PendingText: fmt.Sprintf("%d pending response", offers),
		},
		Rejections: RejectionStats{
			Total:            rejected,
			WeeklyChange:     weeklyRejected,
			WeeklyChangeText: fmt.Sprintf("%d this week", weeklyRejected),
		},
	}
}

type TimelineEvent struct {
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location,omitempty"`
	Platform    string    `json:"platform,omitempty"`
	Interviewer string    `json:"interviewer,omitempty"`
}

// AppSummary carries the joined company/position pair for interview
// timeline entries
type AppSummary struct {
	Company  string
	Position string
}

// BuildTimeline merges applications ("application" events) and
// interviews ("interview" events) into one feed sorted by event date
// descending, truncated to limit. Events with equal timestamps keep
// their discovery order, applications first.
func BuildTimeline(apps []model.Application, interviews []model.Interview, summaries map[uint]AppSummary, limit int) []TimelineEvent {
	events := make([]TimelineEvent, 0, len(apps)+len(interviews))

	for _, a := range apps {
		events = append(events, TimelineEvent{
			Type:     "application",
			Title:    fmt.Sprintf("Applied to %s", a.Company),
			Subtitle: a.Position,
			Status:   a.Status,
			Date:     a.ApplicationDate,
			Location: a.Location,
		})
	}

	for _, i := range interviews {
		subtitle := "Interview Scheduled"
		if s, ok := summaries[i.ApplicationID]; ok {
			subtitle = fmt.Sprintf("%s - %s", s.Company, s.Position)
		}

		events = append(events, TimelineEvent{
			Type:        "interview",
			Title:       fmt.Sprintf("%s Interview", i.Type),
			Subtitle:    subtitle,
			Status:      i.Status,
			Date:        i.Date,
			Location:    i.Location,
			Platform:    i.Platform,
			Interviewer: i.Interviewer,
		})
	}

	sort.SliceStable(events, func(a, b int) bool {
		return events[a].Date.After(events[b].Date)
	})

	if len(events) > limit {
		events = events[:limit]
	}

	return events
}
