package wellness

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the domain counters exported on /metrics.
//
//   - moodmate_moods_logged_total{type}
//   - moodmate_exercises_completed_total{exercise}
//   - moodmate_chat_replies_total{topic}
//   - moodmate_checkin_replies_total{sentiment}
type Metrics struct {
	MoodsLogged        *prometheus.CounterVec
	ExercisesCompleted *prometheus.CounterVec
	ChatReplies        *prometheus.CounterVec
	CheckinReplies     *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		MoodsLogged: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moodmate_moods_logged_total",
				Help: "Total number of mood entries logged",
			},
			[]string{"type"},
		),
		ExercisesCompleted: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moodmate_exercises_completed_total",
				Help: "Total number of guided exercises completed",
			},
			[]string{"exercise"},
		),
		ChatReplies: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moodmate_chat_replies_total",
				Help: "Total number of chat replies by matched topic",
			},
			[]string{"topic"},
		),
		CheckinReplies: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moodmate_checkin_replies_total",
				Help: "Total number of check-in replies by detected sentiment",
			},
			[]string{"sentiment"},
		),
	}
}
