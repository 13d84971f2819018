package app

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	metricGamesStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "duckgoose_games_started_total",
			Help: "Total games started",
		},
	)
	metricGamesEnded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckgoose_games_ended_total",
			Help: "Total games ended, by end reason",
		},
		[]string{"reason"},
	)
	metricAnswersAccepted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "duckgoose_answers_accepted_total",
			Help: "Total correct answer claims",
		},
	)
	metricAnswersRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "duckgoose_answers_rejected_total",
			Help: "Total incorrect answer claims",
		},
	)
	metricGeeseRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "duckgoose_geese_rejected_total",
			Help: "Total premature goose calls",
		},
	)
)

func init() {
	prometheus.MustRegister(metricGamesStarted)
	prometheus.MustRegister(metricGamesEnded)
	prometheus.MustRegister(metricAnswersAccepted)
	prometheus.MustRegister(metricAnswersRejected)
	prometheus.MustRegister(metricGeeseRejected)
}
