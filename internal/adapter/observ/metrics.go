package observ

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersPlaced counts orders successfully created from carts.
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "qrmenu",
		Name:      "orders_placed_total",
		Help:      "Total number of orders placed",
	})

	// StatusTransitions counts applied lifecycle transitions by target
	// status.
	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "qrmenu",
		Name:      "order_status_transitions_total",
		Help:      "Total number of applied order status transitions",
	}, []string{"to"})

	// Suggestions counts description-suggestion requests by outcome
	// (ok, empty, busy).
	Suggestions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "qrmenu",
		Name:      "description_suggestions_total",
		Help:      "Total number of description suggestion requests",
	}, []string{"outcome"})
)
