// Package observability provides prometheus collectors and tracing setup.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "retrospace_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// ProfileViewsRecorded counts view-counter increments performed on the
	// public profile read path.
	ProfileViewsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "retrospace_profile_views_recorded_total",
		Help: "Total number of profile view increments recorded",
	})

	// VisitsLogged counts appended profile visit rows.
	VisitsLogged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "retrospace_profile_visits_logged_total",
		Help: "Total number of profile visit log rows appended",
	})

	// FriendRequestsTotal counts friend request mutations by outcome.
	FriendRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "retrospace_friend_requests_total",
		Help: "Total friend request operations by outcome",
	}, []string{"outcome"})

	// MediaUploadsTotal counts media uploads by kind.
	MediaUploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "retrospace_media_uploads_total",
		Help: "Total media uploads by kind",
	}, []string{"kind"})
)
