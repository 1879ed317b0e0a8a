package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "studydash_logins_total",
		Help: "Login attempts by result.",
	}, []string{"result"})

	QuizSubmissions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "studydash_quiz_submissions_total",
		Help: "Graded quiz attempts.",
	})

	Uploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "studydash_pdf_uploads_total",
		Help: "PDF uploads by result.",
	}, []string{"result"})
)
