package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	SuccessfulRequests  *prometheus.CounterVec
	BadRequests         *prometheus.CounterVec
	InternalErrors      *prometheus.CounterVec
	UsuariosRegistrados prometheus.Counter
	PostagensCriadas    prometheus.Counter
	ComentariosCriados  prometheus.Counter
}

func InitMetrics() *Metrics {
	m := &Metrics{
		SuccessfulRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_request",
				Help: "Total number of successful (2xx) HTTP requests",
			},
			[]string{"path"},
		),
		BadRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unsuccessful_request",
				Help: "Total number of unsuccessful (4xx) HTTP requests",
			},
			[]string{"path"},
		),
		InternalErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "internal_error",
				Help: "Total number of failed (5xx) HTTP requests",
			},
			[]string{"path"},
		),
		UsuariosRegistrados: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "usuarios_registrados",
				Help: "Total number of registered users",
			},
		),
		PostagensCriadas: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "postagens_criadas",
				Help: "Total number of created posts",
			},
		),
		ComentariosCriados: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "comentarios_criados",
				Help: "Total number of created comments",
			},
		),
	}

	prometheus.MustRegister(m.SuccessfulRequests)
	prometheus.MustRegister(m.BadRequests)
	prometheus.MustRegister(m.InternalErrors)
	prometheus.MustRegister(m.UsuariosRegistrados)
	prometheus.MustRegister(m.PostagensCriadas)
	prometheus.MustRegister(m.ComentariosCriados)

	return m
}

// CountRequests buckets every finished request by status class.
func (m *Metrics) CountRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()
		switch {
		case status >= 200 && status < 300:
			m.SuccessfulRequests.WithLabelValues(path).Inc()
		case status >= 400 && status < 500:
			m.BadRequests.WithLabelValues(path).Inc()
		case status >= 500:
			m.InternalErrors.WithLabelValues(path).Inc()
		}
	}
}
