package prometheus

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/curatai/curauth"
)

type metricsSource interface {
	MetricsSnapshot() curauth.MetricsSnapshot
	AuditDropped() uint64
}

// counterNames fixes both the exposition names and the render order.
var counterNames = []struct {
	id   curauth.MetricID
	name string
}{
	{curauth.MetricRegisterSuccess, "curauth_register_success_total"},
	{curauth.MetricRegisterDuplicate, "curauth_register_duplicate_total"},
	{curauth.MetricLoginSuccess, "curauth_login_success_total"},
	{curauth.MetricLoginFailure, "curauth_login_failure_total"},
	{curauth.MetricAccountLocked, "curauth_account_locked_total"},
	{curauth.MetricRefreshSuccess, "curauth_refresh_success_total"},
	{curauth.MetricRefreshFailure, "curauth_refresh_failure_total"},
	{curauth.MetricLogout, "curauth_logout_total"},
	{curauth.MetricEmailVerificationSuccess, "curauth_email_verification_success_total"},
	{curauth.MetricEmailVerificationFailure, "curauth_email_verification_failure_total"},
	{curauth.MetricPasswordResetRequest, "curauth_password_reset_request_total"},
	{curauth.MetricPasswordResetSuccess, "curauth_password_reset_success_total"},
	{curauth.MetricPasswordResetFailure, "curauth_password_reset_failure_total"},
	{curauth.MetricSubscriptionChange, "curauth_subscription_change_total"},
}

// Exporter renders curauth metrics in Prometheus text exposition format.
type Exporter struct {
	source metricsSource
}

// NewExporter creates an Exporter that reads from the given service.
func NewExporter(service *curauth.Service) *Exporter {
	return &Exporter{source: service}
}

// NewExporterFromSource creates an Exporter from a custom snapshot source.
func NewExporterFromSource(source metricsSource) *Exporter {
	return &Exporter{source: source}
}

// Handler returns an http.Handler serving the current metrics.
func (e *Exporter) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		_, _ = w.Write([]byte(e.Render()))
	})
}

// Render returns the current metrics as exposition text. Output is
// deterministic: counters appear in declaration order, zero-valued counters
// are omitted, and a fully idle service renders empty.
func (e *Exporter) Render() string {
	if e == nil || e.source == nil {
		return ""
	}

	snapshot := e.source.MetricsSnapshot()
	dropped := e.source.AuditDropped()
	if len(snapshot.Counters) == 0 && dropped == 0 {
		return ""
	}

	var b strings.Builder
	for _, c := range counterNames {
		value, ok := snapshot.Counters[c.id]
		if !ok {
			continue
		}
		b.WriteString("# TYPE " + c.name + " counter\n")
		b.WriteString(c.name + " " + strconv.FormatUint(value, 10) + "\n")
	}
	if dropped > 0 {
		b.WriteString("# TYPE curauth_audit_dropped_total counter\n")
		b.WriteString("curauth_audit_dropped_total " + strconv.FormatUint(dropped, 10) + "\n")
	}
	return b.String()
}
