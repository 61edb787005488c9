// Package health provides HTTP handlers for liveness and readiness probes.
//
// [LivenessHandler] always answers OK while the process runs.
// [ReadinessHandler] runs a set of named [Checks] in parallel under a shared
// timeout and answers 503 when any of them fails.
//
// Both handlers negotiate the format: plain text by default, JSON when the
// request carries ?format=json or Accept: application/json.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "sendgrid_api_key": health.RequireSetting("SENDGRID_API_KEY", cfg.SendGrid.APIKey),
//	}))
//
// JSON response:
//
//	{"status":"unhealthy","checks":{"sendgrid_api_key":{"status":"unhealthy","error":"health: not configured: SENDGRID_API_KEY"}}}
package health
