// Package main runs fitserver, the HTTP front end of the fitpick engine.
//
// HTTP API
//
//	GET /healthcheck
//	    {"status":"ok"}
//
//	GET /api/reference
//	    Version, digest and coverage of the loaded reference tables.
//
//	GET /api/fits, GET /api/fits/{name}
//	    The fit catalog, or one entry resolved by name or alias.
//
//	POST /api/fit {"name", "shape", "width_mm", "height_mm"}
//	    A FitReport with one axis per toleranced dimension.
//
//	GET /api/limits?class=H7&nominal_mm=25
//	    Limits of one tolerance class.
//
//	GET /api/sweep?nominal_mm=25
//	    Every catalog fit evaluated at one diameter.
//
// Behaviour
//
//   - Reference tables are loaded once at start-up (FITPICK_TABLES overrides
//     the embedded ones) and never change while serving.
//   - Every request is logged with its request ID; OTEL_ENABLED=true adds
//     OpenTelemetry spans exported over OTLP/HTTP or to stdout.
//   - The listen address is FITPICK_ADDR, default :8080. SIGINT and SIGTERM
//     drain in-flight requests before exit.
package main
