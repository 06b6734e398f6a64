// Package http serves a domain.Engine as a JSON API with gin.
//
// Routes
//
//	GET  /healthcheck
//	GET  /api/reference
//	GET  /api/fits
//	GET  /api/fits/:name
//	POST /api/fit
//	GET  /api/limits?class=H7&nominal_mm=25
//	GET  /api/sweep?nominal_mm=25
//
// Failures use the envelope {"error":{"message":"...","code":"..."}} with the
// codes of domain.ErrorCode; unknown fit names are 404, bad input 400, table
// coverage gaps 422 and inconsistent results 500.
package http
