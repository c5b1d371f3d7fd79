// Package web serves a preferences file over HTTP.
//
// The index page lists every preference. Under /api, preferences are
// read and written as JSON and text can be spell checked against the
// dictionaries of a [spell.Checker]. When an auth key is configured,
// every route except the health check requires it as a bearer token.
package web
