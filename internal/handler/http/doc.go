// Package http implements the local control API of the refresher.
//
// The overlay talks to the refresher exclusively through the routes wired in
// [Handler.Init]: refresh, status reports, linked accounts, the scheduled
// refresh and runtime settings. Request tracing and access logging are
// handled here before requests reach the service layer.
package http
