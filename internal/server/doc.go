// Package server serves a source tree over HTTP, rendering documents on
// every request.
//
// Request mapping is delegated to pathmap.Resolver; rendering to any
// Renderer (normally *haystack.Engine). Nothing is cached between requests,
// so edits to sources show up on the next reload.
package server
