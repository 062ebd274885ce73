// Package preview runs the development preview server: a small HTTP
// server that hosts a demo scene, streams its animation commands to a
// browser thin client over a binary WebSocket protocol, and exposes the
// preset tables and sampled envelopes over a JSON API.
package preview
