// Package pgnotify carries real-time events over PostgreSQL NOTIFY/LISTEN.
//
// Every event is wrapped in an Envelope and sent on one database channel
// (EVENTS_CHANNEL). The logical channel (a seller, a user, or the sellers
// broadcast) travels inside the envelope, so a single LISTEN connection per
// process is enough:
//
//	Publisher ──pg_notify──▶ PostgreSQL ──LISTEN──▶ Relay ──▶ Hub ──▶ SSE clients
//
// AsyncPublisher decorates any ports.EventPublisher so request paths never wait
// on the database round trip.
package pgnotify
