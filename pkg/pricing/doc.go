// Package pricing produces price estimates for a tabletop configuration
// along two paths: an instant local calculation that is always available,
// and an authoritative quote from the remote pricing service that arrives
// asynchronously and supersedes the local figure when it lands.
//
// The [Estimator] reconciles the two: every payload change publishes a
// fresh local estimate synchronously, debounces for a quiet period, then
// issues at most one authoritative request for the settled payload. Stale
// responses - any request issued before the latest payload change - are
// discarded by sequence number. A failed or timed-out remote call degrades
// gracefully: the local estimate is retained and an error message is
// surfaced alongside it.
package pricing
