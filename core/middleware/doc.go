// Package middleware groups the Fiber middleware registered by the start command.
//
// Subpackages:
//   - rayid: tags every request with an X-Ray-ID, reusing one sent by the client.
//   - auth: rejects requests without the configured X-API-Key.
//
// rayid runs first so auth failures are logged with the request id.
package middleware
