// Package live keeps FormGroup components alive for the length of a
// websocket connection. The browser runtime forwards control events, the
// server dispatches them through Trigger, re-validates the model and sends
// back the re-rendered group.
//
// Client messages:
//
//	{"name": "email", "event": "input", "value": "a@example.com"}
//
// Server replies:
//
//	{"name": "email", "id": "formgroup-3", "html": "<div ...>", "model": "a@example.com", "valid": true}
package live
