// Package invsdk is the typed client for the StackLedger inventory API.
//
// It carries the request and response shapes shared between the HTTP handlers
// and API consumers (provisioning agents, sync scripts, the e2e test suite),
// plus a small client wrapping the JSON endpoints.
//
// All mutating calls authenticate with an API key:
//
//	c := invsdk.NewClient("http://localhost:8080", invsdk.WithAPIKey(key))
//	resp, err := c.UpsertAsset(ctx, invsdk.AssetRequest{Hostname: "web01"})
package invsdk
