// Package server assembles the website: it builds the routers, wires the
// middleware chain, and runs the public and health HTTP servers.
//
// Two listeners run side by side. The public server carries the pages and
// the JSON API; the health server carries /healthz, /readyz, and /metrics
// on a separate port so probes and scrapes never compete with page
// traffic.
package server
