// Package mcp provides an MCP (Model Context Protocol) server adapter for
// the searchconsole CLI. It exposes the Search Console operations as tools
// callable by AI assistants and other MCP clients.
package mcp

import "errors"

// ErrMissingSearchConsoleService is returned when the Search Console
// service is not provided.
var ErrMissingSearchConsoleService = errors.New("mcp: search console service is required")
