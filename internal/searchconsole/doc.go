// Package searchconsole implements a thin client for the Google Search
// Console APIs.
//
// Two REST surfaces are covered:
//
//   - Webmasters API v3 (https://www.googleapis.com/webmasters/v3):
//     site and sitemap management plus search-analytics queries.
//
//   - Search Console API v1 (https://searchconsole.googleapis.com/v1):
//     the URL Inspection index report.
//
// # Authentication
//
// The client authenticates with an API key carried as the `key` query
// parameter. Keys are fetched from an injected [CredentialsProvider] on
// every call and are never cached. Because authentication travels in the
// query string, requests carry no Authorization or other default headers.
//
// A missing or unobtainable key is not a local error: the request is sent
// without it and the remote service answers 401, which surfaces to the
// caller as a [googleapi.Error].
//
// For parity with OAuth-based deployments, [NewWithTokenSource] builds the
// client on an oauth2 transport instead; no key injection happens in that
// mode.
//
// # Error Handling
//
// Non-2xx responses are returned as *googleapi.Error carrying the HTTP
// status code and response body. The client performs no retries and no
// local input validation; malformed input surfaces as a remote 400-class
// error. IsNotFound, IsUnauthorized, IsForbidden and IsRateLimited
// classify common failures.
//
// # Site Identifiers
//
// Site URLs are either full property URLs ("https://www.example.com/") or
// domain properties ("sc-domain:example.com"). Both contain characters
// reserved in URL paths, so every path segment derived from caller input
// is percent-encoded with no characters treated as safe.
package searchconsole
