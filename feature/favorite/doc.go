// Package favorite serves the stored favorite worlds over HTTP and runs crawl
// cycles on demand.
//
// Routes:
//   - GET  /favorites            stored rows, ?favorited=true|false filter
//   - GET  /favorites/:worldId   one stored row
//   - POST /favorites/sync       run one cycle, ?from_cache=true reads the archive
//   - GET  /favorites/schema     columns missing from the stored table
//
// The subpackages hold the pipeline itself: models, normalize, store and crawler.
package favorite
