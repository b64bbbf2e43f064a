// Package middleware contains HTTP middleware for the Fiber application.
//
//   - auth: API key validation (X-API-Key header or api_key query parameter).
//   - rayid: assigns every request a RayID, stored in the context locals and
//     echoed in the X-Ray-ID response header.
//
// RayID must be registered first so every later log line carries it.
package middleware
