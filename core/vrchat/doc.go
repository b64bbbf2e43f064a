// Package vrchat fetches the user's favorited worlds from the listing API.
//
// Every configured favorite tag is paged with n/offset until a page comes back
// empty or the configured maximum offset is reached. Tags are fetched
// concurrently; the result is flattened in tag order, then page order.
//
// # Usage
//
//	client := vrchat.NewClient(cfg.Remote, logger)
//	entries, err := client.FetchFavorites(ctx)
package vrchat
