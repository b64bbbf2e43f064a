// Package crawler runs one crawl cycle: fetch the favorited worlds (or read
// the latest archived payload), normalize every entry, then clear the
// favorited flags and upsert the batch.
//
// Entries that fail to normalize are logged and dropped. An empty fetch clears
// every favorited flag. A fetch whose entries were all dropped leaves the store
// untouched.
//
// Clearing and upserting are two transactions. A failure between them leaves
// rows flagged as not favorited until the next cycle re-derives the flags.
package crawler
