// Package models defines the favorite-world data shapes.
//
// Record is the canonical, validated view of one favorited world for a single
// fetch cycle. It is built by NewRecord and never mutated afterwards.
//
// FavoriteWorld is the long-lived stored row (table "favorite_world"). It is
// created on the first public sighting of a world, updated in place on later
// sightings, flagged via IsFavorited, and never deleted.
package models
