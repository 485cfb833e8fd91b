// Package dungeon is a small REST demo over a RedisGraph database.
//
// PUT /dungeon generates a random connected graph of rooms with treasures
// and stores it as a property graph; GET /crawl asks the graph for the
// shortest path from the entrance to the richest treasure; GET / reports
// server and Redis health.
package dungeon
