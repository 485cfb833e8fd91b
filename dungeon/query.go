package dungeon

import (
	"fmt"
	"strings"
)

// clearQuery wipes the current dungeon graph.
const clearQuery = "MATCH (n) DETACH DELETE n"

// crawlQuery finds the shortest path from the entrance (room 1) to the room
// holding the most valuable treasure.
const crawlQuery = `
MATCH (max:Treasure)
WITH max(max.gp) AS maxgp
MATCH (r:Room)-[:CONTAINS]->(t:Treasure)
WHERE t.gp = maxgp
WITH r.id AS dest_id
MATCH (start:Room), (stop:Room)
WHERE start.id = 1 AND stop.id = dest_id
RETURN shortestPath((start)-[:LEADS_TO*]->(stop)) AS path`

// BuildCreateQuery renders the CREATE clauses that persist a layout as a
// property graph. Rooms and treasures become nodes; every corridor becomes
// a LEADS_TO relation in both directions.
func BuildCreateQuery(l *Layout) string {
	var sb strings.Builder

	for r := 0; r < l.Rooms; r++ {
		fmt.Fprintf(&sb, "CREATE (r%d:Room {id: %d})\n", r, r)
	}

	for _, c := range l.Corridors {
		fmt.Fprintf(&sb, "CREATE (r%d)-[:LEADS_TO]->(r%d)\n", c[0], c[1])
		fmt.Fprintf(&sb, "CREATE (r%d)-[:LEADS_TO]->(r%d)\n", c[1], c[0])
	}

	for _, t := range l.Treasures {
		fmt.Fprintf(&sb, "CREATE (t%d:Treasure {id: %d, gp: %d})\n", t.ID, t.ID, t.GP)
	}

	for _, t := range l.Treasures {
		fmt.Fprintf(&sb, "CREATE (r%d)-[:CONTAINS]->(t%d)\n", l.Placement[t.ID], t.ID)
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// extractScalar pulls the named column's value out of the first result row
// of a GRAPH.QUERY reply. The reply shape is [header, rows, stats]; header
// cells and row values arrive as interface values whose concrete types
// depend on the query, so everything is rendered through fmt.
func extractScalar(reply any, column string) (string, bool) {
	arr, ok := reply.([]any)
	if !ok || len(arr) < 2 {
		return "", false
	}

	header, ok := arr[0].([]any)
	if !ok {
		return "", false
	}

	col := -1
	for i, h := range header {
		if fmt.Sprint(h) == column {
			col = i
			break
		}
	}
	if col < 0 {
		return "", false
	}

	rows, ok := arr[1].([]any)
	if !ok || len(rows) == 0 {
		return "", false
	}

	row, ok := rows[0].([]any)
	if !ok || col >= len(row) {
		return "", false
	}

	cell := row[col]
	if cell == nil {
		return "", false
	}

	return fmt.Sprint(cell), true
}
