// Package peers holds the topology structures that determine where a node
// floods broadcast values.
package peers

// Topology maps each node id to the list of neighbors it forwards broadcast
// values to. A node only ever consults its own row.
type Topology map[string][]string

// NeighborsOf returns the topology row for the given node id, or nil when the
// node has no row. Rows are not validated against cluster membership; an
// unknown neighbor id simply never matters at flood time.
func (t Topology) NeighborsOf(id string) []string {
	return t[id]
}

// Exclude is used to exclude a single id from a list of neighbor ids. The
// flood protocol uses it to skip the sender a value arrived from.
func Exclude(ids []string, excluded string) []string {
	others := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != excluded {
			others = append(others, id)
		}
	}
	return others
}
