package provision

import "sync"

// SchemaListener receives one notification per successfully installed
// artifact reference, after its rewrite. Notifications are fire-and-forget:
// the processor ignores anything the listener does with them.
type SchemaListener interface {
	// Notify reports the originating group and the local path of a
	// materialized artifact.
	Notify(groupID, path string)
}

// SchemaListenerFunc adapts a function to the SchemaListener interface.
type SchemaListenerFunc func(groupID, path string)

// Notify calls f.
func (f SchemaListenerFunc) Notify(groupID, path string) { f(groupID, path) }

// NopSchemaListener ignores all notifications.
type NopSchemaListener struct{}

// Notify does nothing.
func (NopSchemaListener) Notify(string, string) {}

// SchemaEntry is one recorded notification.
type SchemaEntry struct {
	GroupID string
	Path    string
}

// SchemaRecorder collects notifications for later schema extraction.
// Safe for concurrent use when documents are processed in parallel.
type SchemaRecorder struct {
	mu      sync.Mutex
	entries []SchemaEntry
}

// Notify records the notification.
func (r *SchemaRecorder) Notify(groupID, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, SchemaEntry{GroupID: groupID, Path: path})
}

// Entries returns a copy of the recorded notifications in arrival order.
func (r *SchemaRecorder) Entries() []SchemaEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]SchemaEntry, len(r.entries))
	copy(out, r.entries)
	return out
}
