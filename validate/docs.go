// Package validate checks nested data against a shape.Template.
//
// The traversal is depth-first and stops at the first failure. A mapping
// template first requires every template key to be present (in template
// order), then rejects extra data keys (in ascending key order), then
// descends into each template key in template order. Failures are reported
// as "bad type: <path>" or "mismatched keys: <path>", where path is the
// dotted key path from the root; the root path is empty.
//
// Validate is pure and returns the (ok, message) pair. Check returns the same
// outcome as an error and also records metrics, a debug log line and a span.
package validate
