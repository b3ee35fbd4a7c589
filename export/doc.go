// Package export implements the two on-disk representations of §6: an
// append-able little-endian binary snapshot format (Writer) and a JSON
// {"vertices":...,"links":...} document (JSON, ValidateJSON).
package export
