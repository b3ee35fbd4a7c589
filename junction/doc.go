// Package junction implements the three low-level chain-joining primitives
// shared by vertexmerger and vertexsplit: antiparallel and parallel joins of
// two free chain ends, and closing a single free chain into a disconnected
// cycle. Both higher-level transform packages compose these (vertexmerger
// directly for its (1,1) variant; vertexsplit for the final re-fuse step of
// its (2,2)/(2,0)/(0,0) variants), so they are factored out here rather than
// duplicated or forcing a import cycle between the two transform packages.
package junction
