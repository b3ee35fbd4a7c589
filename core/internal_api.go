// File: internal_api.go
// Role: The narrow surface transform packages (junction, vertexmerger,
// vertexsplit, edgeops, componentops, pulling) use to reach Graph internals
// that §4 of the data model otherwise keeps private. Go has no friend
// classes, so per §9's redesign note ("replace [friend-class access] by a
// narrow internal trait or module-private access surface") this file is
// that surface: every method here is a thin, documented export of a
// lower-level helper already used internally by graph.go. Application code
// outside the transform packages should prefer the higher-level transform
// functions instead.
package core

// CopyNeigs copies the neighbor set at fromSlot onto toSlot; see graph.go's
// copyNeigs for the full contract.
func (g *Graph) CopyNeigs(fromSlot, toSlot Slot) { g.copyNeigs(fromSlot, toSlot) }

// RemoveSlotFromNeigs disconnects s from every neighbor currently listed at s.
func (g *Graph) RemoveSlotFromNeigs(s Slot) { g.removeSlotFromNeigs(s) }

// ReplaceSlotInNeigs rewrites every neighborhood entry equal to oldS into newS.
func (g *Graph) ReplaceSlotInNeigs(oldS, newS Slot) { g.replaceSlotInNeigs(oldS, newS) }

// PopLastChain removes the last chain from Graph.Chains; callers must have
// already detached it from every component and neighborhood.
func (g *Graph) PopLastChain() { g.popLastChain() }

// LastChainID returns the id of the last chain in Graph.Chains.
func (g *Graph) LastChainID() ChainID { return ChainID(len(g.Chains) - 1) }

// AppendChain installs a newly-built, not-yet-owned chain into Graph.Chains
// and returns its assigned id. The caller is responsible for attaching it to
// a component afterward.
func (g *Graph) AppendChain(ch *Chain) ChainID { return g.addChain(ch) }

// AppendComponent installs a newly-built component object and returns its id.
func (g *Graph) AppendComponent(cp *Component) ComponentID { return g.addComponentObj(cp) }

// PopLastComponent removes the last component from Graph.Components; callers
// must have already emptied its ChainIDs.
func (g *Graph) PopLastComponent() { g.Components = g.Components[:len(g.Components)-1] }

// LastComponentID returns the id of the last component in Graph.Components.
func (g *Graph) LastComponentID() ComponentID { return ComponentID(len(g.Components) - 1) }

// RenameComponentInto moves the component object at id from into slot to,
// mirroring RenameChain's contract for components.
func (g *Graph) RenameComponentInto(from, to ComponentID) { g.renameComponent(from, to) }
