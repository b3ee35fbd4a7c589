// Package edgeops implements edge creation and deletion (§4.8):
// CreateInNewChain and CreateInExistingChain add an edge; DeleteWithHostChain
// and DeletePreservingHostChain remove one, the former also removing the
// chain that held it.
package edgeops
