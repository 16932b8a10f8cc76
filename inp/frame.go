// Copyright 2025 Felipe Carvajal Brown. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements structural frame input data and predefined scenarios
package inp

import (
	"github.com/cpmech/gosl/chk"

	"github.com/fcarvajalbrown/Entropy-Collapse-Simulator/mdl"
)

// number of degrees of freedom per node: ux, uy, uz, rx, ry, rz
const NdofPerNode = 6

// Node represents a structural joint. Immutable once built.
type Node struct {
	Id        int       // unique identifier
	X, Y, Z   float64   // coordinates
	FixedDofs []int     // restrained local DOFs: 0=ux 1=uy 2=uz 3=rx 4=ry 5=rz
}

// Member represents a frame member (beam or column) connecting two nodes.
// The Active flag is the only mutable field: it flips to false when the
// member fails and is never reversed. FailOrder records the position of
// the member in the failure sequence (-1 while active).
type Member struct {
	Id        int           // unique identifier
	N0, N1    int           // ids of start and end nodes
	Mat       *mdl.Material // material; shared by reference across members of the same grade
	A         float64       // cross-sectional area
	I         float64       // second moment of area about the bending axis
	C         float64       // extreme-fibre distance; 0 on input means compact approximation sqrt(I/A)
	Active    bool          // false after failure
	FailOrder int           // failure sequence index; -1 while active
}

// Load represents an external force or moment applied at a node
type Load struct {
	NodeId int     // node where the load acts
	Dof    int     // local DOF the load acts on: 0=ux 1=uy 2=uz 3=rx 4=ry 5=rz
	Value  float64 // magnitude; force or moment
}

// FrameData holds the complete structural model. Read-only after Check,
// except for the members' Active/FailOrder fields.
type FrameData struct {
	Name    string    // human readable frame name
	Nodes   []*Node   // all nodes, ordered
	Members []*Member // all members, ordered
	Loads   []Load    // applied external loads

	// derived
	nmap map[int]*Node   // node id => node
	mmap map[int]*Member // member id => member
}

// Ndof returns the global number of degrees of freedom
func (o *FrameData) Ndof() int {
	return NdofPerNode * len(o.Nodes)
}

// Node returns the node with given id (nil if not found). Check must be
// called first.
func (o *FrameData) Node(id int) *Node {
	return o.nmap[id]
}

// Member returns the member with given id (nil if not found). Check must
// be called first.
func (o *FrameData) Member(id int) *Member {
	return o.mmap[id]
}

// Nactive returns the number of active members
func (o *FrameData) Nactive() (n int) {
	for _, m := range o.Members {
		if m.Active {
			n++
		}
	}
	return
}

// ActiveIds returns the ids of active members, in member order
func (o *FrameData) ActiveIds() (ids []int) {
	for _, m := range o.Members {
		if m.Active {
			ids = append(ids, m.Id)
		}
	}
	return
}

// Check validates the model and computes derived maps. It must be called
// once, before any analysis step. All violations are configuration errors;
// nothing is silently corrected here.
func (o *FrameData) Check() (err error) {

	// nodes
	o.nmap = make(map[int]*Node)
	for _, nd := range o.Nodes {
		if nd.Id < 0 || nd.Id >= len(o.Nodes) {
			return chk.Err("frame %q: node id %d out of range [0,%d); ids index the global DOF vector", o.Name, nd.Id, len(o.Nodes))
		}
		if _, ok := o.nmap[nd.Id]; ok {
			return chk.Err("frame %q: duplicate node id %d", o.Name, nd.Id)
		}
		for _, dof := range nd.FixedDofs {
			if dof < 0 || dof >= NdofPerNode {
				return chk.Err("frame %q: node %d has invalid fixed DOF %d", o.Name, nd.Id, dof)
			}
		}
		o.nmap[nd.Id] = nd
	}

	// members
	o.mmap = make(map[int]*Member)
	for _, m := range o.Members {
		if _, ok := o.mmap[m.Id]; ok {
			return chk.Err("frame %q: duplicate member id %d", o.Name, m.Id)
		}
		if o.nmap[m.N0] == nil || o.nmap[m.N1] == nil {
			return chk.Err("frame %q: member %d references missing node (%d or %d)", o.Name, m.Id, m.N0, m.N1)
		}
		if m.N0 == m.N1 {
			return chk.Err("frame %q: member %d connects node %d to itself", o.Name, m.Id, m.N0)
		}
		if m.Mat == nil {
			return chk.Err("frame %q: member %d has no material", o.Name, m.Id)
		}
		if m.Mat.E <= 0 || m.Mat.SigY <= 0 {
			return chk.Err("frame %q: member %d has non-positive material properties (E=%g, sigy=%g)", o.Name, m.Id, m.Mat.E, m.Mat.SigY)
		}
		if m.A <= 0 || m.I <= 0 {
			return chk.Err("frame %q: member %d has non-positive section properties (A=%g, I=%g)", o.Name, m.Id, m.A, m.I)
		}
		if m.C < 0 {
			return chk.Err("frame %q: member %d has negative extreme-fibre distance C=%g", o.Name, m.Id, m.C)
		}
		if m.C == 0 {
			m.C = mdl.CompactFibre(m.A, m.I)
		}
		m.Active = true
		m.FailOrder = -1
		o.mmap[m.Id] = m
	}

	// loads
	for _, l := range o.Loads {
		if o.nmap[l.NodeId] == nil {
			return chk.Err("frame %q: load references missing node %d", o.Name, l.NodeId)
		}
		if l.Dof < 0 || l.Dof >= NdofPerNode {
			return chk.Err("frame %q: load at node %d has invalid DOF %d", o.Name, l.NodeId, l.Dof)
		}
	}
	return
}
