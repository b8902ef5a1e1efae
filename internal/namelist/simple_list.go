package namelist

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// EmptyListMessage is written by Display when the list holds no names.
const EmptyListMessage = "The list is empty."

// SimpleConfig implements Config.
type SimpleConfig struct {
	IPAddr   string
	PortAddr string
}

// NameRequest is a struct used by the client to communicate
// a name to the HTTP server of a roster node.
type NameRequest struct {
	Name     string `json:"Name"`
	ClientID string `json:"ClientID"`
}

// NamesResponse carries every name on the roster, head to tail.
type NamesResponse struct {
	Names []string `json:"Names"`
}

// IP returns the IP address from SimpleConfig.
func (scfg *SimpleConfig) IP() string {
	return scfg.IPAddr
}

// Port returns the port from SimpleConfig.
func (scfg *SimpleConfig) Port() string {
	return scfg.PortAddr
}

// NewSimpleConfig returns a new simple configuration.
func NewSimpleConfig(IPAddr, PortAddr string) *SimpleConfig {
	return &SimpleConfig{
		IPAddr:   IPAddr,
		PortAddr: PortAddr,
	}
}

// Assert that *ListNode implements Node.
var _ Node = (*ListNode)(nil)

// ListNode is the single entity of the name list. Each node holds
// one name and the link to its successor; a node is owned by its
// predecessor, or by the list itself when it is the head.
type ListNode struct {
	NodeName string
	NextNode *ListNode
}

// Name returns the name held by the node.
func (n *ListNode) Name() string {
	return n.NodeName
}

// Next returns the node to the right of the current node.
func (n *ListNode) Next() Node {
	if n.NextNode == nil {
		return nil
	}
	return n.NextNode
}

// Assert that *SimpleNameList implements NameList.
var _ NameList = (*SimpleNameList)(nil)

// SimpleNameList is a name list that implements NameList.
// It keeps the names as a singly linked chain of nodes and tracks
// only the head; the tail is found by traversal on every append.
// It can add and remove names and has an in-built logger.
type SimpleNameList struct {
	log  zerolog.Logger
	head *ListNode
}

// NewSimpleNameList creates and returns a new empty name list ready to use.
func NewSimpleNameList(log zerolog.Logger) *SimpleNameList {
	return &SimpleNameList{
		log:  log,
		head: nil,
	}
}

// Add appends a name at the end of the list.
//
// The new node becomes the head when the list is empty. Otherwise
// the chain is walked from the head to the last node and the new
// node is linked after it, so earlier names keep their relative
// order. Duplicates are permitted.
func (sl *SimpleNameList) Add(name string) {
	newNode := &ListNode{NodeName: name}
	if sl.head == nil {
		sl.head = newNode
		sl.
			log.
			Debug().
			Str("name", name).
			Msg("added as head")
		return
	}
	current := sl.head
	for current.NextNode != nil {
		current = current.NextNode
	}
	current.NextNode = newNode
	sl.
		log.
		Debug().
		Str("name", name).
		Msg("added at tail")
}

// Remove unlinks the first node whose name equals the given name
// and reports whether a match was found.
//
// Only the earliest added occurrence is removed; later duplicates
// stay in place. When the match is the head, the list's head moves
// to the next node. A miss mutates nothing and is a normal outcome,
// not an error.
func (sl *SimpleNameList) Remove(name string) bool {
	current := sl.head
	var prev *ListNode
	for current != nil {
		if current.NodeName == name {
			if prev != nil {
				prev.NextNode = current.NextNode
			} else {
				sl.head = current.NextNode
			}
			sl.
				log.
				Debug().
				Str("name", name).
				Msg("removed")
			return true
		}
		prev = current
		current = current.NextNode
	}
	sl.
		log.
		Debug().
		Str("name", name).
		Msg("can't remove, not in the list")
	return false
}

// Names returns the names in the list from head to tail.
func (sl *SimpleNameList) Names() []string {
	names := []string{}
	for current := sl.head; current != nil; current = current.NextNode {
		names = append(names, current.NodeName)
	}
	return names
}

// Display writes the list to w in head to tail order, one name per
// line. An empty list writes EmptyListMessage instead. Display never
// mutates the list.
func (sl *SimpleNameList) Display(w io.Writer) {
	if sl.head == nil {
		fmt.Fprintln(w, EmptyListMessage)
		return
	}
	for current := sl.head; current != nil; current = current.NextNode {
		fmt.Fprintln(w, current.NodeName)
	}
}

// Head returns the first node of the list, or nil when the list is empty.
func (sl *SimpleNameList) Head() Node {
	if sl.head == nil {
		return nil
	}
	return sl.head
}
