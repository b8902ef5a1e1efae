package nameclient

// Client describes a client that can be used to interact with a
// Namely roster node. The client interacts by making HTTP calls
// to a node that has already been started.
//
// The client offers the user to Add a name, Remove a name and
// fetch the full roster with Names. Absence of a name on Remove
// comes back as ErrNameNotFound rather than a transport failure.
type Client interface {
	// Add appends a name at the end of the roster. Any name is
	// accepted, so Add only fails on transport errors.
	Add(name string) error
	// Remove unlinks the first occurrence of the name from the
	// roster. ErrNameNotFound is returned when the roster holds
	// no such name.
	Remove(name string) error
	// Names returns every name on the roster in insertion order.
	Names() ([]string, error)
}

// Config describes the configuration for the roster node to run on.
type Config interface {
	// IP provides the IP address where the server is intended to run.
	IP() string
	// Port provides the port where the server is supposed to run.
	Port() string
}
