package nameclient

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"math/rand"
	"net/http"
	"time"

	"github.com/SystemBuilders/Namely/internal/namelist"
	"github.com/oklog/ulid"
)

// Assert that *namelist.SimpleConfig implements Config.
var _ Config = (*namelist.SimpleConfig)(nil)

// Assert that *SimpleClient implements Client.
var _ Client = (*SimpleClient)(nil)

// SimpleClient implements Client, the roster client for Namely.
//
// Every client mints a ULID when it is created and sends it with
// each request, so that callers can be told apart when several
// clients talk to the same node.
type SimpleClient struct {
	config   Config
	clientID ulid.ULID
}

// NewSimpleClient returns a new SimpleClient talking to the node
// at the given configuration.
func NewSimpleClient(scfg namelist.SimpleConfig) *SimpleClient {
	entropy := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &SimpleClient{
		config:   &scfg,
		clientID: ulid.MustNew(ulid.Timestamp(time.Now()), entropy),
	}
}

// ClientID returns the unique ID that represents this client.
func (sc *SimpleClient) ClientID() ulid.ULID {
	return sc.clientID
}

// Add makes a HTTP call to the roster node and appends the name.
func (sc *SimpleClient) Add(name string) error {
	_, err := sc.post("/add", name)
	return err
}

// Remove makes a HTTP call to the roster node and unlinks the first
// occurrence of the name.
func (sc *SimpleClient) Remove(name string) error {
	_, err := sc.post("/remove", name)
	return err
}

// Names makes a HTTP call to the roster node and returns the roster
// in insertion order.
func (sc *SimpleClient) Names() ([]string, error) {
	resp, err := http.Get(sc.baseURL() + "/names")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, namelist.Error(string(bytes.TrimSpace(body)))
	}

	var res namelist.NamesResponse
	err = json.Unmarshal(body, &res)
	if err != nil {
		return nil, err
	}
	return res.Names, nil
}

// post sends a NameRequest to the given route and maps the node's
// answer onto the client's error contract.
func (sc *SimpleClient) post(route, name string) ([]byte, error) {
	data := namelist.NameRequest{
		Name:     name,
		ClientID: sc.clientID.String(),
	}
	requestJSON, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	resp, err := http.Post(sc.baseURL()+route, "application/json", bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusNotFound:
		return nil, namelist.ErrNameNotFound
	default:
		return nil, namelist.Error(string(bytes.TrimSpace(body)))
	}
}

func (sc *SimpleClient) baseURL() string {
	return "http://" + sc.config.IP() + ":" + sc.config.Port()
}
