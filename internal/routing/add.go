package routing

import (
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/SystemBuilders/Namely/internal/namelist"
)

// add wraps the list Add function and creates a clean HTTP service.
func add(w http.ResponseWriter, r *http.Request, nl *namelist.SimpleNameList) {

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req namelist.NameRequest
	err = json.Unmarshal(body, &req)

	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Any name is accepted, the empty string included,
	// so there is no failure path past this point.
	nl.Add(req.Name)

	w.Write([]byte("name added"))
}
