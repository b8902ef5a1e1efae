package routing

import (
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/SystemBuilders/Namely/internal/namelist"
)

// remove wraps the list Remove function and creates a clean HTTP service.
func remove(w http.ResponseWriter, r *http.Request, nl *namelist.SimpleNameList) {

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

	if !nl.Remove(req.Name) {
		http.Error(w, namelist.ErrNameNotFound.Error(), http.StatusNotFound)
		return
	}

	w.Write([]byte("name removed"))
}
