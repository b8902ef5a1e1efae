package routing

import (
	"encoding/json"
	"net/http"

	"github.com/SystemBuilders/Namely/internal/namelist"
)

// names wraps the list Names function and creates a clean HTTP service.
//
// An empty list is a normal state and answers with an empty slice,
// never with an error.
func names(w http.ResponseWriter, r *http.Request, nl *namelist.SimpleNameList) {

	byteData, err := json.Marshal(namelist.NamesResponse{Names: nl.Names()})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Write(byteData)
}
