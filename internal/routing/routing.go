package routing

import (
	"net/http"

	"github.com/SystemBuilders/Namely/internal/namelist"
	"github.com/gorilla/mux"
)

// SetupRouting adds all the routes on the http server.
func SetupRouting(nl *namelist.SimpleNameList, r *mux.Router) *mux.Router {
	r.HandleFunc("/add", makeAddHandler(nl)).Methods(http.MethodPost)
	r.HandleFunc("/remove", makeRemoveHandler(nl)).Methods(http.MethodPost)
	r.HandleFunc("/names", makeNamesHandler(nl)).Methods(http.MethodGet)
	return r
}

func makeAddHandler(nl *namelist.SimpleNameList) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		add(w, r, nl)
	}
}

func makeRemoveHandler(nl *namelist.SimpleNameList) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		remove(w, r, nl)
	}
}

func makeNamesHandler(nl *namelist.SimpleNameList) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names(w, r, nl)
	}
}
