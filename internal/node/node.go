package node

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/SystemBuilders/Namely/internal/namelist"
	"github.com/SystemBuilders/Namely/internal/routing"
	"github.com/gorilla/mux"
)

// Node describes a roster node that serves a name list.
type Node interface {
	// Start starts up the node by initialising the necessary data.
	Start() error
}

// Start begins the node's operation as a http server.
func Start(nl *namelist.SimpleNameList, scfg namelist.SimpleConfig) error {
	if err := checkValidPort(scfg.Port()); err != nil {
		return err
	}

	router := mux.NewRouter()

	router = routing.SetupRouting(nl, router)

	server := &http.Server{
		Handler: router,
		Addr:    scfg.IP() + ":" + scfg.Port(),
	}

	go gracefulShutdown(server)

	log.Println("Starting Server on " + scfg.IP() + ":" + scfg.Port())
	return server.ListenAndServe()
}

// gracefulShutdown shuts down the server on getting a ^C signal
func gracefulShutdown(server *http.Server) {
	interruptChan := make(chan os.Signal, 1)
	signal.Notify(interruptChan, os.Interrupt, syscall.SIGTERM)

	// Block until we receive our signal.
	<-interruptChan

	// Create a deadline to wait for currently serving items.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	server.Shutdown(ctx)

	log.Println("Shutting down")
	os.Exit(0)
}

func checkValidPort(port string) error {
	portInt, err := strconv.Atoi(port)
	if err != nil {
		return err
	}
	if portInt > 65535 {
		return errors.New("Port number exceeds limit of 65535")
	}
	return nil
}
