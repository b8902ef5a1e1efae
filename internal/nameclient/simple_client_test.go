package nameclient

import (
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/SystemBuilders/Namely/internal/namelist"
	"github.com/SystemBuilders/Namely/internal/node"

	"github.com/rs/zerolog"
)

func TestAddRemoveAndNames(t *testing.T) {
	zerolog.New(os.Stdout).With()

	log := zerolog.New(os.Stdout).With().Logger().Level(zerolog.GlobalLevel())
	scfg := namelist.NewSimpleConfig("127.0.0.1", "61112")
	nl := namelist.NewSimpleNameList(log)

	go func() {
		node.Start(nl, *scfg)
	}()

	// Server takes some time to start
	time.Sleep(100 * time.Millisecond)

	t.Run("add four names, the roster keeps their order", func(t *testing.T) {
		sc := NewSimpleClient(*scfg)

		var want error
		for _, name := range []string{"Alice", "Bob", "Charlie", "Garfield"} {
			got := sc.Add(name)
			if got != want {
				t.Errorf("add: got %q want %q", got, want)
			}
		}

		names, err := sc.Names()
		if err != nil {
			t.Fatal(err)
		}
		wantNames := []string{"Alice", "Bob", "Charlie", "Garfield"}
		if !reflect.DeepEqual(names, wantNames) {
			t.Errorf("names: got %v want %v", names, wantNames)
		}
	})

	t.Run("remove Bob, the others keep their order", func(t *testing.T) {
		sc := NewSimpleClient(*scfg)

		got := sc.Remove("Bob")
		var want error
		if got != want {
			t.Errorf("remove: got %q want %q", got, want)
		}

		names, err := sc.Names()
		if err != nil {
			t.Fatal(err)
		}
		wantNames := []string{"Alice", "Charlie", "Garfield"}
		if !reflect.DeepEqual(names, wantNames) {
			t.Errorf("names: got %v want %v", names, wantNames)
		}
	})

	t.Run("remove a missing name should fail", func(t *testing.T) {
		sc := NewSimpleClient(*scfg)

		got := sc.Remove("Bob")
		want := namelist.ErrNameNotFound
		if got != want {
			t.Errorf("remove: got %v want %v", got, want)
		}
	})

	t.Run("every client gets its own ID", func(t *testing.T) {
		one := NewSimpleClient(*scfg)
		two := NewSimpleClient(*scfg)

		if one.ClientID() == two.ClientID() {
			t.Errorf("clientID: got %s twice, want distinct IDs", one.ClientID())
		}
	})
}
