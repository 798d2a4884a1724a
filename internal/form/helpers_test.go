package form_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"time"

	"github.com/JaimeStill/print-orders/internal/config"
	"github.com/JaimeStill/print-orders/internal/form"
	"github.com/JaimeStill/print-orders/internal/orders"
	"github.com/JaimeStill/print-orders/internal/sizing"
	"github.com/JaimeStill/print-orders/internal/storefront"
	"github.com/JaimeStill/print-orders/internal/upload"
	"github.com/JaimeStill/print-orders/pkg/logging"
	"github.com/google/uuid"
)

// fakeStore is an in-process storefront.
type fakeStore struct {
	mu        sync.Mutex
	nextID    int
	orderFail string
	slow      map[string]bool
	reject    map[string]string
	received  []string
	created   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextID: 100,
		slow:   make(map[string]bool),
		reject: make(map[string]string),
	}
}

func (s *fakeStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch r.URL.Path {
	case "/create-order":
		s.mu.Lock()
		fail := s.orderFail
		s.nextID++
		s.created++
		id := s.nextID
		s.mu.Unlock()

		if fail != "" {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": fail})
			return
		}
		json.NewEncoder(w).Encode(map[string]int{"order_id": id})

	case "/upload":
		_, h, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		s.received = append(s.received, h.Filename)
		slow := s.slow[h.Filename]
		msg, rejected := s.reject[h.Filename]
		s.mu.Unlock()

		if slow {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
			return
		}
		if rejected {
			json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg})
			return
		}
		json.NewEncoder(w).Encode(map[string]bool{"success": true})

	default:
		http.NotFound(w, r)
	}
}

func (s *fakeStore) got(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.received, name)
}

// session is one order form wired against a fake storefront.
type session struct {
	store    *fakeStore
	server   *httptest.Server
	registry *orders.Registry
	recorder *form.Recorder
	adapter  *form.Adapter

	result *upload.Result
	err    error
}

func newSession() (*session, error) {
	store := newFakeStore()
	server := httptest.NewServer(store)

	cfg := &config.Config{}
	cfg.Client.BaseURL = server.URL
	cfg.Client.FileTimeout = "100ms"
	cfg.Client.Sizing = config.SizingLocal
	if err := cfg.Finalize(); err != nil {
		server.Close()
		return nil, err
	}

	logger := logging.Discard()
	client, err := storefront.New(&cfg.Client, logger)
	if err != nil {
		server.Close()
		return nil, err
	}

	sizer, err := sizing.New(cfg, client, logger)
	if err != nil {
		server.Close()
		return nil, err
	}

	registry := orders.NewRegistry()
	recorder := &form.Recorder{}

	return &session{
		store:    store,
		server:   server,
		registry: registry,
		recorder: recorder,
		adapter: form.New(
			cfg,
			registry,
			sizer,
			upload.New(registry, client, cfg, logger),
			recorder,
			logger,
		),
	}, nil
}

func (s *session) close() {
	s.server.Close()
}

func (s *session) find(name string) (orders.Item, error) {
	for _, item := range s.registry.Items() {
		if item.File.Name() == name {
			return item, nil
		}
	}
	return orders.Item{}, fmt.Errorf("no item named %q", name)
}

func (s *session) id(name string) uuid.UUID {
	item, err := s.find(name)
	if err != nil {
		return uuid.Nil
	}
	return item.ID
}

func pngFile(name string, w, h int) (orders.File, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h))); err != nil {
		return nil, err
	}
	return orders.BytesFile(name, buf.Bytes()), nil
}
