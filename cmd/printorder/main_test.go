package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestQuote(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	poster := writePNG(t, dir, "poster.png", 3000, 1500)

	out, _, err := run(t, "quote", poster, "--sizing", "local", "--quantity", "2")
	if err != nil {
		t.Fatalf("quote error = %v", err)
	}

	for _, want := range []string{"poster.png", "10.00 x 5.00", "10 x 5 = 50", "$2.00", "TOTAL"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestQuote_JSON(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	strip := writePNG(t, dir, "strip.png", 750, 300)

	out, _, err := run(t, "quote", strip, "--sizing", "local", "--json")
	if err != nil {
		t.Fatalf("quote error = %v", err)
	}

	var summary struct {
		Count int    `json:"count"`
		Price string `json:"price"`
	}
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if summary.Count != 1 || summary.Price != "$0.06" {
		t.Errorf("summary = %+v", summary)
	}
}

func TestQuote_Width(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	poster := writePNG(t, dir, "poster.png", 3000, 1500)

	out, _, err := run(t, "quote", poster, "--sizing", "local", "--width", "5")
	if err != nil {
		t.Fatalf("quote error = %v", err)
	}
	if !strings.Contains(out, "5.00 x 2.50") {
		t.Errorf("output should show the proportional height:\n%s", out)
	}
}

func TestQuote_NoUsableImages(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "notes.txt")
	os.WriteFile(path, []byte("text"), 0644)

	_, stderr, err := run(t, "quote", path, "--sizing", "local")
	if err == nil {
		t.Fatal("quote of an unsupported file should fail")
	}
	if !strings.Contains(stderr, "[warning] notes.txt is not a supported file type") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRoot_InvalidFlags(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, _, err := run(t, "quote", "x.png", "--sizing", "psychic"); err == nil {
		t.Error("invalid --sizing should fail")
	}
	if _, _, err := run(t, "quote", "x.png", "--log-level", "loud"); err == nil {
		t.Error("invalid --log-level should fail")
	}
}

func TestSubmit(t *testing.T) {
	var mu sync.Mutex
	var uploaded []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/create-order":
			w.Write([]byte(`{"order_id": "A-1"}`))
		case "/upload":
			_, h, err := r.FormFile("file")
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			mu.Lock()
			uploaded = append(uploaded, h.Filename)
			mu.Unlock()
			w.Write([]byte(`{"success": true}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("PRINT_CLIENT_BASE_URL", srv.URL)
	a := writePNG(t, dir, "a.png", 300, 300)
	b := writePNG(t, dir, "b.png", 600, 300)

	out, _, err := run(t, "submit", a, b, "--sizing", "local", "--email", "buyer@example.com", "--po", "4410")
	if err != nil {
		t.Fatalf("submit error = %v", err)
	}

	for _, want := range []string{"uploaded a.png (1/2, 50%)", "uploaded b.png (2/2, 100%)", "Order A-1 submitted", "/success"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if len(uploaded) != 2 || uploaded[0] != "a.png" || uploaded[1] != "b.png" {
		t.Errorf("uploaded = %v", uploaded)
	}
}

func TestSubmit_RequiresEmail(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	a := writePNG(t, dir, "a.png", 300, 300)

	if _, _, err := run(t, "submit", a, "--sizing", "local"); err == nil {
		t.Error("submit without --email should fail")
	}
}

const ordersYAML = `
- order_number: PO-1
  email: a@example.com
  status: pending
  created_at: 2025-03-01
  total_cost: 2
- order_number: PO-2
  email: b@example.com
  status: completed
  created_at: 2025-03-02
  total_cost: 4.5
`

func TestOrdersList(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	os.WriteFile(filepath.Join(dir, "orders.yaml"), []byte(ordersYAML), 0644)

	out, _, err := run(t, "orders", "list", "--view", "closed", "--export", "page.xlsx")
	if err != nil {
		t.Fatalf("orders list error = %v", err)
	}
	if !strings.Contains(out, "PO-2") || strings.Contains(out, "PO-1") {
		t.Errorf("closed view output:\n%s", out)
	}
	if !strings.Contains(out, "$4.50") || !strings.Contains(out, "Page 1 of 1 (1 orders, 20 per page)") {
		t.Errorf("output:\n%s", out)
	}

	f, err := excelize.OpenFile(filepath.Join(dir, "page.xlsx"))
	if err != nil {
		t.Fatalf("export not readable: %v", err)
	}
	defer f.Close()
	rows, _ := f.GetRows(f.GetSheetName(0))
	if len(rows) != 2 {
		t.Errorf("export rows = %d, want 2", len(rows))
	}

	out, _, err = run(t, "orders", "list")
	if err != nil {
		t.Fatalf("orders list error = %v", err)
	}
	if !strings.Contains(out, "PO-2") || strings.Contains(out, "PO-1") {
		t.Errorf("remembered view should stay closed:\n%s", out)
	}

	out, _, _ = run(t, "orders", "list", "--view", "all", "--from", "2025-03-05")
	if !strings.Contains(out, "No orders match") {
		t.Errorf("empty range output:\n%s", out)
	}
}

func TestOrdersList_PagingHints(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	var b strings.Builder
	for i := 1; i <= 25; i++ {
		fmt.Fprintf(&b, "- order_number: PO-%d\n  status: pending\n  created_at: 2025-03-%02d\n  total_cost: 1\n", i, i)
	}
	os.WriteFile(filepath.Join(dir, "orders.yaml"), []byte(b.String()), 0644)

	out, _, err := run(t, "orders", "list", "--page-size", "10", "--page", "2")
	if err != nil {
		t.Fatalf("orders list error = %v", err)
	}
	if !strings.Contains(out, "Page 2 of 3") || !strings.Contains(out, "Previous: --page 1") || !strings.Contains(out, "Next: --page 3") {
		t.Errorf("paging output:\n%s", out)
	}

	out, _, _ = run(t, "orders", "list", "--from", "2025-03-01")
	if !strings.Contains(out, "Page 1 of 3") || strings.Contains(out, "Previous:") {
		t.Errorf("date filter change should return to page 1:\n%s", out)
	}

	run(t, "orders", "list", "--page", "3")
	out, _, _ = run(t, "orders", "list", "--reset")
	if !strings.Contains(out, "Page 1 of 2 (25 orders, 20 per page)") || strings.Contains(out, "Previous:") {
		t.Errorf("reset output:\n%s", out)
	}
}
