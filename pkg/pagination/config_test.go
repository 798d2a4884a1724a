package pagination_test

import (
	"testing"

	"github.com/JaimeStill/print-orders/pkg/pagination"
)

func TestConfig_Finalize_Defaults(t *testing.T) {
	var cfg pagination.Config
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.DefaultPageSize != 20 {
		t.Errorf("DefaultPageSize = %d, want 20", cfg.DefaultPageSize)
	}
	if cfg.MaxPageSize != 100 {
		t.Errorf("MaxPageSize = %d, want 100", cfg.MaxPageSize)
	}
}

func TestConfig_Finalize_Env(t *testing.T) {
	t.Setenv("TEST_DEFAULT_PAGE_SIZE", "50")
	t.Setenv("TEST_MAX_PAGE_SIZE", "200")

	cfg := pagination.Config{}
	env := &pagination.ConfigEnv{
		DefaultPageSize: "TEST_DEFAULT_PAGE_SIZE",
		MaxPageSize:     "TEST_MAX_PAGE_SIZE",
	}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.DefaultPageSize != 50 || cfg.MaxPageSize != 200 {
		t.Errorf("got default %d max %d, want 50 200", cfg.DefaultPageSize, cfg.MaxPageSize)
	}
}

func TestConfig_Finalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  pagination.Config
	}{
		{"default exceeds max", pagination.Config{DefaultPageSize: 200, MaxPageSize: 100}},
		{"choice exceeds max", pagination.Config{PageSizes: []int{20, 500}}},
		{"default not a choice", pagination.Config{DefaultPageSize: 25, PageSizes: []int{10, 20}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(nil); err == nil {
				t.Error("Finalize() error = nil, want error")
			}
		})
	}
}

func TestConfig_Allows(t *testing.T) {
	cfg := pagination.Config{DefaultPageSize: 20, MaxPageSize: 100, PageSizes: []int{10, 20, 50, 100}}

	for _, size := range []int{10, 20, 50, 100} {
		if !cfg.Allows(size) {
			t.Errorf("Allows(%d) = false, want true", size)
		}
	}
	for _, size := range []int{0, -1, 15, 101} {
		if cfg.Allows(size) {
			t.Errorf("Allows(%d) = true, want false", size)
		}
	}
}

func TestConfig_Merge(t *testing.T) {
	base := pagination.Config{DefaultPageSize: 20, MaxPageSize: 100, PageSizes: []int{10, 20}}
	base.Merge(&pagination.Config{MaxPageSize: 50, PageSizes: []int{20, 50}})

	if base.DefaultPageSize != 20 {
		t.Errorf("DefaultPageSize = %d, want 20", base.DefaultPageSize)
	}
	if base.MaxPageSize != 50 {
		t.Errorf("MaxPageSize = %d, want 50", base.MaxPageSize)
	}
	if len(base.PageSizes) != 2 || base.PageSizes[1] != 50 {
		t.Errorf("PageSizes = %v, want [20 50]", base.PageSizes)
	}
}
