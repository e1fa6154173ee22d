package cache

import (
	"fmt"
	"testing"

	"github.com/inventario26/cronograma-go/pkg/cronograma/models"
)

func TestCachePutGet(t *testing.T) {
	c := New(0)
	data := []byte("workbook bytes")
	report := &models.Report{SheetName: "CRONOGRAMA"}

	if _, ok := c.Get(data, "CRONOGRAMA"); ok {
		t.Fatal("expected a miss on an empty cache")
	}

	c.Put(data, "CRONOGRAMA", report)

	got, ok := c.Get(data, "CRONOGRAMA")
	if !ok {
		t.Fatal("expected a hit after Put")
	}
	if got != report {
		t.Error("expected the same report pointer back")
	}
}

func TestCacheKeyIncludesSheet(t *testing.T) {
	c := New(0)
	data := []byte("workbook bytes")

	c.Put(data, "CRONOGRAMA", &models.Report{SheetName: "CRONOGRAMA"})

	if _, ok := c.Get(data, "OUTRA"); ok {
		t.Error("different sheet name must miss")
	}
	if _, ok := c.Get([]byte("other bytes"), "CRONOGRAMA"); ok {
		t.Error("different bytes must miss")
	}
}

func TestCacheEviction(t *testing.T) {
	c := New(2)

	for i := 0; i < 2; i++ {
		c.Put([]byte(fmt.Sprintf("wb-%d", i)), "CRONOGRAMA", &models.Report{})
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, expected 2", c.Len())
	}

	// Hitting the cap drops everything before the new entry goes in.
	c.Put([]byte("wb-2"), "CRONOGRAMA", &models.Report{})

	if c.Len() != 1 {
		t.Fatalf("Len after eviction = %d, expected 1", c.Len())
	}
	if _, ok := c.Get([]byte("wb-0"), "CRONOGRAMA"); ok {
		t.Error("old entry survived the eviction")
	}
	if _, ok := c.Get([]byte("wb-2"), "CRONOGRAMA"); !ok {
		t.Error("new entry missing after the eviction")
	}
}
