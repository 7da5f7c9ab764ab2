package questions

import (
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDomainBank(t *testing.T) {
	path := writeTemp(t, "bank.csv", `Domain,Questions
Python,"What is a generator?"
Python,"Explain the GIL."
SQL,"What is a join?"
SQL,
Go,"What does the select statement do?"
`)

	b, err := LoadDomainBank(path)
	if err != nil {
		t.Fatalf("LoadDomainBank: %v", err)
	}

	if got := b.Domains(); !reflect.DeepEqual(got, []string{"Python", "SQL", "Go"}) {
		t.Errorf("domains = %v", got)
	}
	if got := b.Questions("Python"); len(got) != 2 {
		t.Errorf("python questions = %v", got)
	}
	// Empty question cell row is excluded.
	if got := b.Questions("SQL"); len(got) != 1 {
		t.Errorf("sql questions = %v", got)
	}
}

func TestLoadDomainBankMissingColumns(t *testing.T) {
	path := writeTemp(t, "bad.csv", "A,B\nx,y\n")
	if _, err := LoadDomainBank(path); err == nil {
		t.Fatal("expected error for missing columns")
	}
}

func TestLoadHRBank(t *testing.T) {
	path := writeTemp(t, "hr.csv", "Question\nTell me about yourself.\n\nWhat motivates you?\n")

	qs, err := LoadHRBank(path)
	if err != nil {
		t.Fatalf("LoadHRBank: %v", err)
	}
	want := []string{"Tell me about yourself.", "What motivates you?"}
	if !reflect.DeepEqual(qs, want) {
		t.Errorf("questions = %v, want %v", qs, want)
	}
}

func TestSampleWithoutReplacement(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e"}
	rng := rand.New(rand.NewSource(42))

	got := Sample(pool, 3, rng)
	if len(got) != 3 {
		t.Fatalf("len = %d", len(got))
	}
	seen := map[string]bool{}
	for _, q := range got {
		if seen[q] {
			t.Errorf("duplicate draw %q", q)
		}
		seen[q] = true
	}
}

func TestSampleDeterministicForSeed(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e"}
	a := Sample(pool, 5, rand.New(rand.NewSource(7)))
	b := Sample(pool, 5, rand.New(rand.NewSource(7)))
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced %v and %v", a, b)
	}
}

func TestSampleClampsToPoolSize(t *testing.T) {
	pool := []string{"a", "b"}
	got := Sample(pool, 10, rand.New(rand.NewSource(1)))
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}
