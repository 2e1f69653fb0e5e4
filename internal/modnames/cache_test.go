package modnames

import (
	"errors"
	"testing"
	"time"
)

// fakeClock is an adjustable clock for expiry tests.
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func TestCache_LookupOncePerWindow(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	calls := 0
	c := New(func(bucket int) (string, error) {
		calls++
		return "Loops", nil
	}, clock.Now, time.Minute)

	for i := 0; i < 5; i++ {
		name, err := c.Name(3)
		if err != nil {
			t.Fatalf("name: %v", err)
		}
		if name != "Loops" {
			t.Fatalf("name = %q, want Loops", name)
		}
	}
	if calls != 1 {
		t.Errorf("lookup calls = %d, want 1 inside the TTL window", calls)
	}
}

func TestCache_ExpiresAfterTTL(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	calls := 0
	c := New(func(bucket int) (string, error) {
		calls++
		return "Loops", nil
	}, clock.Now, time.Minute)

	if _, err := c.Name(3); err != nil {
		t.Fatal(err)
	}
	clock.Advance(61 * time.Second)
	if _, err := c.Name(3); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("lookup calls = %d, want 2 after expiry", calls)
	}
}

func TestCache_DistinctBuckets(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	c := New(func(bucket int) (string, error) {
		if bucket == 1 {
			return "Variables", nil
		}
		return "Loops", nil
	}, clock.Now, 0)

	a, _ := c.Name(1)
	b, _ := c.Name(2)
	if a != "Variables" || b != "Loops" {
		t.Errorf("names = %q, %q", a, b)
	}
}

func TestCache_LookupError(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	boom := errors.New("source down")
	c := New(func(bucket int) (string, error) {
		return "", boom
	}, clock.Now, 0)

	if _, err := c.Name(1); !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped source error", err)
	}
}

func TestTopicNamer_DegradesOnError(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	c := New(func(bucket int) (string, error) {
		return "", errors.New("source down")
	}, clock.Now, 0)

	if got := c.TopicNamer()(1, 10, 19); got != "" {
		t.Errorf("namer = %q, want empty string so the engine falls back", got)
	}
}
