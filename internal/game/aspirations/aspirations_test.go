package aspirations

import (
	"errors"
	"testing"
	"time"

	platformerrors "github.com/soma-satoro/PyReach/internal/platform/errors"
)

func TestAddAndCap(t *testing.T) {
	list := &List{}
	now := time.Now()

	for i := 0; i < MaxAspirations; i++ {
		if err := list.Add(now, Short, "goal"); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	err := list.Add(now, Long, "one too many")
	if err == nil {
		t.Fatal("expected cap to reject seventh aspiration")
	}
	if platformerrors.CodeOf(err) != platformerrors.CodeAspirationLimit {
		t.Errorf("error code = %v", platformerrors.CodeOf(err))
	}
}

func TestAddRejectsEmptyDescription(t *testing.T) {
	list := &List{}
	if err := list.Add(time.Now(), Short, "   "); err == nil {
		t.Fatal("expected empty description to be rejected")
	}
}

func TestFulfillRemovesAndReturns(t *testing.T) {
	list := &List{}
	now := time.Now()
	list.Add(now, Short, "first")
	list.Add(now, Long, "second")

	fulfilled, err := list.Fulfill(now, 1)
	if err != nil {
		t.Fatalf("fulfill: %v", err)
	}
	if fulfilled.Description != "first" {
		t.Errorf("fulfilled %q, want %q", fulfilled.Description, "first")
	}
	if len(list.Aspirations) != 1 || list.Aspirations[0].Description != "second" {
		t.Errorf("remaining = %v", list.Aspirations)
	}
}

func TestFulfillRateLimited(t *testing.T) {
	list := &List{}
	now := time.Now()
	for i := 0; i < 4; i++ {
		list.Add(now, Short, "goal")
	}

	for i := 0; i < 3; i++ {
		if _, err := list.Fulfill(now, 1); err != nil {
			t.Fatalf("fulfill %d: %v", i, err)
		}
	}

	_, err := list.Fulfill(now, 1)
	if err == nil {
		t.Fatal("expected fourth weekly fulfillment to be denied")
	}
	if !errors.Is(err, platformerrors.New(platformerrors.CodeRateLimited, "")) {
		t.Errorf("unexpected error: %v", err)
	}

	// The window reopens a week later.
	if _, err := list.Fulfill(now.Add(7*24*time.Hour+time.Minute), 1); err != nil {
		t.Errorf("fulfill after window: %v", err)
	}
}

func TestChangeRateLimited(t *testing.T) {
	list := &List{}
	now := time.Now()
	list.Add(now, Short, "goal")

	for i := 0; i < 3; i++ {
		if err := list.Change(now, 1, "revised"); err != nil {
			t.Fatalf("change %d: %v", i, err)
		}
	}
	if err := list.Change(now, 1, "again"); err == nil {
		t.Fatal("expected fourth weekly change to be denied")
	}
}

func TestRemoveOutOfRange(t *testing.T) {
	list := &List{}
	list.Add(time.Now(), Short, "goal")

	if err := list.Remove(0); err == nil {
		t.Error("expected index 0 to be rejected")
	}
	if err := list.Remove(2); err == nil {
		t.Error("expected index past end to be rejected")
	}
	if err := list.Remove(1); err != nil {
		t.Errorf("remove valid index: %v", err)
	}
}

func TestParseTerm(t *testing.T) {
	if term, ok := ParseTerm(" SHORT "); !ok || term != Short {
		t.Errorf("ParseTerm(SHORT) = %v, %v", term, ok)
	}
	if term, ok := ParseTerm("long"); !ok || term != Long {
		t.Errorf("ParseTerm(long) = %v, %v", term, ok)
	}
	if _, ok := ParseTerm("medium"); ok {
		t.Error("ParseTerm accepted medium")
	}
}
