package state

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lmsadmin/internal/model"
)

func course(id, title string) model.Course {
	return model.Course{ID: id, Title: title, Status: model.StatusDraft}
}

func TestLoadReplacesAtomically(t *testing.T) {
	l := Courses()
	ctx := context.Background()

	err := l.Load(ctx, func(context.Context) ([]model.Course, error) {
		return []model.Course{course("c1", "Docker"), course("c2", "Next.js")}, nil
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !l.Loaded() {
		t.Fatal("expected Loaded after a successful load")
	}

	err = l.Load(ctx, func(context.Context) ([]model.Course, error) {
		return []model.Course{course("c3", "Go")}, nil
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []model.Course{course("c3", "Go")}
	if diff := cmp.Diff(want, l.Items()); diff != "" {
		t.Errorf("collection mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFailureKeepsPreviousState(t *testing.T) {
	l := Courses()
	ctx := context.Background()

	if err := l.Load(ctx, func(context.Context) ([]model.Course, error) {
		return []model.Course{course("c1", "Docker")}, nil
	}); err != nil {
		t.Fatalf("Load: %v", err)
	}

	boom := errors.New("fetch failed")
	if err := l.Load(ctx, func(context.Context) ([]model.Course, error) {
		return nil, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected the fetch error back, got %v", err)
	}

	if l.Len() != 1 {
		t.Fatalf("failed load must keep previous contents, got %d items", l.Len())
	}
	if !errors.Is(l.Err(), boom) {
		t.Fatalf("expected recorded load error, got %v", l.Err())
	}

	// the next successful load clears the recorded error
	if err := l.Load(ctx, func(context.Context) ([]model.Course, error) {
		return []model.Course{course("c1", "Docker")}, nil
	}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if l.Err() != nil {
		t.Fatalf("expected cleared load error, got %v", l.Err())
	}
}

func TestLoadDiscardsStaleResult(t *testing.T) {
	l := Courses()
	ctx := context.Background()

	if err := l.Load(ctx, func(context.Context) ([]model.Course, error) {
		return []model.Course{course("c1", "Docker")}, nil
	}); err != nil {
		t.Fatalf("Load: %v", err)
	}

	// the owning view goes away while the fetch is in flight
	err := l.Load(ctx, func(context.Context) ([]model.Course, error) {
		l.Invalidate()
		return []model.Course{course("c9", "Stale")}, nil
	})
	if err != nil {
		t.Fatalf("a discarded result is not an error, got %v", err)
	}
	if _, ok := l.Get("c9"); ok {
		t.Fatal("late-arriving result must not be applied")
	}
	if _, ok := l.Get("c1"); !ok {
		t.Fatal("previous contents must survive a discarded load")
	}
}

func TestApplyCreateAppendsConfirmedRecord(t *testing.T) {
	l := Courses()
	if err := l.Load(context.Background(), func(context.Context) ([]model.Course, error) {
		return []model.Course{course("c1", "Docker")}, nil
	}); err != nil {
		t.Fatalf("Load: %v", err)
	}

	l.ApplyCreate(course("c2", "Next.js"))

	items := l.Items()
	if len(items) != 2 || items[1].ID != "c2" {
		t.Fatalf("expected c2 appended, got %+v", items)
	}
}

func TestApplyUpdateMergesMatchingRecordOnly(t *testing.T) {
	l := Courses()
	l.ApplyCreate(course("c1", "Docker"))
	l.ApplyCreate(course("c2", "Next.js"))

	ok := l.ApplyUpdate("c2", func(c model.Course) model.Course {
		c.Title = "Next.js 15"
		return c
	})
	if !ok {
		t.Fatal("expected a matching record")
	}
	got, _ := l.Get("c2")
	if got.Title != "Next.js 15" {
		t.Errorf("expected merged title, got %q", got.Title)
	}
	other, _ := l.Get("c1")
	if other.Title != "Docker" {
		t.Errorf("unrelated record must be untouched, got %q", other.Title)
	}

	if l.ApplyUpdate("missing", func(c model.Course) model.Course { return c }) {
		t.Error("expected no match for an unknown id")
	}
}

func TestApplyDeleteRemovesExactlyOne(t *testing.T) {
	l := Courses()
	l.ApplyCreate(course("c1", "Docker"))
	l.ApplyCreate(course("c2", "Next.js"))
	l.ApplyCreate(course("c3", "Go"))

	if !l.ApplyDelete("c2") {
		t.Fatal("expected a matching record")
	}
	want := []model.Course{course("c1", "Docker"), course("c3", "Go")}
	if diff := cmp.Diff(want, l.Items()); diff != "" {
		t.Errorf("collection mismatch (-want +got):\n%s", diff)
	}

	if l.ApplyDelete("c2") {
		t.Error("deleting twice must report no match")
	}
}

func TestLecturesKeyedByID(t *testing.T) {
	l := Lectures()
	l.ApplyCreate(model.Lecture{ID: "l1", LectureTitle: "Welcome"})
	if _, ok := l.Get("l1"); !ok {
		t.Fatal("expected lecture keyed by its id")
	}
}
