package timeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vango-dev/motion/pkg/motion"
)

func sampleTimeline(name string) *Timeline {
	return &Timeline{
		Name:       name,
		RecordedAt: time.Now().UTC().Truncate(time.Millisecond),
		Frames: []Frame{
			{AtMs: 0, Value: "opacity", Command: FromMotion(motion.Snap(1))},
			{AtMs: 250, Value: "scale", Command: FromMotion(motion.Spring(1, motion.SpringBouncy))},
		},
	}
}

func TestDiskStoreSaveLoad(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	ctx := context.Background()
	want := sampleTimeline("demo")
	id, err := store.Save(ctx, want)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load(ctx, id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != "demo" || len(got.Frames) != 2 {
		t.Errorf("got %+v", got)
	}
	if got.Frames[1].Command.Op != "spring" {
		t.Errorf("frame 1 op = %q", got.Frames[1].Command.Op)
	}
}

func TestDiskStoreLoadMissing(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}
	if _, err := store.Load(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDiskStoreListNewestFirst(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	ctx := context.Background()
	older := sampleTimeline("older")
	older.RecordedAt = time.Now().Add(-time.Hour)
	newer := sampleTimeline("newer")

	if _, err := store.Save(ctx, older); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := store.Save(ctx, newer); err != nil {
		t.Fatalf("Save: %v", err)
	}

	infos, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("len = %d, want 2", len(infos))
	}
	if infos[0].Name != "newer" || infos[1].Name != "older" {
		t.Errorf("order = %q, %q", infos[0].Name, infos[1].Name)
	}
	if infos[0].Frames != 2 {
		t.Errorf("frames = %d, want 2", infos[0].Frames)
	}
}

func TestDiskStoreDelete(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	ctx := context.Background()
	id, err := store.Save(ctx, sampleTimeline("demo"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Load(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete err = %v, want ErrNotFound", err)
	}
}

func TestDiskStoreReindexesOnStartup(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewDiskStore(dir)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}
	id, err := first.Save(ctx, sampleTimeline("persisted"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	second, err := NewDiskStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := second.Load(ctx, id)
	if err != nil {
		t.Fatalf("Load after reopen: %v", err)
	}
	if got.Name != "persisted" {
		t.Errorf("name = %q", got.Name)
	}
}
