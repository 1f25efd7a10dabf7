package drive

import "testing"

func TestClassifierRemovable(t *testing.T) {
	tests := []struct {
		name       string
		classifier Classifier
		mount      Mount
		want       bool
	}{
		{"platform flag", Classifier{}, Mount{Path: "/mnt/x", Removable: true}, true},
		{"under root", Classifier{Roots: []string{"/media"}}, Mount{Path: "/media/user/USB"}, true},
		{"root itself", Classifier{Roots: []string{"/run/media/"}}, Mount{Path: "/run/media"}, true},
		{"sibling prefix", Classifier{Roots: []string{"/media"}}, Mount{Path: "/mediaserver/data"}, false},
		{"outside roots", Classifier{Roots: []string{"/media"}}, Mount{Path: "/home"}, false},
		{"windows ignores roots", Classifier{Roots: []string{"/media"}, Windows: true}, Mount{Path: "/media/user/USB"}, false},
		{"windows flag", Classifier{Windows: true}, Mount{Path: `E:\`, Removable: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.classifier.Removable(tt.mount); got != tt.want {
				t.Fatalf("Removable(%+v) = %v, want %v", tt.mount, got, tt.want)
			}
		})
	}
}

func TestSnapshotAddedSortedAndDeduplicated(t *testing.T) {
	classifier := Classifier{Roots: []string{"/media"}}
	previous := NewSnapshot([]Mount{{Path: "/media/a"}}, classifier)
	current := NewSnapshot([]Mount{
		{Path: "/media/c"},
		{Path: "/media/a"},
		{Path: "/media/b"},
		{Path: "/media/c"},
		{Path: "/boot"},
		{Path: ""},
	}, classifier)

	if current.Len() != 3 {
		t.Fatalf("expected 3 qualifying mounts, got %d", current.Len())
	}
	added := current.Added(previous)
	if len(added) != 2 || added[0].Path != "/media/b" || added[1].Path != "/media/c" {
		t.Fatalf("unexpected added mounts: %+v", added)
	}
	if got := current.Mounts(); got[0].Path != "/media/c" {
		t.Fatalf("expected OS order preserved, got %+v", got)
	}
}
