package doctree_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/docnav/pkg/doctree"
)

// buildTestTree builds:
//
//	0 Root
//	1   Header
//	2     Text
//	3   Paragraph
//	4     Text
//	5     Emphasis
//	6       Text
//	7     Link
//	8       Text
func buildTestTree() *doctree.Tree {
	b := doctree.NewBuilder(doctree.Root{Title: "Test"})

	b.Open(doctree.Header{Level: 1, Text: "Intro", Anchor: "intro"})
	b.Leaf(doctree.Text{Content: "Intro"})
	b.Close()

	b.Open(doctree.Paragraph{})
	b.Leaf(doctree.Text{Content: "Some "})
	b.Open(doctree.Emphasis{Effect: doctree.EffectBold})
	b.Leaf(doctree.Text{Content: "bold"})
	b.Close()
	b.Open(doctree.Link{Target: doctree.AnchorTarget{Anchor: "intro"}})
	b.Leaf(doctree.Text{Content: "link"})
	b.Close()
	b.Close()

	return b.Build()
}

func TestWalk(t *testing.T) {
	t.Parallel()

	tree := buildTestTree()

	var visited []int
	err := doctree.Walk(tree.Root(), func(n doctree.Node) error {
		visited = append(visited, n.Index())
		return nil
	})
	if err != nil {
		t.Fatalf("Walk returned error: %v", err)
	}

	if len(visited) != tree.Len() {
		t.Fatalf("visited %d nodes, want %d", len(visited), tree.Len())
	}
	for i, idx := range visited {
		if idx != i {
			t.Errorf("visited[%d] = %d, want pre-order index %d", i, idx, i)
		}
	}
}

func TestWalk_StopsOnError(t *testing.T) {
	t.Parallel()

	tree := buildTestTree()
	stop := errors.New("stop")

	count := 0
	err := doctree.Walk(tree.Root(), func(n doctree.Node) error {
		count++
		if n.Kind() == doctree.KindParagraph {
			return stop
		}
		return nil
	})

	if !errors.Is(err, stop) {
		t.Fatalf("Walk error = %v, want %v", err, stop)
	}
	if count != 4 {
		t.Errorf("visited %d nodes before stopping, want 4", count)
	}
}

func TestWalkWithContext(t *testing.T) {
	t.Parallel()

	tree := buildTestTree()

	var events []string
	enter := func(n doctree.Node) error {
		events = append(events, "+"+n.Kind().String())
		return nil
	}
	leave := func(n doctree.Node) error {
		events = append(events, "-"+n.Kind().String())
		return nil
	}

	if err := doctree.WalkWithContext(tree.Root(), enter, leave); err != nil {
		t.Fatalf("WalkWithContext returned error: %v", err)
	}

	expected := []string{
		"+Root",
		"+Header", "+Text", "-Text", "-Header",
		"+Paragraph",
		"+Text", "-Text",
		"+Emphasis", "+Text", "-Text", "-Emphasis",
		"+Link", "+Text", "-Text", "-Link",
		"-Paragraph",
		"-Root",
	}

	if len(events) != len(expected) {
		t.Fatalf("got %d events, want %d: %v", len(events), len(expected), events)
	}
	for i := range expected {
		if events[i] != expected[i] {
			t.Errorf("event[%d] = %s, want %s", i, events[i], expected[i])
		}
	}
}

func TestWalkWithContext_NilCallbacks(t *testing.T) {
	t.Parallel()

	tree := buildTestTree()

	if err := doctree.WalkWithContext(tree.Root(), nil, nil); err != nil {
		t.Fatalf("WalkWithContext returned error: %v", err)
	}
}

func TestFindFirst(t *testing.T) {
	t.Parallel()

	tree := buildTestTree()

	link := doctree.FindFirst(tree.Root(), func(n doctree.Node) bool {
		return n.Kind() == doctree.KindLink
	})
	if !link.Valid() {
		t.Fatal("expected to find a link")
	}
	if link.Index() != 7 {
		t.Errorf("link index = %d, want 7", link.Index())
	}

	missing := doctree.FindFirst(tree.Root(), func(n doctree.Node) bool {
		return n.Kind() == doctree.KindCodeBlock
	})
	if missing.Valid() {
		t.Error("expected no code block")
	}
}

func TestFindByKind(t *testing.T) {
	t.Parallel()

	tree := buildTestTree()

	texts := doctree.FindByKind(tree.Root(), doctree.KindText)
	if len(texts) != 4 {
		t.Fatalf("found %d text nodes, want 4", len(texts))
	}
	want := []int{2, 4, 6, 8}
	for i, n := range texts {
		if n.Index() != want[i] {
			t.Errorf("texts[%d] index = %d, want %d", i, n.Index(), want[i])
		}
	}
}
