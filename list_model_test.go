package imx

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestListModelAddDeduplicates(t *testing.T) {
	items := []string{"alpha", "beta"}
	m := ListModel[string]{Items: &items, Deduplicate: true}

	if m.Add("alpha") {
		t.Error("Add of an existing element reported a change")
	}
	if diff := cmp.Diff([]string{"alpha", "beta"}, items); diff != "" {
		t.Errorf("items changed (-want +got):\n%s", diff)
	}
	if !m.Add("gamma") {
		t.Error("Add of a new element reported no change")
	}
}

func TestListModelDeduplicatesNormalizedStrings(t *testing.T) {
	items := []string{"caf\u00e9"}
	m := ListModel[string]{Items: &items, Deduplicate: true}

	if m.Add("cafe\u0301") {
		t.Error("NFC-equivalent string was added twice")
	}
}

func TestListModelWithoutDeduplicateAllowsRepeats(t *testing.T) {
	items := []int{1}
	m := ListModel[int]{Items: &items}
	if !m.Add(1) || len(items) != 2 {
		t.Errorf("items = %v, want [1 1]", items)
	}
}

func TestListModelCustomEquality(t *testing.T) {
	items := []string{"Go"}
	m := ListModel[string]{Items: &items, Deduplicate: true, Equal: strings.EqualFold}
	if m.Add("GO") {
		t.Error("case-insensitive duplicate was added")
	}
}

func TestListModelRemove(t *testing.T) {
	items := []int{10, 20, 30}
	m := ListModel[int]{Items: &items}

	if !m.Remove(1) {
		t.Fatal("Remove(1) reported no change")
	}
	if diff := cmp.Diff([]int{10, 30}, items); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
	for _, i := range []int{-1, 2, 99} {
		if m.Remove(i) {
			t.Errorf("Remove(%d) on %v reported a change", i, items)
		}
	}
}

func TestListModelCommit(t *testing.T) {
	type port int
	items := []port{80}
	m := ListModel[port]{Items: &items, Deduplicate: true}

	if ok, err := m.Commit(" 443 "); !ok || err != nil {
		t.Fatalf("Commit(443) = %v, %v", ok, err)
	}
	if ok, err := m.Commit("80"); ok || err != nil {
		t.Errorf("Commit(80) = %v, %v; want false, nil", ok, err)
	}
	if _, err := m.Commit("http"); err == nil {
		t.Error("Commit(http) accepted a non-number")
	}
	if _, err := m.Commit("   "); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Commit(blank) error = %v, want ErrEmptyInput", err)
	}
	if diff := cmp.Diff([]port{80, 443}, items); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
}

func TestListModelCommitOneElementPerInput(t *testing.T) {
	var items []string
	m := ListModel[string]{Items: &items}
	if _, err := m.Commit("a,b,c"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a,b,c"}, items); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
}
