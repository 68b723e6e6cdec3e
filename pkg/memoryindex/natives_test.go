package memoryindex

import (
	"reflect"
	"sort"
	"testing"

	"github.com/memoryindex/native/pkg/jni"
)

func TestNativesValid(t *testing.T) {
	for _, m := range Natives {
		if err := m.Validate(); err != nil {
			t.Errorf("%s: %v", m, err)
		}
	}
}

func TestAddSymbol(t *testing.T) {
	if got := AddMethod.ShortName(); got != "Java_org_apache_lucene_index_memory_MemoryIndex_add" {
		t.Errorf("ShortName() = %q", got)
	}
	if AddMethod.Descriptor != "(II)I" {
		t.Errorf("Descriptor = %q", AddMethod.Descriptor)
	}
}

// TestExportedSymbols keeps the //export directives of the shared library
// in step with the natives table.
func TestExportedSymbols(t *testing.T) {
	exported, err := jni.ScanExports("../../cmd/libmemoryindex")
	if err != nil {
		t.Fatalf("ScanExports() error = %v", err)
	}

	var want []string
	for _, m := range Natives {
		want = append(want, m.ShortName())
	}
	want = append(want, "JNI_OnLoad", "JNI_OnUnload")
	sort.Strings(want)

	if !reflect.DeepEqual(exported, want) {
		t.Errorf("exported symbols = %v, want %v", exported, want)
	}
}
