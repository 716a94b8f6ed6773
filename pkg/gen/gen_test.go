package gen

import (
	stderrors "errors"
	"strings"
	"testing"

	"typeforge/pkg/errors"
	"typeforge/pkg/types"
)

func buildAnimal(t *testing.T) *types.TypeDefinition {
	t.Helper()
	reg := types.NewRegistry()
	def, err := reg.NewType("Animal", types.TypePublic)
	if err != nil {
		t.Fatalf("NewType failed: %v", err)
	}
	if _, err := def.DefineField("age", types.Int32, types.Public); err != nil {
		t.Fatalf("DefineField failed: %v", err)
	}
	if _, err := def.DefineField("name", types.String, types.Private); err != nil {
		t.Fatalf("DefineField failed: %v", err)
	}
	if _, err := def.DefineDefaultConstructor(types.Public); err != nil {
		t.Fatalf("DefineDefaultConstructor failed: %v", err)
	}
	if err := def.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	return def
}

// collapseSpaces folds runs of spaces into one, so assertions survive the
// column alignment gofmt applies to struct fields.
func collapseSpaces(s string) string {
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return s
}

func TestRenderFile(t *testing.T) {
	def := buildAnimal(t)

	src, err := RenderFile("zoo", def)
	if err != nil {
		t.Fatalf("RenderFile failed: %v", err)
	}
	flat := collapseSpaces(src)
	for _, want := range []string{
		"package zoo",
		"type Animal struct",
		"age int32",
		"name string",
		"func NewAnimal() *Animal",
	} {
		if !strings.Contains(flat, want) {
			t.Errorf("Expected rendered source to contain '%s', got:\n%s", want, src)
		}
	}
}

func TestRenderRejectsUnfinalized(t *testing.T) {
	reg := types.NewRegistry()
	def, err := reg.NewType("Animal", types.TypePublic)
	if err != nil {
		t.Fatalf("NewType failed: %v", err)
	}

	_, err = RenderFile("zoo", def)
	var se *errors.StateError
	if !stderrors.As(err, &se) {
		t.Errorf("Expected a StateError for an unfinalized type, got %T: %v", err, err)
	}
}

func TestRenderRejectsGenericAndInterface(t *testing.T) {
	reg := types.NewRegistry()

	crate, err := reg.ImportType("Crate\x601", types.TypePublic, "T")
	if err != nil {
		t.Fatalf("ImportType failed: %v", err)
	}
	_, err = RenderFile("zoo", crate)
	var ue *errors.UnsupportedError
	if !stderrors.As(err, &ue) {
		t.Errorf("Expected an UnsupportedError for a generic definition, got %T: %v", err, err)
	}

	iface, err := reg.NewType("Feedable", types.TypePublic|types.TypeInterface)
	if err != nil {
		t.Fatalf("NewType failed: %v", err)
	}
	if err := iface.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	_, err = RenderFile("zoo", iface)
	if !stderrors.As(err, &ue) {
		t.Errorf("Expected an UnsupportedError for an interface, got %T: %v", err, err)
	}
}
