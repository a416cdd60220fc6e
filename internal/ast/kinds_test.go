package ast

import (
	"testing"
)

// The canonical keyword strings feed diagnostics, so each mapping must be
// injective and must not change between calls.

func TestContractKindStrings(t *testing.T) {
	expected := map[ContractKind]string{
		CONTRACT:          "contract",
		ABSTRACT_CONTRACT: "abstract contract",
		INTERFACE:         "interface",
		LIBRARY:           "library",
	}
	assertKeywordStrings(t, expected)
}

func TestFunctionKindStrings(t *testing.T) {
	expected := map[FunctionKind]string{
		CONSTRUCTOR: "constructor",
		FUNCTION:    "function",
		FALLBACK:    "fallback",
		RECEIVE:     "receive",
		MODIFIER:    "modifier",
	}
	assertKeywordStrings(t, expected)
}

func TestStorageStrings(t *testing.T) {
	expected := map[Storage]string{
		MEMORY:   "memory",
		STORAGE:  "storage",
		CALLDATA: "calldata",
	}
	assertKeywordStrings(t, expected)
}

func TestStateMutabilityStrings(t *testing.T) {
	expected := map[StateMutability]string{
		PURE:    "pure",
		VIEW:    "view",
		PAYABLE: "payable",
	}
	assertKeywordStrings(t, expected)
}

func TestVisibilityStrings(t *testing.T) {
	expected := map[Visibility]string{
		PRIVATE:  "private",
		INTERNAL: "internal",
		PUBLIC:   "public",
		EXTERNAL: "external",
	}
	assertKeywordStrings(t, expected)
}

func TestVarMutStrings(t *testing.T) {
	expected := map[VarMut]string{
		IMMUTABLE: "immutable",
		CONSTANT:  "constant",
	}
	assertKeywordStrings(t, expected)
}

func TestUserDefinableOperatorStrings(t *testing.T) {
	expected := map[UserDefinableOperator]string{
		BIT_AND: "&",
		BIT_NOT: "~",
		BIT_OR:  "|",
		BIT_XOR: "^",
		ADD:     "+",
		DIV:     "/",
		REM:     "%",
		MUL:     "*",
		SUB:     "-",
		EQ:      "==",
		GE:      ">=",
		GT:      ">",
		LE:      "<=",
		LT:      "<",
		NE:      "!=",
	}
	assertKeywordStrings(t, expected)
}

// assertKeywordStrings checks an enum's String mapping against the expected
// keyword spellings, that no two variants share a spelling, and that
// repeated calls return the same value.
func assertKeywordStrings[K comparable](t *testing.T, expected map[K]string) {
	t.Helper()
	seen := make(map[string]bool)
	for variant, want := range expected {
		got := anyString(variant)
		if got != want {
			t.Errorf("%v.String() = %q, want %q", variant, got, want)
		}
		if seen[got] {
			t.Errorf("canonical string %q is not unique", got)
		}
		seen[got] = true
		if again := anyString(variant); again != got {
			t.Errorf("%v.String() is not stable: %q then %q", variant, got, again)
		}
	}
}

func anyString(v any) string {
	type stringer interface{ String() string }
	return v.(stringer).String()
}

func TestVisibilityOrdering(t *testing.T) {
	// Override-compatibility checks compare visibilities as integers.
	if !(PRIVATE < INTERNAL && INTERNAL < PUBLIC && PUBLIC < EXTERNAL) {
		t.Fatal("visibility discriminants must order private < internal < public < external")
	}
}

func TestNodeTypeStrings(t *testing.T) {
	nodeTypes := []NodeType{
		ILLEGAL,
		IDENT,
		STR_LIT,
		PATH,
		SEMVER_REQ,
		TYPE,
		EXPR,
		BLOCK,
		CALL_ARGS,
		DOC_COMMENT,
		ITEM,
		ITEM_PRAGMA,
		ITEM_IMPORT,
		ITEM_USING,
		ITEM_CONTRACT,
		ITEM_FUNCTION,
		ITEM_VARIABLE,
		ITEM_STRUCT,
		ITEM_ENUM,
		ITEM_UDVT,
		ITEM_ERROR,
		ITEM_EVENT,
		PRAGMA_VERSION,
		PRAGMA_CUSTOM,
		PRAGMA_VERBATIM,
		IMPORT_PLAIN,
		IMPORT_ALIASES,
		IMPORT_GLOB,
		USING_SINGLE,
		USING_MULTIPLE,
		MODIFIER_INVOCATION,
		OVERRIDE_SPECIFIER,
		VARIABLE_DECLARATION,
	}

	for _, nodeType := range nodeTypes {
		str := nodeType.String()
		if str == "" {
			t.Errorf("NodeType %d should have non-empty string", int(nodeType))
		}
	}
}
