package ast

type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota

	// Leaves
	IDENT
	STR_LIT
	PATH
	SEMVER_REQ
	TYPE
	EXPR
	BLOCK
	CALL_ARGS
	DOC_COMMENT

	// Items
	ITEM
	ITEM_PRAGMA
	ITEM_IMPORT
	ITEM_USING
	ITEM_CONTRACT
	ITEM_FUNCTION
	ITEM_VARIABLE
	ITEM_STRUCT
	ITEM_ENUM
	ITEM_UDVT
	ITEM_ERROR
	ITEM_EVENT

	// Pragma shapes
	PRAGMA_VERSION
	PRAGMA_CUSTOM
	PRAGMA_VERBATIM

	// Import shapes
	IMPORT_PLAIN
	IMPORT_ALIASES
	IMPORT_GLOB

	// Using shapes
	USING_SINGLE
	USING_MULTIPLE

	// Substructures
	MODIFIER_INVOCATION
	OVERRIDE_SPECIFIER
	VARIABLE_DECLARATION
)

var nodeTypeNames = [...]string{
	ILLEGAL:              "ILLEGAL",
	IDENT:                "IDENT",
	STR_LIT:              "STR_LIT",
	PATH:                 "PATH",
	SEMVER_REQ:           "SEMVER_REQ",
	TYPE:                 "TYPE",
	EXPR:                 "EXPR",
	BLOCK:                "BLOCK",
	CALL_ARGS:            "CALL_ARGS",
	DOC_COMMENT:          "DOC_COMMENT",
	ITEM:                 "ITEM",
	ITEM_PRAGMA:          "ITEM_PRAGMA",
	ITEM_IMPORT:          "ITEM_IMPORT",
	ITEM_USING:           "ITEM_USING",
	ITEM_CONTRACT:        "ITEM_CONTRACT",
	ITEM_FUNCTION:        "ITEM_FUNCTION",
	ITEM_VARIABLE:        "ITEM_VARIABLE",
	ITEM_STRUCT:          "ITEM_STRUCT",
	ITEM_ENUM:            "ITEM_ENUM",
	ITEM_UDVT:            "ITEM_UDVT",
	ITEM_ERROR:           "ITEM_ERROR",
	ITEM_EVENT:           "ITEM_EVENT",
	PRAGMA_VERSION:       "PRAGMA_VERSION",
	PRAGMA_CUSTOM:        "PRAGMA_CUSTOM",
	PRAGMA_VERBATIM:      "PRAGMA_VERBATIM",
	IMPORT_PLAIN:         "IMPORT_PLAIN",
	IMPORT_ALIASES:       "IMPORT_ALIASES",
	IMPORT_GLOB:          "IMPORT_GLOB",
	USING_SINGLE:         "USING_SINGLE",
	USING_MULTIPLE:       "USING_MULTIPLE",
	MODIFIER_INVOCATION:  "MODIFIER_INVOCATION",
	OVERRIDE_SPECIFIER:   "OVERRIDE_SPECIFIER",
	VARIABLE_DECLARATION: "VARIABLE_DECLARATION",
}

func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypeNames) {
		return "ILLEGAL"
	}
	return nodeTypeNames[t]
}
