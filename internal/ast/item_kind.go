package ast

// ItemKind is the closed set of top-level declaration forms. Downstream
// passes type-switch over it without a default branch so the checker
// forces exhaustiveness as the grammar grows.
type ItemKind interface {
	Node
	isItemKind()
}

func (*PragmaDirective) isItemKind() {}

func (*ImportDirective) isItemKind() {}

func (*UsingDirective) isItemKind() {}

func (*ItemContract) isItemKind() {}

func (*ItemFunction) isItemKind() {}

func (*VariableDefinition) isItemKind() {}

func (*ItemStruct) isItemKind() {}

func (*ItemEnum) isItemKind() {}

func (*ItemUdvt) isItemKind() {}

func (*ItemError) isItemKind() {}

func (*ItemEvent) isItemKind() {}

// ImportItems is the closed set of import directive shapes.
type ImportItems interface {
	Node
	isImportItems()
}

func (*ImportPlain) isImportItems() {}

func (*ImportAliases) isImportItems() {}

func (*ImportGlob) isImportItems() {}

// UsingList is the closed set of using directive path lists.
type UsingList interface {
	Node
	isUsingList()
}

func (*UsingSingle) isUsingList() {}

func (*UsingMultiple) isUsingList() {}
