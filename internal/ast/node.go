package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (s *StrLit) NodePos() Position    { return s.Pos }
func (s *StrLit) NodeEndPos() Position { return s.EndPos }
func (*StrLit) NodeType() NodeType     { return STR_LIT }

func (p *Path) NodePos() Position    { return p.Pos }
func (p *Path) NodeEndPos() Position { return p.EndPos }
func (*Path) NodeType() NodeType     { return PATH }

func (r *SemverReq) NodePos() Position    { return r.Pos }
func (r *SemverReq) NodeEndPos() Position { return r.EndPos }
func (*SemverReq) NodeType() NodeType     { return SEMVER_REQ }

func (t *Type) NodePos() Position    { return t.Pos }
func (t *Type) NodeEndPos() Position { return t.EndPos }
func (*Type) NodeType() NodeType     { return TYPE }

func (e *Expr) NodePos() Position    { return e.Pos }
func (e *Expr) NodeEndPos() Position { return e.EndPos }
func (*Expr) NodeType() NodeType     { return EXPR }

func (b *Block) NodePos() Position    { return b.Pos }
func (b *Block) NodeEndPos() Position { return b.EndPos }
func (*Block) NodeType() NodeType     { return BLOCK }

func (c *CallArgs) NodePos() Position    { return c.Pos }
func (c *CallArgs) NodeEndPos() Position { return c.EndPos }
func (*CallArgs) NodeType() NodeType     { return CALL_ARGS }

func (dc *DocComment) NodePos() Position    { return dc.Pos }
func (dc *DocComment) NodeEndPos() Position { return dc.EndPos }
func (*DocComment) NodeType() NodeType      { return DOC_COMMENT }

func (i *Item) NodePos() Position    { return i.Pos }
func (i *Item) NodeEndPos() Position { return i.EndPos }
func (*Item) NodeType() NodeType     { return ITEM }

func (p *PragmaDirective) NodePos() Position    { return p.Pos }
func (p *PragmaDirective) NodeEndPos() Position { return p.EndPos }
func (*PragmaDirective) NodeType() NodeType     { return ITEM_PRAGMA }

func (p *PragmaVersion) NodePos() Position    { return p.Pos }
func (p *PragmaVersion) NodeEndPos() Position { return p.EndPos }
func (*PragmaVersion) NodeType() NodeType     { return PRAGMA_VERSION }

func (p *PragmaCustom) NodePos() Position    { return p.Pos }
func (p *PragmaCustom) NodeEndPos() Position { return p.EndPos }
func (*PragmaCustom) NodeType() NodeType     { return PRAGMA_CUSTOM }

func (p *PragmaVerbatim) NodePos() Position    { return p.Pos }
func (p *PragmaVerbatim) NodeEndPos() Position { return p.EndPos }
func (*PragmaVerbatim) NodeType() NodeType     { return PRAGMA_VERBATIM }

func (d *ImportDirective) NodePos() Position    { return d.Pos }
func (d *ImportDirective) NodeEndPos() Position { return d.EndPos }
func (*ImportDirective) NodeType() NodeType     { return ITEM_IMPORT }

func (i *ImportPlain) NodePos() Position    { return i.Pos }
func (i *ImportPlain) NodeEndPos() Position { return i.EndPos }
func (*ImportPlain) NodeType() NodeType     { return IMPORT_PLAIN }

func (i *ImportAliases) NodePos() Position    { return i.Pos }
func (i *ImportAliases) NodeEndPos() Position { return i.EndPos }
func (*ImportAliases) NodeType() NodeType     { return IMPORT_ALIASES }

func (i *ImportGlob) NodePos() Position    { return i.Pos }
func (i *ImportGlob) NodeEndPos() Position { return i.EndPos }
func (*ImportGlob) NodeType() NodeType     { return IMPORT_GLOB }

func (u *UsingDirective) NodePos() Position    { return u.Pos }
func (u *UsingDirective) NodeEndPos() Position { return u.EndPos }
func (*UsingDirective) NodeType() NodeType     { return ITEM_USING }

func (u *UsingSingle) NodePos() Position    { return u.Pos }
func (u *UsingSingle) NodeEndPos() Position { return u.EndPos }
func (*UsingSingle) NodeType() NodeType     { return USING_SINGLE }

func (u *UsingMultiple) NodePos() Position    { return u.Pos }
func (u *UsingMultiple) NodeEndPos() Position { return u.EndPos }
func (*UsingMultiple) NodeType() NodeType     { return USING_MULTIPLE }

func (c *ItemContract) NodePos() Position    { return c.Pos }
func (c *ItemContract) NodeEndPos() Position { return c.EndPos }
func (*ItemContract) NodeType() NodeType     { return ITEM_CONTRACT }

func (f *ItemFunction) NodePos() Position    { return f.Pos }
func (f *ItemFunction) NodeEndPos() Position { return f.EndPos }
func (*ItemFunction) NodeType() NodeType     { return ITEM_FUNCTION }

func (m *Modifier) NodePos() Position    { return m.Pos }
func (m *Modifier) NodeEndPos() Position { return m.EndPos }
func (*Modifier) NodeType() NodeType     { return MODIFIER_INVOCATION }

func (o *Override) NodePos() Position    { return o.Pos }
func (o *Override) NodeEndPos() Position { return o.EndPos }
func (*Override) NodeType() NodeType     { return OVERRIDE_SPECIFIER }

func (v *VariableDeclaration) NodePos() Position    { return v.Pos }
func (v *VariableDeclaration) NodeEndPos() Position { return v.EndPos }
func (*VariableDeclaration) NodeType() NodeType     { return VARIABLE_DECLARATION }

func (v *VariableDefinition) NodePos() Position    { return v.Pos }
func (v *VariableDefinition) NodeEndPos() Position { return v.EndPos }
func (*VariableDefinition) NodeType() NodeType     { return ITEM_VARIABLE }

func (s *ItemStruct) NodePos() Position    { return s.Pos }
func (s *ItemStruct) NodeEndPos() Position { return s.EndPos }
func (*ItemStruct) NodeType() NodeType     { return ITEM_STRUCT }

func (e *ItemEnum) NodePos() Position    { return e.Pos }
func (e *ItemEnum) NodeEndPos() Position { return e.EndPos }
func (*ItemEnum) NodeType() NodeType     { return ITEM_ENUM }

func (u *ItemUdvt) NodePos() Position    { return u.Pos }
func (u *ItemUdvt) NodeEndPos() Position { return u.EndPos }
func (*ItemUdvt) NodeType() NodeType     { return ITEM_UDVT }

func (e *ItemError) NodePos() Position    { return e.Pos }
func (e *ItemError) NodeEndPos() Position { return e.EndPos }
func (*ItemError) NodeType() NodeType     { return ITEM_ERROR }

func (e *ItemEvent) NodePos() Position    { return e.Pos }
func (e *ItemEvent) NodeEndPos() Position { return e.EndPos }
func (*ItemEvent) NodeType() NodeType     { return ITEM_EVENT }
