package ast

// The closed keyword enums below each expose the exact source spelling via
// String(). The mapping is injective and stable; diagnostics rely on it.

type ContractKind int

const (
	CONTRACT ContractKind = iota
	ABSTRACT_CONTRACT
	INTERFACE
	LIBRARY
)

func (k ContractKind) String() string {
	switch k {
	case CONTRACT:
		return "contract"
	case ABSTRACT_CONTRACT:
		return "abstract contract"
	case INTERFACE:
		return "interface"
	case LIBRARY:
		return "library"
	}
	return "unknown"
}

type FunctionKind int

const (
	CONSTRUCTOR FunctionKind = iota
	FUNCTION
	FALLBACK
	RECEIVE
	MODIFIER
)

func (k FunctionKind) String() string {
	switch k {
	case CONSTRUCTOR:
		return "constructor"
	case FUNCTION:
		return "function"
	case FALLBACK:
		return "fallback"
	case RECEIVE:
		return "receive"
	case MODIFIER:
		return "modifier"
	}
	return "unknown"
}

type Storage int

const (
	MEMORY Storage = iota
	STORAGE
	CALLDATA
)

func (s Storage) String() string {
	switch s {
	case MEMORY:
		return "memory"
	case STORAGE:
		return "storage"
	case CALLDATA:
		return "calldata"
	}
	return "unknown"
}

type StateMutability int

const (
	PURE StateMutability = iota
	VIEW
	PAYABLE
)

func (m StateMutability) String() string {
	switch m {
	case PURE:
		return "pure"
	case VIEW:
		return "view"
	case PAYABLE:
		return "payable"
	}
	return "unknown"
}

// Visibility is ordered from restricted to unrestricted. The discriminant
// order carries meaning: override-compatibility checks compare visibilities
// as integers, so PRIVATE < INTERNAL < PUBLIC < EXTERNAL must hold.
type Visibility int

const (
	PRIVATE Visibility = iota
	INTERNAL
	PUBLIC
	EXTERNAL
)

func (v Visibility) String() string {
	switch v {
	case PRIVATE:
		return "private"
	case INTERNAL:
		return "internal"
	case PUBLIC:
		return "public"
	case EXTERNAL:
		return "external"
	}
	return "unknown"
}

type VarMut int

const (
	IMMUTABLE VarMut = iota
	CONSTANT
)

func (m VarMut) String() string {
	switch m {
	case IMMUTABLE:
		return "immutable"
	case CONSTANT:
		return "constant"
	}
	return "unknown"
}

// UserDefinableOperator is the closed set of operators a using directive
// can bind to a library function.
type UserDefinableOperator int

const (
	BIT_AND UserDefinableOperator = iota
	BIT_NOT
	BIT_OR
	BIT_XOR
	ADD
	DIV
	REM
	MUL
	SUB
	EQ
	GE
	GT
	LE
	LT
	NE
)

func (op UserDefinableOperator) String() string {
	switch op {
	case BIT_AND:
		return "&"
	case BIT_NOT:
		return "~"
	case BIT_OR:
		return "|"
	case BIT_XOR:
		return "^"
	case ADD:
		return "+"
	case DIV:
		return "/"
	case REM:
		return "%"
	case MUL:
		return "*"
	case SUB:
		return "-"
	case EQ:
		return "=="
	case GE:
		return ">="
	case GT:
		return ">"
	case LE:
		return "<="
	case LT:
		return "<"
	case NE:
		return "!="
	}
	return "unknown"
}
