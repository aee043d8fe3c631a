package config

// DeclFileNames are the declaration file names searched for by Find, in order.
var DeclFileNames = []string{"either.yaml", "either.yml"}

// IsTestMode indicates if the program is running in test mode.
// This is set once at startup by the CLI when EITHER_TEST_MODE=1.
var IsTestMode = false

// Built-in type names
const (
	IntegerTypeName = "Integer"
	StringTypeName  = "String"
	BooleanTypeName = "Boolean"
)

// Variant declaration kinds
const (
	EnumVariantKind   = "enumvariant"
	RecordVariantKind = "recordvariant"
)

// AnonymousEitherName is what an either type without a declared name renders as.
const AnonymousEitherName = "anonymous either"

// VariantSuffix annotates a variant's diagnostic rendering.
const VariantSuffix = "(EitherVariant)"

// Version is the CLI version reported by -version.
const Version = "0.1.0"
