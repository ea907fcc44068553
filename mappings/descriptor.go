package mappings

import "strings"

// The nine Java primitive keywords and their single-letter JVM descriptor
// codes. Matching is exact and case-sensitive; every other token is a
// reference type
var primitiveDescriptors = map[string]string{
	"int":     "I",
	"double":  "D",
	"boolean": "Z",
	"float":   "F",
	"long":    "J",
	"byte":    "B",
	"short":   "S",
	"char":    "C",
	"void":    "V",
}

// removeBrackets strips trailing array brackets from a type token and counts
// the removed dimensions
// Ex: "int[][]" -> ("int", 2)
func removeBrackets(token string) (string, int) {
	count := 0
	for strings.HasSuffix(token, "[]") {
		token = token[:len(token)-2]
		count++
	}
	return token, count
}

// remapPath converts a bare type token into descriptor form: a single letter
// for primitives, or the dotted path wrapped as "L<path>;" with dots replaced
// by slashes
// Ex: "com.example.Foo" -> "Lcom/example/Foo;"
func remapPath(token string) string {
	if primitive, ok := primitiveDescriptors[token]; ok {
		return primitive
	}
	return "L" + strings.ReplaceAll(token, ".", "/") + ";"
}

// descriptor encodes a raw type token, array brackets included, resolving
// class names through the table built in the first pass. Array dimensions
// become a literal "[" prefix, never nested inside the reference wrapper
func descriptor(token string, classes nameTable) string {
	base, dims := removeBrackets(token)
	desc := remapPath(base)
	if obf, ok := classes[desc]; ok {
		// Obfuscated names can themselves be package-qualified
		desc = "L" + strings.ReplaceAll(obf, ".", "/") + ";"
	}
	return strings.Repeat("[", dims) + desc
}

// internalName strips the "L" and ";" wrapper from a reference descriptor,
// leaving the slash-joined path
func internalName(desc string) string {
	return strings.TrimSuffix(strings.TrimPrefix(desc, "L"), ";")
}
