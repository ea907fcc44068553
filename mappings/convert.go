// Package mappings converts ProGuard deobfuscation mappings, the
// human-readable format published alongside Minecraft releases, into the
// compact descriptor-based format consumed by bytecode remapping tools.
//
// The conversion is a two-pass, line-for-line rewrite: the first pass collects
// every class header into a name table, the second re-reads the input and
// emits one output line per class, method, or field. Building the whole table
// up front is what lets a method reference a class whose own header only
// appears later in the file.
package mappings

import "strings"

const (
	headerSeparator = " -> "
	memberIndent    = "    "
)

// nameTable maps a class's descriptor-encoded deobfuscated name to its
// obfuscated name. On duplicate class names the later header wins
type nameTable map[string]string

// buildNameTable runs the first pass over the input, reading class-header
// lines only
// Ex: "com.example.Foo -> x:" inserts ("Lcom/example/Foo;", "x")
func buildNameTable(src string) nameTable {
	classes := make(nameTable)
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, memberIndent) {
			continue
		}
		deobf, obf, found := strings.Cut(line, headerSeparator)
		if !found {
			continue
		}
		// The obfuscated side of a class header carries a trailing colon
		obf, _, _ = strings.Cut(obf, ":")
		classes[remapPath(deobf)] = obf
	}
	return classes
}

// Report summarizes a single conversion. Skipped counts non-empty,
// non-comment lines that matched no recognized line shape; skipped lines
// never affect the output itself
type Report struct {
	Classes int
	Methods int
	Fields  int
	Skipped int
}

// Convert rewrites ProGuard mapping text into descriptor-format mapping text.
// Unrecognized lines are dropped silently; use ConvertReport to count them.
// The conversion holds no shared state, so independent calls are safe from
// concurrent goroutines
func Convert(src string) string {
	out, _ := ConvertReport(src)
	return out
}

// ConvertReport is Convert with a diagnostic Report of what the input
// contained. The output string is identical to Convert's
func ConvertReport(src string) (string, Report) {
	classes := buildNameTable(src)

	var out strings.Builder
	var report Report

	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, "#") {
			continue
		}
		deobf, obf, found := strings.Cut(line, headerSeparator)
		if !found {
			if strings.TrimSpace(line) != "" {
				report.Skipped++
			}
			continue
		}
		obf = strings.TrimSpace(obf)

		if strings.HasPrefix(line, memberIndent) {
			emitMember(&out, classes, deobf, obf, &report)
		} else {
			emitClass(&out, deobf, obf, &report)
		}
	}

	return out.String(), report
}

// emitClass writes a class-header output line: both names in internal form,
// obfuscated first
// Ex: "com.example.Foo -> x:" becomes "x com/example/Foo"
func emitClass(out *strings.Builder, deobf, obf string, report *Report) {
	obf, _, _ = strings.Cut(obf, ":")
	out.WriteString(internalName(remapPath(obf)))
	out.WriteByte(' ')
	out.WriteString(internalName(remapPath(deobf)))
	out.WriteByte('\n')
	report.Classes++
}

// emitMember writes a method or field output line. The deobfuscated side of a
// member line is "<type> <name>" for fields and "<type> <name>(<params>)" for
// methods, with an optional "<lineRange>:" prefix on a method's return type
func emitMember(out *strings.Builder, classes nameTable, deobf, obf string, report *Report) {
	parts := strings.Fields(deobf)
	if len(parts) < 2 {
		report.Skipped++
		return
	}
	returnType, name := parts[0], parts[1]

	if !strings.ContainsRune(name, '(') || !strings.ContainsRune(name, ')') {
		// Field lines carry no type encoding
		out.WriteString("\t" + obf + " " + name + "\n")
		report.Fields++
		return
	}

	// Ex: "14:20:void tick() -> a" — the line-range prefix ends at the last
	// colon of the return-type token
	if i := strings.LastIndexByte(returnType, ':'); i >= 0 {
		returnType = returnType[i+1:]
	}
	funcName, rest, _ := strings.Cut(name, "(")
	params, _, _ := strings.Cut(rest, ")")

	out.WriteString("\t" + obf + " (" + encodeParams(params, classes) + ")")
	out.WriteString(descriptor(returnType, classes) + " " + funcName + "\n")
	report.Methods++
}

// encodeParams encodes a comma-separated parameter list into concatenated
// descriptors with no separator between them
func encodeParams(list string, classes nameTable) string {
	if list == "" {
		return ""
	}
	var sb strings.Builder
	for _, param := range strings.Split(list, ",") {
		sb.WriteString(descriptor(param, classes))
	}
	return sb.String()
}
