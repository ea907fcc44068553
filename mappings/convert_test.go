package mappings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertClassHeader(t *testing.T) {
	assert.Equal(t, "x com/example/Foo\n", Convert("com.example.Foo -> x:"))
}

func TestConvertField(t *testing.T) {
	assert.Equal(t, "\ta count\n", Convert("    int count -> a"))
}

func TestConvertMethodNoParams(t *testing.T) {
	assert.Equal(t, "\tb ()V tick\n", Convert("    void tick() -> b"))
}

func TestConvertMethodKnownClass(t *testing.T) {
	src := "com.example.Foo -> x:\n" +
		"    com.example.Foo get(int) -> c\n"

	expected := "x com/example/Foo\n" +
		"\tc (I)Lx; get\n"

	assert.Equal(t, expected, Convert(src))
}

func TestConvertForwardReference(t *testing.T) {
	// Helper's own header appears after the method that references it; the
	// parameter must still resolve to Helper's obfuscated name
	src := "com.example.Main -> a:\n" +
		"    void run(com.example.Helper[]) -> b\n" +
		"com.example.Helper -> c:\n"

	expected := "a com/example/Main\n" +
		"\tb ([Lc;)V run\n" +
		"c com/example/Helper\n"

	assert.Equal(t, expected, Convert(src))
}

func TestConvertLineRangePrefix(t *testing.T) {
	assert.Equal(t, "\tm ()D getHealth\n", Convert("    14:22:double getHealth() -> m"))
}

func TestConvertMultipleParams(t *testing.T) {
	src := "com.example.Vec -> q:\n" +
		"    com.example.Vec add(double,double,com.example.Vec) -> a\n"

	expected := "q com/example/Vec\n" +
		"\ta (DDLq;)Lq; add\n"

	assert.Equal(t, expected, Convert(src))
}

func TestConvertDuplicateClassLastWins(t *testing.T) {
	src := "com.example.Foo -> a:\n" +
		"com.example.Foo -> b:\n" +
		"    com.example.Foo self() -> c\n"

	expected := "a com/example/Foo\n" +
		"b com/example/Foo\n" +
		"\tc ()Lb; self\n"

	assert.Equal(t, expected, Convert(src))
}

func TestConvertSkipsCommentsAndBlankLines(t *testing.T) {
	src := "# compiled with ProGuard\n" +
		"\n" +
		"no separator here\n"

	out, report := ConvertReport(src)
	assert.Empty(t, out)
	assert.Equal(t, Report{Skipped: 1}, report)
}

func TestConvertSkipsShortMemberLines(t *testing.T) {
	out, report := ConvertReport("    lonesometoken -> a\n")
	assert.Empty(t, out)
	assert.Equal(t, 1, report.Skipped)
}

func TestConvertHandlesCRLF(t *testing.T) {
	src := "com.example.Foo -> x:\r\n" +
		"    void tick() -> b\r\n"

	assert.Equal(t, "x com/example/Foo\n\tb ()V tick\n", Convert(src))
}

func TestConvertFullMapping(t *testing.T) {
	src := "# compiled from: Minecraft\n" +
		"net.minecraft.client.Minecraft -> dvp:\n" +
		"    net.minecraft.client.Minecraft theMinecraft -> S\n" +
		"    13:13:void <init>(int) -> <init>\n" +
		"    1866:1887:net.minecraft.util.Session getSession() -> n\n" +
		"net.minecraft.util.Session -> avn:\n"

	expected := "dvp net/minecraft/client/Minecraft\n" +
		"\tS theMinecraft\n" +
		"\t<init> (I)V <init>\n" +
		"\tn ()Lavn; getSession\n" +
		"avn net/minecraft/util/Session\n"

	out, report := ConvertReport(src)
	assert.Equal(t, expected, out)
	assert.Equal(t, Report{Classes: 2, Methods: 2, Fields: 1}, report)
}

func TestBuildNameTable(t *testing.T) {
	src := "# header comment\n" +
		"com.example.Foo -> x:\n" +
		"    int count -> a\n" +
		"com.example.util.Bar -> y:\n"

	expected := nameTable{
		"Lcom/example/Foo;":      "x",
		"Lcom/example/util/Bar;": "y",
	}

	assert.Equal(t, expected, buildNameTable(src))
}
