// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package highlight resolves code languages and produces coloured tokens.
package highlight

import "strings"

// =============================================================================
// LANGUAGE CATALOG
// =============================================================================

// Language identifies a supported language for highlighting.
// Values are chroma lexer names, except LangPlain.
type Language string

// LangPlain is the deterministic fallback: no highlighting is applied.
const LangPlain Language = "text"

// Supported languages. The catalog is fixed; anything outside it resolves
// to LangPlain.
const (
	LangRust       Language = "rust"
	LangC          Language = "c"
	LangCpp        Language = "cpp"
	LangCSharp     Language = "csharp"
	LangObjC       Language = "objective-c"
	LangAsm        Language = "nasm"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangHTML       Language = "html"
	LangCSS        Language = "css"
	LangSCSS       Language = "scss"
	LangLess       Language = "less"
	LangPHP        Language = "php"
	LangPython     Language = "python"
	LangRuby       Language = "ruby"
	LangPerl       Language = "perl"
	LangLua        Language = "lua"
	LangPowerShell Language = "powershell"
	LangShell      Language = "bash"
	LangGo         Language = "go"
	LangJava       Language = "java"
	LangKotlin     Language = "kotlin"
	LangSwift      Language = "swift"
	LangSQL        Language = "sql"
	LangJSON       Language = "json"
	LangYAML       Language = "yaml"
	LangTOML       Language = "toml"
)

// aliases maps fence hints (lowercased) to catalog entries.
var aliases = map[string]Language{
	// Systems programming
	"rust": LangRust, "rs": LangRust,
	"c": LangC, "h": LangC,
	"cpp": LangCpp, "c++": LangCpp, "cxx": LangCpp, "hpp": LangCpp,
	"c#": LangCSharp, "cs": LangCSharp, "csharp": LangCSharp,
	"objective-c": LangObjC, "objc": LangObjC,
	"asm": LangAsm, "assembly": LangAsm, "nasm": LangAsm,
	"go": LangGo, "golang": LangGo,

	// Web development
	"javascript": LangJavaScript, "js": LangJavaScript, "jsx": LangJavaScript,
	"typescript": LangTypeScript, "ts": LangTypeScript, "tsx": LangTypeScript,
	"html": LangHTML, "css": LangCSS,
	"scss": LangSCSS, "sass": LangSCSS, "less": LangLess,
	"php": LangPHP,

	// Scripting
	"python": LangPython, "py": LangPython, "python3": LangPython,
	"ruby": LangRuby, "rb": LangRuby,
	"perl": LangPerl, "pl": LangPerl,
	"lua":        LangLua,
	"powershell": LangPowerShell, "ps1": LangPowerShell,
	"shell": LangShell, "bash": LangShell, "sh": LangShell,
	"zsh": LangShell, "fish": LangShell,

	// JVM and friends
	"java": LangJava, "kotlin": LangKotlin, "kt": LangKotlin,
	"swift": LangSwift,

	// Data formats
	"sql": LangSQL, "json": LangJSON,
	"yaml": LangYAML, "yml": LangYAML, "toml": LangTOML,

	// Explicit plain
	"text": LangPlain, "txt": LangPlain, "plain": LangPlain,
}

// promptHints is the fixed priority order for scanning surrounding prompt
// text when the fence carries no usable hint. First match wins, so the
// order is load-bearing for consistency (not correctness): longer and more
// distinctive names come before substring-prone ones.
var promptHints = []struct {
	keyword string
	lang    Language
}{
	// Systems programming
	{"rust", LangRust},
	{"c++", LangCpp},
	{"cpp", LangCpp},
	{"c#", LangCSharp},
	{"csharp", LangCSharp},
	{"objective-c", LangObjC},
	{"objc", LangObjC},
	{"assembly", LangAsm},
	{"golang", LangGo},
	{" go ", LangGo},
	{" c ", LangC},

	// Web development
	{"javascript", LangJavaScript},
	{"typescript", LangTypeScript},
	{"html", LangHTML},
	{"scss", LangSCSS},
	{"sass", LangSCSS},
	{"less", LangLess},
	{"css", LangCSS},
	{"php", LangPHP},

	// Scripting
	{"python", LangPython},
	{"ruby", LangRuby},
	{"perl", LangPerl},
	{"lua", LangLua},
	{"powershell", LangPowerShell},
	{"bash", LangShell},
	{"shell", LangShell},
	{"zsh", LangShell},

	// JVM and friends
	{"kotlin", LangKotlin},
	{"java", LangJava},
	{"swift", LangSwift},

	// Data formats
	{"sql", LangSQL},
	{"json", LangJSON},
	{"yaml", LangYAML},
	{"toml", LangTOML},
}

// =============================================================================
// CLASSIFIER
// =============================================================================

// Classify resolves a fence hint, falling back to a scan of the
// surrounding prompt text, and finally to LangPlain. It is a pure
// function: identical inputs always yield the same language.
func Classify(fenceHint, promptText string) Language {
	hint := strings.ToLower(strings.TrimSpace(fenceHint))
	if lang, ok := aliases[hint]; ok {
		return lang
	}

	if promptText != "" {
		// Pad so boundary-sensitive keywords (" c ", " go ") can match at
		// the ends of the prompt too.
		prompt := " " + strings.ToLower(promptText) + " "
		for _, h := range promptHints {
			if strings.Contains(prompt, h.keyword) {
				return h.lang
			}
		}
	}

	return LangPlain
}
