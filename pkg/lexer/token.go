package lexer

import "fmt"

type TokenType string

const (
	// Structural keywords.
	TokenProgramStart TokenType = "ProgramStart" // chala suru karu
	TokenProgramEnd   TokenType = "ProgramEnd"   // bas re ata

	// Statement keywords.
	TokenLet      TokenType = "Let"      // heAhe
	TokenList     TokenType = "List"     // yadi
	TokenPrint    TokenType = "Print"    // dakhava
	TokenIf       TokenType = "If"       // jar
	TokenElseIf   TokenType = "ElseIf"   // nahitar jar
	TokenElse     TokenType = "Else"     // nahitar
	TokenWhile    TokenType = "While"    // punhaKar
	TokenFunction TokenType = "Function" // karya
	TokenReturn   TokenType = "Return"   // parat
	TokenBreak    TokenType = "Break"    // thamba
	TokenContinue TokenType = "Continue" // pudhe

	// Literal keywords.
	TokenTrue  TokenType = "True"  // khare
	TokenFalse TokenType = "False" // khote
	TokenNull  TokenType = "Null"  // shunya

	// Logical keywords.
	TokenAnd TokenType = "And" // ani
	TokenOr  TokenType = "Or"  // kimva
	TokenNot TokenType = "Not" // nahi

	// Literals and names.
	TokenIdentifier TokenType = "Identifier"
	TokenNumber     TokenType = "Number"
	TokenString     TokenType = "String"

	// Operators and punctuation.
	TokenAssign       TokenType = "Assign"       // =
	TokenEqual        TokenType = "Equal"        // ==
	TokenNotEqual     TokenType = "NotEqual"     // !=
	TokenGreater      TokenType = "Greater"      // >
	TokenGreaterEqual TokenType = "GreaterEqual" // >=
	TokenLess         TokenType = "Less"         // <
	TokenLessEqual    TokenType = "LessEqual"    // <=
	TokenPlus         TokenType = "Plus"         // +
	TokenMinus        TokenType = "Minus"        // -
	TokenStar         TokenType = "Star"         // *
	TokenSlash        TokenType = "Slash"        // /
	TokenPercent      TokenType = "Percent"      // %
	TokenLeftParen    TokenType = "LeftParen"    // (
	TokenRightParen   TokenType = "RightParen"   // )
	TokenLeftBrace    TokenType = "LeftBrace"    // {
	TokenRightBrace   TokenType = "RightBrace"   // }
	TokenLeftBracket  TokenType = "LeftBracket"  // [
	TokenRightBracket TokenType = "RightBracket" // ]
	TokenComma        TokenType = "Comma"        // ,
	TokenSemicolon    TokenType = "Semicolon"    // ;
	TokenDot          TokenType = "Dot"          // .

	TokenEOF TokenType = "EOF"
)

// Token is the smallest lexical unit. Value holds the verbatim source text
// (original casing preserved); Literal holds the decoded content for string
// tokens.
type Token struct {
	Type    TokenType
	Value   string
	Literal string
	Line    int
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q [%d:%d]", t.Type, t.Value, t.Line, t.Column)
}

// keywords maps lower-cased identifier text to keyword token types. Lookup is
// case-insensitive; the token keeps the source casing.
var keywords = map[string]TokenType{
	"heahe":    TokenLet,
	"yadi":     TokenList,
	"dakhava":  TokenPrint,
	"jar":      TokenIf,
	"nahitar":  TokenElse,
	"punhakar": TokenWhile,
	"karya":    TokenFunction,
	"parat":    TokenReturn,
	"thamba":   TokenBreak,
	"pudhe":    TokenContinue,
	"khare":    TokenTrue,
	"khote":    TokenFalse,
	"shunya":   TokenNull,
	"ani":      TokenAnd,
	"kimva":    TokenOr,
	"nahi":     TokenNot,
}

// compoundKeywords are matched greedily at word boundaries before single-word
// keyword lookup. Longer sequences come first.
var compoundKeywords = []struct {
	words []string
	typ   TokenType
}{
	{words: []string{"chala", "suru", "karu"}, typ: TokenProgramStart},
	{words: []string{"bas", "re", "ata"}, typ: TokenProgramEnd},
	{words: []string{"nahitar", "jar"}, typ: TokenElseIf},
}
