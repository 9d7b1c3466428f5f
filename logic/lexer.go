package logic

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokenIdent tokenKind = iota
	tokenPlus
	tokenUnderscore
	tokenComma
	tokenLParen
	tokenRParen
	tokenEOF
)

type token struct {
	kind tokenKind
	text string
}

// tokenize splits expr into tokens. Node identifiers are any run of
// characters other than the reserved set "+_,():" and whitespace.
func tokenize(expr string) ([]token, error) {
	var tokens []token
	var ident strings.Builder

	flush := func() error {
		if ident.Len() == 0 {
			return nil
		}
		name := ident.String()
		ident.Reset()
		if strings.ContainsRune(name, ':') {
			return fmt.Errorf("logic: tokenize(%q): %w", name, ErrInvalidIdentifier)
		}
		tokens = append(tokens, token{kind: tokenIdent, text: name})

		return nil
	}

	for _, r := range expr {
		switch r {
		case '+', '_', ',', '(', ')':
			if err := flush(); err != nil {
				return nil, err
			}
			kind := map[rune]tokenKind{
				'+': tokenPlus,
				'_': tokenUnderscore,
				',': tokenComma,
				'(': tokenLParen,
				')': tokenRParen,
			}[r]
			tokens = append(tokens, token{kind: kind, text: string(r)})
		case ' ', '\t', '\n', '\r':
			if err := flush(); err != nil {
				return nil, err
			}
		default:
			ident.WriteRune(r)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	tokens = append(tokens, token{kind: tokenEOF})

	return tokens, nil
}

func (k tokenKind) String() string {
	switch k {
	case tokenIdent:
		return "identifier"
	case tokenPlus:
		return "'+'"
	case tokenUnderscore:
		return "'_'"
	case tokenComma:
		return "','"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	case tokenEOF:
		return "end of expression"
	default:
		return fmt.Sprintf("token(%d)", int(k))
	}
}
