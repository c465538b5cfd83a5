package diag

import (
	"fmt"
)

// Code identifies a kind of diagnostic. The thousands digit selects the family.
type Code uint16

const (
	UnknownCode Code = 0

	// Syntax
	SynInfo                Code = 2000
	SynExpectNextToken     Code = 2001
	SynUnexpectedStatement Code = 2002

	// I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:            "Unknown error",
	SynInfo:                "Syntax information",
	SynExpectNextToken:     "Unexpected next token",
	SynUnexpectedStatement: "Token cannot start a statement",
	IOLoadFileError:        "I/O load file error",
}

// ID renders the code with its family prefix, e.g. SYN2001.
func (c Code) ID() string {
	ic := int(c)
	switch ic / 1000 {
	case 2:
		return fmt.Sprintf("SYN%04d", ic)
	case 4:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	if desc, ok := codeDescription[c]; ok {
		return desc
	}
	return codeDescription[UnknownCode]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
