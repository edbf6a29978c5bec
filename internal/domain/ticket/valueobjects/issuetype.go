package valueobjects

import (
	"fmt"
	"strings"
)

type IssueType string

const (
	IssueTypeBug  IssueType = "bug"
	IssueTypeIdea IssueType = "idea"
)

var validIssueTypes = map[IssueType]bool{
	IssueTypeBug:  true,
	IssueTypeIdea: true,
}

func (i IssueType) String() string {
	return string(i)
}

func (i IssueType) IsValid() bool {
	return validIssueTypes[i]
}

func (i IssueType) IsBug() bool {
	return i == IssueTypeBug
}

// Word returns the capitalized noun used in email subjects and bodies.
func (i IssueType) Word() string {
	if i.IsBug() {
		return "Bug"
	}
	return "Idea"
}

func NewIssueType(s string) (IssueType, error) {
	i := IssueType(strings.ToLower(strings.TrimSpace(s)))
	if !i.IsValid() {
		return "", fmt.Errorf("invalid issue type: %s", s)
	}
	return i, nil
}
