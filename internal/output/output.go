// Package output renders answers, day listings and reconstructed trees as raw text, JSON or XML.
package output

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/temirov/aoc/internal/types"
)

const (
	indentPrefix = ""
	indentSpacer = "  "

	xmlHeader = xml.Header

	answerLineFormat    = "Day %d Part %d: %s\n"
	dayLineFormat       = "%2d  %s\n"
	directoryLineFormat = "%s%s/ (%s)\n"
	fileLineFormat      = "%s%s (%s)\n"
	treeSummaryFormat   = "Summary: %d %s, %s\n"

	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	errorUnsupportedFormat = "unsupported output format %q"
)

// IsSupportedFormat reports whether the provided format is recognized.
func IsSupportedFormat(format string) bool {
	switch format {
	case types.FormatRaw, types.FormatJSON, types.FormatXML:
		return true
	default:
		return false
	}
}

// RenderAnswers renders answers in the requested format. A single raw answer
// is printed bare so the output is exactly the puzzle answer.
func RenderAnswers(format string, answers []types.Answer) (string, error) {
	switch format {
	case types.FormatRaw:
		if len(answers) == 1 {
			return answers[0].Value + "\n", nil
		}
		var builder strings.Builder
		for _, answer := range answers {
			fmt.Fprintf(&builder, answerLineFormat, answer.Day, answer.Part, answer.Value)
		}
		return builder.String(), nil
	case types.FormatJSON:
		if answers == nil {
			answers = []types.Answer{}
		}
		return marshalJSON(answers)
	case types.FormatXML:
		wrapper := struct {
			XMLName xml.Name       `xml:"result"`
			Answers []types.Answer `xml:"answer"`
		}{Answers: answers}
		return marshalXML(wrapper)
	default:
		return "", fmt.Errorf(errorUnsupportedFormat, format)
	}
}

// RenderDays renders the list of registered days.
func RenderDays(format string, summaries []types.DaySummary) (string, error) {
	switch format {
	case types.FormatRaw:
		var builder strings.Builder
		for _, summary := range summaries {
			fmt.Fprintf(&builder, dayLineFormat, summary.Number, summary.Title)
		}
		return builder.String(), nil
	case types.FormatJSON:
		if summaries == nil {
			summaries = []types.DaySummary{}
		}
		return marshalJSON(summaries)
	case types.FormatXML:
		wrapper := struct {
			XMLName xml.Name           `xml:"days"`
			Days    []types.DaySummary `xml:"day"`
		}{Days: summaries}
		return marshalXML(wrapper)
	default:
		return "", fmt.Errorf(errorUnsupportedFormat, format)
	}
}

// RenderTree renders a reconstructed directory tree.
func RenderTree(format string, root *types.TreeOutputNode) (string, error) {
	switch format {
	case types.FormatRaw:
		var builder strings.Builder
		WriteTreeRaw(&builder, root)
		return builder.String(), nil
	case types.FormatJSON:
		return marshalJSON(root)
	case types.FormatXML:
		return marshalXML(root)
	default:
		return "", fmt.Errorf(errorUnsupportedFormat, format)
	}
}

// WriteTreeRaw renders a directory tree with box-drawing connectors.
func WriteTreeRaw(writer io.Writer, root *types.TreeOutputNode) {
	if root == nil {
		return
	}
	label := "files"
	if root.TotalFiles == 1 {
		label = "file"
	}
	fmt.Fprintf(writer, "%s (%s)\n", root.Path, root.TotalSize)
	fmt.Fprintf(writer, treeSummaryFormat, root.TotalFiles, label, root.TotalSize)
	renderChildren(writer, root, "")
}

func renderChildren(writer io.Writer, node *types.TreeOutputNode, prefix string) {
	for index, child := range node.Children {
		if child == nil {
			continue
		}
		connector := treeBranchConnector
		childPrefix := prefix + treeBranchPadding
		if index == len(node.Children)-1 {
			connector = treeLastConnector
			childPrefix = prefix + treeLastPadding
		}
		if child.Type == types.NodeTypeDirectory {
			fmt.Fprintf(writer, directoryLineFormat, prefix+connector, child.Name, child.TotalSize)
			renderChildren(writer, child, childPrefix)
			continue
		}
		fmt.Fprintf(writer, fileLineFormat, prefix+connector, child.Name, child.Size)
	}
}

func marshalJSON(value interface{}) (string, error) {
	encoded, jsonEncodeError := json.MarshalIndent(value, indentPrefix, indentSpacer)
	if jsonEncodeError != nil {
		return "", jsonEncodeError
	}
	return string(encoded) + "\n", nil
}

func marshalXML(value interface{}) (string, error) {
	encoded, xmlMarshalError := xml.MarshalIndent(value, indentPrefix, indentSpacer)
	if xmlMarshalError != nil {
		return "", xmlMarshalError
	}
	return xmlHeader + string(encoded) + "\n", nil
}
