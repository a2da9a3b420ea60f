// Package types defines every cross‑package data structure used by the aoc CLI.
package types

import "encoding/xml"

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"

	CommandSolve = "solve"
	CommandAll   = "all"
	CommandTree  = "tree"

	FormatRaw  = "raw"
	FormatJSON = "json"
	FormatXML  = "xml"

	VariantExample = "example"
	VariantInput   = "input"
)

// Answer is the result of running one part of one day.
type Answer struct {
	XMLName xml.Name `json:"-" xml:"answer"`
	Day     int      `json:"day" xml:"day,attr"`
	Part    int      `json:"part" xml:"part,attr"`
	Title   string   `json:"title,omitempty" xml:"title,attr,omitempty"`
	Value   string   `json:"value" xml:",chardata"`
}

// DaySummary describes a registered day for listing.
type DaySummary struct {
	XMLName xml.Name `json:"-" xml:"day"`
	Number  int      `json:"number" xml:"number,attr"`
	Title   string   `json:"title" xml:"title,attr"`
}

// TreeOutputNode represents a node of a directory tree reconstructed from a transcript.
type TreeOutputNode struct {
	XMLName    xml.Name          `json:"-" xml:"node"`
	Path       string            `json:"path" xml:"path"`
	Name       string            `json:"name" xml:"name"`
	Type       string            `json:"type" xml:"type"`
	Size       string            `json:"size,omitempty" xml:"size,omitempty"`
	SizeBytes  int64             `json:"sizeBytes" xml:"sizeBytes"`
	Children   []*TreeOutputNode `json:"children,omitempty" xml:"children>node,omitempty"`
	TotalFiles int               `json:"totalFiles,omitempty" xml:"totalFiles,omitempty"`
	TotalSize  string            `json:"totalSize,omitempty" xml:"totalSize,omitempty"`
}
