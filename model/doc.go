// Package model provides the value types produced by document extraction.
//
// All types are immutable snapshots: once returned to a caller they hold no
// reference to the document or engine that produced them and are safe to keep
// after the document is closed.
//
// # Text Structure
//
//   - [Word] - a word with its bounding box, page and font size
//   - [Paragraph] - consecutive words grouped on a page
//   - [TocEntry] - one outline entry; nesting is implied by [TocEntry.Level]
//
// # Geometry
//
//   - [Rect] - bounding box in PDF user space (origin bottom-left)
//   - [Point] - 2D point
package model
