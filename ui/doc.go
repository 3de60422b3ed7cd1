// Package ui builds, serializes, and parses scoreboard HUD layout documents.
//
// A layout document describes a tree of UI elements. Two element kinds exist:
//
//   - Group: a container holding attributes and child elements
//   - Label: a text element holding attributes only
//
// [Build] produces the scoreboard tree from a [Layout]: a BoardRoot panel
// holding a Header (logo and title), a Divider, and a Lines container of
// Rows hidden rows, each with Segments empty placeholder labels that a
// consumer fills in at runtime by identifier (Line{r} and
// Line{r}Segment{s}). [Render] serializes a tree to text, and
// [ParseString] reads it back.
//
// # Grammar
//
// Informal EBNF:
//
//	Document → Comment* Node Comment* EOF
//	Node     → Comment* Kind '#' Ident '{' (Attr | Node)* '}'
//	Kind     → 'Group' | 'Label'
//	Attr     → Ident ':' Value ';' | '@' Ident '=' Value ';'
//	Value    → String | Number | Bool | Color | Record | Ident
//	Record   → '(' (Ident ':' Value (',' Ident ':' Value)*)? ')'
//	Color    → '#' HexDigit{3,4,6,8}
//	Comment  → '//' <text to end of line>
//
// Only Groups have child nodes. A Label whose braces open and close on the
// same line is an inline label.
//
// # Example
//
//	Group #Row {
//	  Anchor: (Width: 260, Height: 18);
//	  Visible: false;
//	  Label #Cell { @Text = ""; Style: (TextColor: #f6f8ff); }
//	}
//
// # Output
//
// Rendering is deterministic: children keep insertion order, attributes keep
// declaration order, and each nesting level is indented by [DefaultIndent]
// spaces. Blocks are separated from their siblings by one blank line;
// consecutive inline labels are packed on adjacent lines.
package ui
