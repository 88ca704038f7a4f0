// Package docx renders documents as Office Open XML (.docx) packages.
//
// The renderer registers itself with the render package under the ".docx"
// extension. RenderText builds a fresh package from plain text, classifying
// each paragraph into an element category first; RenderFile rewrites the
// paragraph and run properties of an existing .docx file in place, treating
// the first non-empty paragraph as the title and everything else as body
// text. All measurements in word/document.xml are twips (1/20 point); font
// sizes are half-points.
package docx
