// Package pdf is the PDF rendering backend. It maps a style
// configuration onto gofpdf: A4 pages with centimeter margins, per-category
// fonts and alignment, line height derived from the configured spacing.
//
// PDF core fonts carry Latin glyphs only, so Chinese family names fall back
// to the closest core font and text is transliterated to the core-font
// codepage. Full CJK output goes through the .docx backend.
package pdf
